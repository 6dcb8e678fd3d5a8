package diary

import "time"

// Post es una entrada del diario de visitantes: comentario con foto
// atado a un individuo por nombre (match de string, sin FK real contra
// el padrón).
type Post struct {
	ID            int64
	PandaName     string
	Comment       string
	ImageFilename string // vacío si no se adjuntó imagen
	CreatedAt     time.Time
}

// Page es una página de posts ordenada por created_at descendente
// (único criterio de orden del listado).
type Page struct {
	Items      []Post
	Page       int
	Size       int
	TotalItems int
	TotalPages int
}
