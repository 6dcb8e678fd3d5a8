package diary

import "context"

// Repository es el contrato del colaborador de persistencia. Todas las
// consultas devuelven páginas ordenadas por created_at descendente.
type Repository interface {
	// Save persiste el post y devuelve la copia con ID asignado.
	Save(ctx context.Context, p Post) (Post, error)

	FindAll(ctx context.Context, page, size int) (Page, error)

	// FindByPandaName filtra por nombre exacto (link desde el padrón).
	FindByPandaName(ctx context.Context, name string, page, size int) (Page, error)

	// FindByPandaNameContaining filtra por substring case-insensitive
	// (búsqueda libre del listado).
	FindByPandaNameContaining(ctx context.Context, q string, page, size int) (Page, error)
}
