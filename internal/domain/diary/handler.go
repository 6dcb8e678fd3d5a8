package diary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Postables entrega los nombres de individuos sobre los que se puede
// postear (lo implementa el service del padrón; interfaz local para no
// acoplar paquetes de dominio entre sí).
type Postables interface {
	PostableNames(ctx context.Context) ([]string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, postables Postables) {
	r.Route("/posts", func(pr chi.Router) {
		pr.Get("/", listPostsHandler(svc))
		pr.Post("/", createPostHandler(svc))
		pr.Get("/new", newPostFormHandler(postables))
	})
}

type postResponse struct {
	ID            int64     `json:"id"`
	PandaName     string    `json:"panda_name"`
	Comment       string    `json:"comment"`
	ImageURL      string    `json:"image_url,omitempty"`
	ImageFilename string    `json:"image_filename,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type postPageResponse struct {
	Items      []postResponse `json:"items"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalItems int            `json:"total_items"`
	TotalPages int            `json:"total_pages"`
}

type fieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// listPostsHandler godoc
// @Summary Listar posts del diario
// @Description Lista paginada ordenada por fecha de creación descendente. `pandaName` filtra por nombre exacto (link desde el padrón) y gana sobre `q` (substring case-insensitive).
// @Tags posts
// @Produce json
// @Param pandaName query string false "Filtro por nombre exacto"
// @Param q query string false "Búsqueda por substring"
// @Param page query int false "Página (zero-based)"
// @Param size query int false "Tamaño de página (default 10)"
// @Success 200 {object} postPageResponse
// @Router /posts [get]
func listPostsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 0)
		size := queryInt(r, "size", DefaultPageSize)

		result, err := svc.List(r.Context(), r.URL.Query().Get("pandaName"), r.URL.Query().Get("q"), page, size)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPageResponse(result))
	}
}

// createPostHandler godoc
// @Summary Crear post del diario
// @Description Alta multipart: campos `panda_name`, `comment` y archivo `image`. La foto es obligatoria y debe ser una imagen; se guarda con nombre aleatorio preservando la extensión.
// @Tags posts
// @Accept mpfd
// @Produce json
// @Param panda_name formData string true "Nombre del individuo"
// @Param comment formData string true "Comentario (máx. 1000)"
// @Param image formData file true "Foto adjunta"
// @Success 201 {object} postResponse
// @Failure 400 {object} fieldError
// @Router /posts [post]
func createPostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 10MB en memoria; el resto va a disco temporal
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, fieldError{Field: "form", Error: "invalid multipart form"})
			return
		}

		in := CreateInput{
			PandaName: r.FormValue("panda_name"),
			Comment:   r.FormValue("comment"),
		}

		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			in.Image = file
			in.ImageFilename = header.Filename
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrImageRequired):
				writeJSON(w, http.StatusBadRequest, fieldError{Field: "image", Error: "la foto es obligatoria"})
			case errors.Is(err, ErrNotImage):
				writeJSON(w, http.StatusBadRequest, fieldError{Field: "image", Error: "solo se pueden subir imágenes"})
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, fieldError{Field: "comment", Error: "datos inválidos"})
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPostResponse(p))
	}
}

type newPostFormResponse struct {
	Postables []string `json:"postables"`
}

// newPostFormHandler godoc
// @Summary Datos para el form de nuevo post
// @Description Devuelve los nombres posteables (individuos actualmente en el parque) para armar el selector del form.
// @Tags posts
// @Produce json
// @Success 200 {object} newPostFormResponse
// @Router /posts/new [get]
func newPostFormHandler(postables Postables) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := postables.PostableNames(r.Context())
		if err != nil || names == nil {
			names = []string{}
		}
		writeJSON(w, http.StatusOK, newPostFormResponse{Postables: names})
	}
}

func toPostResponse(p Post) postResponse {
	resp := postResponse{
		ID:            p.ID,
		PandaName:     p.PandaName,
		Comment:       p.Comment,
		ImageFilename: p.ImageFilename,
		CreatedAt:     p.CreatedAt,
	}
	if p.ImageFilename != "" {
		resp.ImageURL = "/uploads/" + p.ImageFilename
	}
	return resp
}

func toPageResponse(pg Page) postPageResponse {
	items := make([]postResponse, 0, len(pg.Items))
	for _, p := range pg.Items {
		items = append(items, toPostResponse(p))
	}
	return postPageResponse{
		Items:      items,
		Page:       pg.Page,
		Size:       pg.Size,
		TotalItems: pg.TotalItems,
		TotalPages: pg.TotalPages,
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (pandas/diary); si aparece un tercer uso conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
