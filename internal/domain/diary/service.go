package diary

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrImageRequired = errors.New("image required")
	ErrNotImage      = errors.New("file is not an image")
)

const (
	// MaxCommentLen replica el límite de columna del modelo original.
	MaxCommentLen = 1000

	DefaultPageSize = 10
)

// ImageStore guarda la imagen subida bajo un nombre aleatorio que
// preserva la extensión original, y devuelve el nombre almacenado.
type ImageStore interface {
	Store(ctx context.Context, originalFilename string, r io.Reader) (string, error)
}

type Service struct {
	repo  Repository
	store ImageStore
	now   func() time.Time
}

func NewService(repo Repository, store ImageStore) *Service {
	return &Service{
		repo:  repo,
		store: store,
		now:   time.Now,
	}
}

type CreateInput struct {
	PandaName string
	Comment   string

	// Image es el payload subido; nil si el form no adjuntó archivo.
	Image         io.Reader
	ImageFilename string
}

// Create valida y persiste un post. La foto es obligatoria y tiene que
// olfatearse como image/*; cualquier rechazo es un error de validación,
// no toca estado persistido.
func (s *Service) Create(ctx context.Context, in CreateInput) (Post, error) {
	if strings.TrimSpace(in.PandaName) == "" {
		return Post{}, ErrInvalidInput
	}
	comment := strings.TrimSpace(in.Comment)
	if comment == "" || len(comment) > MaxCommentLen {
		return Post{}, ErrInvalidInput
	}
	if in.Image == nil {
		return Post{}, ErrImageRequired
	}

	// Sniff de content type sobre los primeros bytes, no confiamos en
	// el header del form.
	head := make([]byte, 512)
	n, err := io.ReadFull(in.Image, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Post{}, err
	}
	head = head[:n]
	if n == 0 {
		return Post{}, ErrImageRequired
	}
	if !strings.HasPrefix(http.DetectContentType(head), "image/") {
		return Post{}, ErrNotImage
	}

	stored, err := s.store.Store(ctx, in.ImageFilename, io.MultiReader(bytes.NewReader(head), in.Image))
	if err != nil {
		return Post{}, err
	}

	return s.repo.Save(ctx, Post{
		PandaName:     strings.TrimSpace(in.PandaName),
		Comment:       comment,
		ImageFilename: stored,
		CreatedAt:     s.now(),
	})
}

// List resuelve la precedencia del listado: nombre exacto (link desde
// el padrón) gana sobre q (substring case-insensitive); sin ninguno,
// todos los posts.
func (s *Service) List(ctx context.Context, pandaName, q string, page, size int) (Page, error) {
	switch {
	case strings.TrimSpace(pandaName) != "":
		return s.repo.FindByPandaName(ctx, pandaName, page, size)
	case strings.TrimSpace(q) != "":
		return s.repo.FindByPandaNameContaining(ctx, strings.TrimSpace(q), page, size)
	default:
		return s.repo.FindAll(ctx, page, size)
	}
}

// ListByPanda es el feed de posts del detalle de un individuo.
func (s *Service) ListByPanda(ctx context.Context, name string, page, size int) (Page, error) {
	return s.repo.FindByPandaName(ctx, name, page, size)
}
