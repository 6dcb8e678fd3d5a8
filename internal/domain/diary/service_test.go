package diary

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// pngBytes arranca con la firma PNG real para que el sniffing dé image/png.
func pngBytes() []byte {
	return append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, bytes.Repeat([]byte{0}, 64)...)
}

type fakeRepo struct {
	saved []Post
}

func (r *fakeRepo) Save(_ context.Context, p Post) (Post, error) {
	p.ID = int64(len(r.saved) + 1)
	r.saved = append(r.saved, p)
	return p, nil
}
func (r *fakeRepo) FindAll(context.Context, int, int) (Page, error) { return Page{}, nil }
func (r *fakeRepo) FindByPandaName(context.Context, string, int, int) (Page, error) {
	return Page{}, nil
}
func (r *fakeRepo) FindByPandaNameContaining(context.Context, string, int, int) (Page, error) {
	return Page{}, nil
}

type fakeStore struct {
	stored   int
	lastName string
}

func (s *fakeStore) Store(_ context.Context, original string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.stored++
	s.lastName = "stored-" + original
	return s.lastName, nil
}

func newTestService(repo Repository, store ImageStore) *Service {
	svc := NewService(repo, store)
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_OK(t *testing.T) {
	repo := &fakeRepo{}
	store := &fakeStore{}
	svc := newTestService(repo, store)

	p, err := svc.Create(context.Background(), CreateInput{
		PandaName:     "カイ",
		Comment:       "  木に登ってた  ",
		Image:         bytes.NewReader(pngBytes()),
		ImageFilename: "photo.png",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 || p.Comment != "木に登ってた" || p.ImageFilename != "stored-photo.png" {
		t.Fatalf("post creado: %+v", p)
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("CreatedAt tiene que quedar seteado al crear")
	}
}

func TestCreate_ValidationDoesNotPersist(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateInput
		wantErr error
	}{
		{"sin nombre", CreateInput{Comment: "hola", Image: bytes.NewReader(pngBytes())}, ErrInvalidInput},
		{"sin comentario", CreateInput{PandaName: "カイ", Image: bytes.NewReader(pngBytes())}, ErrInvalidInput},
		{"comentario demasiado largo", CreateInput{
			PandaName: "カイ",
			Comment:   strings.Repeat("あ", MaxCommentLen+1),
			Image:     bytes.NewReader(pngBytes()),
		}, ErrInvalidInput},
		{"sin imagen", CreateInput{PandaName: "カイ", Comment: "hola"}, ErrImageRequired},
		{"imagen vacía", CreateInput{PandaName: "カイ", Comment: "hola", Image: bytes.NewReader(nil)}, ErrImageRequired},
		{"no es una imagen", CreateInput{
			PandaName:     "カイ",
			Comment:       "hola",
			Image:         strings.NewReader("#!/bin/sh\necho hola"),
			ImageFilename: "script.sh",
		}, ErrNotImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			store := &fakeStore{}
			svc := newTestService(repo, store)

			_, err := svc.Create(context.Background(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(repo.saved) != 0 {
				t.Fatal("un rechazo de validación no puede persistir nada")
			}
		})
	}
}

func TestCreate_CommentAtLimit(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeStore{})

	_, err := svc.Create(context.Background(), CreateInput{
		PandaName:     "カイ",
		Comment:       strings.Repeat("a", MaxCommentLen),
		Image:         bytes.NewReader(pngBytes()),
		ImageFilename: "p.png",
	})
	if err != nil {
		t.Fatalf("exactamente 1000 es válido: %v", err)
	}
}
