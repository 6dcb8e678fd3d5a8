package local

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadStore_Store(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}

	name, err := store.Store(context.Background(), "レッサー写真.PNG", bytes.NewReader([]byte("data")))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("la extensión original se preserva (en minúsculas): %q", name)
	}
	base := strings.TrimSuffix(name, ".png")
	if len(base) != 32 || strings.Contains(base, "-") {
		t.Fatalf("nombre aleatorio uuid sin guiones: %q", name)
	}

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil || string(data) != "data" {
		t.Fatalf("contenido: %q err=%v", data, err)
	}
}

func TestUploadStore_NoExtension(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	name, err := store.Store(context.Background(), "sinextension", bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(name, ".") {
		t.Fatalf("sin extensión original no se inventa una: %q", name)
	}
}

func TestUploadStore_UniqueNames(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	a, _ := store.Store(context.Background(), "x.jpg", bytes.NewReader([]byte("1")))
	b, _ := store.Store(context.Background(), "x.jpg", bytes.NewReader([]byte("2")))
	if a == b {
		t.Fatalf("dos uploads no pueden compartir nombre: %q", a)
	}
}
