package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadStore guarda las imágenes del diario en disco local bajo un
// nombre aleatorio (uuid sin guiones) que preserva la extensión
// original. Implementa diary.ImageStore.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: abs}, nil
}

func (s *UploadStore) Dir() string { return s.dir }

func (s *UploadStore) Store(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	if ext := safeExt(originalFilename); ext != "" {
		name += ext
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// safeExt extrae la extensión del nombre original descartando cualquier
// resto de path que mande el browser.
func safeExt(filename string) string {
	ext := filepath.Ext(filepath.Base(filename))
	if ext == "." || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return strings.ToLower(ext)
}
