package annotations

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

// FileSource читает изображения и аннотации из локального каталога
type FileSource struct {
	Root      string
	Resources entity.Resources
}

// NewFileSource создаёт источник с корнем root
func NewFileSource(root string, resources entity.Resources) *FileSource {
	return &FileSource{Root: root, Resources: resources}
}

// Fetch загружает аннотации изображения index
func (s *FileSource) Fetch(ctx context.Context, index int) ([]entity.Annotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path(s.Resources.AnnotationPath(index)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("image %d: %w", index, port.ErrAnnotationsNotFound)
		}
		return nil, fmt.Errorf("open annotations: %w", err)
	}
	defer f.Close()

	return decode(f)
}

// LoadImage читает файл изображения index
func (s *FileSource) LoadImage(ctx context.Context, index int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(s.Resources.ImagePath(index)))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

func (s *FileSource) path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

var (
	_ port.AnnotationSource = (*FileSource)(nil)
	_ port.ImageStore       = (*FileSource)(nil)
)
