package port

import (
	"context"
	"errors"

	"overlay-bot/internal/domain/entity"
)

// ErrAnnotationsNotFound файл аннотаций для изображения отсутствует
var ErrAnnotationsNotFound = errors.New("annotations not found")

// AnnotationSource источник аннотаций изображений
type AnnotationSource interface {
	// Fetch загружает и декодирует аннотации изображения index
	Fetch(ctx context.Context, index int) ([]entity.Annotation, error)
}

// ImageStore источник самих изображений
type ImageStore interface {
	// LoadImage возвращает байты изображения index
	LoadImage(ctx context.Context, index int) ([]byte, error)
}
