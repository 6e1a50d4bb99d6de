package app

import (
	"context"
	"errors"
	"fmt"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

type RenderService struct {
	source   port.AnnotationSource
	images   port.ImageStore
	renderer port.OverlayRenderer
}

// RenderOutput содержит оверлей и картинку, на которой он нарисован.
type RenderOutput struct {
	Overlay entity.Overlay
	Image   []byte
}

// NewRenderService создаёт сервис растеризации оверлеев.
func NewRenderService(source port.AnnotationSource, images port.ImageStore, renderer port.OverlayRenderer) *RenderService {
	return &RenderService{
		source:   source,
		images:   images,
		renderer: renderer,
	}
}

// Render рисует готовый оверлей поверх его изображения.
func (s *RenderService) Render(ctx context.Context, overlay entity.Overlay) ([]byte, error) {
	if s.renderer == nil {
		return nil, errors.New("renderer is not configured")
	}

	imageData, err := s.images.LoadImage(ctx, overlay.ImageIndex)
	if err != nil {
		return nil, err
	}

	out, err := s.renderer.Render(imageData, overlay)
	if err != nil {
		return nil, fmt.Errorf("render overlay %d: %w", overlay.ImageIndex, err)
	}
	return out, nil
}

// Overlay загружает аннотации изображения index и строит по ним оверлей.
func (s *RenderService) Overlay(ctx context.Context, index int) (entity.Overlay, error) {
	annotations, err := s.source.Fetch(ctx, index)
	if err != nil {
		return entity.Overlay{}, err
	}
	return entity.BuildOverlay(index, annotations), nil
}

// RenderIndex загружает аннотации изображения index и рисует их.
func (s *RenderService) RenderIndex(ctx context.Context, index int) (*RenderOutput, error) {
	overlay, err := s.Overlay(ctx, index)
	if err != nil {
		return nil, err
	}

	img, err := s.Render(ctx, overlay)
	if err != nil {
		return nil, err
	}
	return &RenderOutput{Overlay: overlay, Image: img}, nil
}

// Image возвращает исходное изображение без оверлея.
func (s *RenderService) Image(ctx context.Context, index int) ([]byte, error) {
	return s.images.LoadImage(ctx, index)
}
