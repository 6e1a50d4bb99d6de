package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

type fakeImages map[int][]byte

func (f fakeImages) LoadImage(ctx context.Context, index int) ([]byte, error) {
	data, ok := f[index]
	if !ok {
		return nil, errors.New("no image")
	}
	return data, nil
}

type recordingRenderer struct {
	got entity.Overlay
	err error
}

func (r *recordingRenderer) Render(imageData []byte, overlay entity.Overlay) ([]byte, error) {
	r.got = overlay
	if r.err != nil {
		return nil, r.err
	}
	return append([]byte("rendered:"), imageData...), nil
}

func TestRenderService_RenderIndex(t *testing.T) {
	renderer := &recordingRenderer{}
	svc := NewRenderService(scenarioSource(), fakeImages{1: []byte("img1")}, renderer)

	out, err := svc.RenderIndex(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []byte("rendered:img1"), out.Image)
	require.Len(t, out.Overlay.Items, 1)
	require.Equal(t, 1, renderer.got.ImageIndex)
}

func TestRenderService_RenderIndexMissingAnnotations(t *testing.T) {
	svc := NewRenderService(scenarioSource(), fakeImages{}, &recordingRenderer{})

	_, err := svc.RenderIndex(context.Background(), 9)
	require.ErrorIs(t, err, port.ErrAnnotationsNotFound)
}

func TestRenderService_RendererErrors(t *testing.T) {
	svc := NewRenderService(scenarioSource(), fakeImages{1: []byte("x")}, &recordingRenderer{err: errors.New("bad image")})
	_, err := svc.RenderIndex(context.Background(), 1)
	require.Error(t, err)

	svc = NewRenderService(scenarioSource(), fakeImages{1: []byte("x")}, nil)
	_, err = svc.Render(context.Background(), entity.Overlay{ImageIndex: 1})
	require.EqualError(t, err, "renderer is not configured")
}
