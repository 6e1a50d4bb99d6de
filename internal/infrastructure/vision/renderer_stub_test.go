//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

func TestGoCVRendererStub(t *testing.T) {
	var r port.OverlayRenderer = NewGoCVRenderer()
	_, err := r.Render([]byte("x"), entity.Overlay{})
	require.ErrorIs(t, err, ErrNotEnabled)
}
