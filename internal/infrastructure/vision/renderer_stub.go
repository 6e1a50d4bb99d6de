//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"overlay-bot/internal/domain/entity"
)

type GoCVRenderer struct {
	Opacity   float64
	FontScale float64
	Thickness int
	Quality   int
}

// NewGoCVRenderer создаёт рендерер-заглушку (без OpenCV).
func NewGoCVRenderer() *GoCVRenderer {
	return &GoCVRenderer{
		Opacity:   0.2,
		FontScale: 0.4,
		Thickness: 1,
		Quality:   90,
	}
}

// ErrNotEnabled сборка без тега gocv
var ErrNotEnabled = errors.New("gocv build tag is not enabled")

// Render возвращает ошибку, если сборка без тега gocv.
func (r *GoCVRenderer) Render(imageData []byte, overlay entity.Overlay) ([]byte, error) {
	_ = imageData
	_ = overlay
	return nil, ErrNotEnabled
}
