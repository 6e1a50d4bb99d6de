package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

// Renderer рисует оверлей средствами gg и отдаёт PNG.
type Renderer struct {
	face font.Face
}

// NewRenderer создаёт рендерер с жирным шрифтом размера подписи.
func NewRenderer() (*Renderer, error) {
	fnt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    entity.LabelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return &Renderer{face: face}, nil
}

// Render рисует полупрозрачный зелёный эллипс на месте каждого хотспота
// и красную подпись справа от рамки.
func (r *Renderer) Render(imageData []byte, overlay entity.Overlay) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, errors.New("empty image")
	}

	dc := gg.NewContextForImage(img)
	dc.SetFontFace(r.face)

	for _, it := range overlay.Items {
		h := it.Hotspot
		if h.Width <= 0 || h.Height <= 0 {
			continue
		}
		rx, ry := float64(h.Width)/2, float64(h.Height)/2
		dc.SetRGBA255(0, 128, 0, 51)
		dc.DrawEllipse(float64(h.Left)+rx, float64(h.Top)+ry, rx, ry)
		dc.Fill()

		dc.SetRGB255(255, 0, 0)
		dc.DrawStringAnchored(it.Text, it.Label.Left, it.Label.Top, 0, 1)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

var _ port.OverlayRenderer = (*Renderer)(nil)
