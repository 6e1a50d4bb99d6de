//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"overlay-bot/internal/domain/entity"
)

type GoCVRenderer struct {
	Opacity   float64 // непрозрачность заливки хотспота
	FontScale float64
	Thickness int
	Quality   int
}

// NewGoCVRenderer создаёт рендерер с оформлением как у веб-оверлея.
func NewGoCVRenderer() *GoCVRenderer {
	return &GoCVRenderer{
		Opacity:   0.2,
		FontScale: 0.4,
		Thickness: 1,
		Quality:   90,
	}
}

// Render рисует хотспоты полупрозрачными эллипсами и подписи красным текстом.
func (r *GoCVRenderer) Render(imageData []byte, overlay entity.Overlay) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	// Эллипсы рисуются на копии и смешиваются с оригиналом, чтобы получить прозрачность.
	layer := mat.Clone()
	defer layer.Close()

	green := color.RGBA{G: 128, A: 255}
	for _, it := range overlay.Items {
		h := it.Hotspot
		if h.Width <= 0 || h.Height <= 0 {
			continue
		}
		cx, cy := h.Center()
		gocv.Ellipse(&layer, image.Pt(cx, cy), image.Pt(h.Width/2, h.Height/2), 0, 0, 360, green, -1)
	}

	blended := gocv.NewMat()
	defer blended.Close()
	gocv.AddWeighted(layer, r.Opacity, mat, 1-r.Opacity, 0, &blended)

	red := color.RGBA{R: 255, A: 255}
	for _, it := range overlay.Items {
		size := gocv.GetTextSize(it.Text, gocv.FontHersheySimplex, r.FontScale, r.Thickness)
		org := image.Pt(int(it.Label.Left), int(it.Label.Top)+size.Y)
		gocv.PutText(&blended, it.Text, org, gocv.FontHersheySimplex, r.FontScale, red, r.Thickness+1)
	}

	img, err := blended.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: r.Quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}
