package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"overlay-bot/internal/domain/entity"
)

func whitePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderer_DrawsHotspotAndLabel(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	overlay := entity.BuildOverlay(1, []entity.Annotation{
		{TopLeft: entity.Point{X: 10, Y: 20}, BottomRight: entity.Point{X: 30, Y: 50}, Text: "A"},
	})

	out, err := r.Render(whitePNG(t, 80, 80), overlay)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 80, img.Bounds().Dx())
	require.Equal(t, 80, img.Bounds().Dy())

	// центр хотспота тонирован зелёным
	cx, cy := overlay.Items[0].Hotspot.Center()
	cr, cg, cb, _ := img.At(cx, cy).RGBA()
	require.Greater(t, cg, cr)
	require.Greater(t, cg, cb)

	// угол изображения не тронут
	wr, wg, wb, _ := img.At(79, 0).RGBA()
	require.Equal(t, uint32(0xffff), wr)
	require.Equal(t, uint32(0xffff), wg)
	require.Equal(t, uint32(0xffff), wb)

	// подпись добавляет красные пиксели справа от рамки
	red := false
	for y := 30; y < 50 && !red; y++ {
		for x := 34; x < 50; x++ {
			pr, pg, _, _ := img.At(x, y).RGBA()
			if pr > 0xc000 && pg < 0x8000 {
				red = true
				break
			}
		}
	}
	require.True(t, red)
}

func TestRenderer_RejectsGarbage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.Render([]byte("not an image"), entity.Overlay{})
	require.Error(t, err)
}
