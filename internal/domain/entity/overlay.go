package entity

import "fmt"

const (
	HotspotPadding = 5  // отступ хотспота наружу от рамки с каждой стороны
	LabelOffsetX   = 4  // зазор между правым краем рамки и подписью
	LabelOffsetY   = -1 // сдвиг подписи относительно середины рамки по вертикали
)

// Оформление элементов оверлея
const (
	HotspotFill         = "rgba(0, 128, 0, 0.2)"
	HotspotBorderRadius = "50%"
	LabelColor          = "red"
	LabelFontSize       = 12
)

// Hotspot кликабельная область поверх изображения
type Hotspot struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center возвращает координаты центра хотспота
func (h Hotspot) Center() (x, y int) {
	return h.Left + h.Width/2, h.Top + h.Height/2
}

// Label позиция текстовой подписи; вертикаль может быть дробной
type Label struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// OverlayItem хотспот и подпись для одной записи аннотации
type OverlayItem struct {
	Position int     `json:"position"` // индекс записи во входном массиве
	Text     string  `json:"text"`
	Hotspot  Hotspot `json:"hotspot"`
	Label    Label   `json:"label"`
}

// Overlay набор элементов, построенный для одного изображения.
type Overlay struct {
	ImageIndex int           `json:"image_index"`
	Items      []OverlayItem `json:"items"`
	Rejected   []int         `json:"rejected,omitempty"` // позиции записей с перевёрнутой рамкой
}

// LayoutAnnotation переводит запись аннотации в геометрию хотспота и подписи.
func LayoutAnnotation(position int, a Annotation) OverlayItem {
	w, h := a.Width(), a.Height()
	return OverlayItem{
		Position: position,
		Text:     a.Text.String(),
		Hotspot: Hotspot{
			Left:   a.TopLeft.X - HotspotPadding,
			Top:    a.TopLeft.Y - HotspotPadding,
			Width:  w + 2*HotspotPadding,
			Height: h + 2*HotspotPadding,
		},
		Label: Label{
			Left: float64(a.TopLeft.X + w + LabelOffsetX),
			Top:  float64(a.TopLeft.Y) + float64(h)/2 + LabelOffsetY,
		},
	}
}

// BuildOverlay строит оверлей в порядке входных записей.
// Записи с перевёрнутой рамкой не рисуются и попадают в Rejected.
func BuildOverlay(index int, annotations []Annotation) Overlay {
	overlay := Overlay{
		ImageIndex: index,
		Items:      make([]OverlayItem, 0, len(annotations)),
	}
	for i, a := range annotations {
		if !a.Valid() {
			overlay.Rejected = append(overlay.Rejected, i)
			continue
		}
		overlay.Items = append(overlay.Items, LayoutAnnotation(i, a))
	}
	return overlay
}

// Item возвращает элемент по позиции исходной записи.
func (o Overlay) Item(position int) (OverlayItem, bool) {
	for _, it := range o.Items {
		if it.Position == position {
			return it, true
		}
	}
	return OverlayItem{}, false
}

// ClickMessage текст, который показывается при нажатии на хотспот
func ClickMessage(text string) string {
	return fmt.Sprintf("Button with value %s is clicked", text)
}
