package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	app "overlay-bot/internal/application"
	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// page собирает документ одного ответа: изображение, контейнер оверлея
// и поле сообщений. Viewer наполняет его, затем страница рендерится в HTML.
type page struct {
	index     int
	imageBase string
	imageSrc  string
	message   string
	items     []entity.OverlayItem
}

func (p *page) surfaces() app.Surfaces {
	return app.Surfaces{Image: p, Messages: p, Container: p}
}

func (p *page) SetSource(src string) {
	p.imageSrc = strings.TrimRight(p.imageBase, "/") + "/" + src
}

func (p *page) SetText(text string) {
	p.message = text
}

func (p *page) Clear() {
	p.items = p.items[:0]
}

func (p *page) Append(item entity.OverlayItem) {
	p.items = append(p.items, item)
}

var (
	_ port.ImageSurface     = (*page)(nil)
	_ port.MessageSurface   = (*page)(nil)
	_ port.OverlayContainer = (*page)(nil)
)

type itemView struct {
	Position    int
	Text        string
	ButtonStyle template.CSS
	LabelStyle  template.CSS
}

type pageView struct {
	Index    int
	Prev     int
	Next     int
	ImageSrc string
	Message  string
	Items    []itemView
}

func (p *page) render(w io.Writer) error {
	view := pageView{
		Index:    p.index,
		Prev:     p.index - 1,
		Next:     p.index + 1,
		ImageSrc: p.imageSrc,
		Message:  p.message,
		Items:    make([]itemView, 0, len(p.items)),
	}
	for _, it := range p.items {
		view.Items = append(view.Items, itemView{
			Position:    it.Position,
			Text:        it.Text,
			ButtonStyle: buttonStyle(it.Hotspot),
			LabelStyle:  labelStyle(it.Label),
		})
	}
	return pageTemplate.Execute(w, view)
}

func buttonStyle(h entity.Hotspot) template.CSS {
	return template.CSS(fmt.Sprintf(
		"position: absolute; left: %dpx; top: %dpx; width: %dpx; height: %dpx; "+
			"background-color: %s; border: none; border-radius: %s; padding: %dpx;",
		h.Left, h.Top, h.Width, h.Height,
		entity.HotspotFill, entity.HotspotBorderRadius, entity.HotspotPadding,
	))
}

func labelStyle(l entity.Label) template.CSS {
	return template.CSS(fmt.Sprintf(
		"left: %spx; top: %spx; color: %s; background: none; font-size: %dpx; font-weight: bold;",
		px(l.Left), px(l.Top), entity.LabelColor, entity.LabelFontSize,
	))
}

// px печатает координату без лишних нулей: 34 или 10.5
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
