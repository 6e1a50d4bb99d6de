package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

// Surfaces элементы, которыми управляет Viewer
type Surfaces struct {
	Image     port.ImageSurface
	Messages  port.MessageSurface
	Container port.OverlayContainer
}

// Viewer загружает изображение с аннотациями и строит поверх него хотспоты.
//
// Каждый вызов LoadImage отменяет незавершённую загрузку предыдущего вызова,
// поэтому на экране всегда остаётся оверлей последнего запрошенного изображения.
type Viewer struct {
	surfaces  Surfaces
	source    port.AnnotationSource
	resources entity.Resources
	logger    *slog.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	overlay    entity.Overlay
	shown      bool
}

// NewViewer создаёт Viewer над переданными элементами.
func NewViewer(surfaces Surfaces, source port.AnnotationSource, resources entity.Resources, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{
		surfaces:  surfaces,
		source:    source,
		resources: resources,
		logger:    logger,
	}
}

// LoadImage показывает изображение index и строит оверлей по его аннотациям.
// Ошибка загрузки аннотаций только логируется: изображение уже сменено,
// а контейнер остаётся нетронутым.
func (v *Viewer) LoadImage(ctx context.Context, index int) {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	gen := v.generation
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.surfaces.Image.SetSource(v.resources.ImagePath(index))
	v.mu.Unlock()
	defer cancel()

	annotations, err := v.source.Fetch(ctx, index)
	if err != nil {
		if errors.Is(err, context.Canceled) && v.superseded(gen) {
			v.logger.Debug("annotation load superseded", "index", index)
			return
		}
		v.logger.Error("error loading annotations", "index", index, "error", err)
		return
	}

	overlay := entity.BuildOverlay(index, annotations)
	for _, pos := range overlay.Rejected {
		a := annotations[pos]
		v.logger.Warn("skipping inverted annotation box",
			"index", index,
			"position", pos,
			"top_left", a.TopLeft,
			"bottom_right", a.BottomRight,
		)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		v.logger.Debug("discarding stale annotations", "index", index)
		return
	}

	v.surfaces.Container.Clear()
	for _, item := range overlay.Items {
		v.surfaces.Container.Append(item)
	}
	v.overlay = overlay
	v.shown = true

	v.logger.Debug("overlay rendered", "index", index, "hotspots", len(overlay.Items))
}

// Activate нажимает хотспот записи position на изображении index.
// Возвращает false, если такого хотспота сейчас нет на экране.
func (v *Viewer) Activate(index, position int) bool {
	v.mu.Lock()
	if !v.shown || v.overlay.ImageIndex != index {
		v.mu.Unlock()
		return false
	}
	item, ok := v.overlay.Item(position)
	v.mu.Unlock()
	if !ok {
		return false
	}

	msg := entity.ClickMessage(item.Text)
	v.logger.Info(msg, "index", index, "position", position)
	v.surfaces.Messages.SetText(msg)
	return true
}

// Overlay возвращает оверлей, который сейчас на экране.
func (v *Viewer) Overlay() (entity.Overlay, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.overlay, v.shown
}

func (v *Viewer) superseded(gen uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return gen != v.generation
}
