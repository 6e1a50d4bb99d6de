package container

import (
	"log/slog"

	app "overlay-bot/internal/application"
	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

// Deps зависимости, из которых собираются сервисы приложения
type Deps struct {
	Sessions     port.SessionRepository
	Source       port.AnnotationSource
	Images       port.ImageStore
	Renderer     port.OverlayRenderer
	Resources    entity.Resources
	InitialIndex int
	Logger       *slog.Logger
}

type Container struct {
	SessionService *app.SessionService
	RenderService  *app.RenderService

	source    port.AnnotationSource
	resources entity.Resources
	logger    *slog.Logger
}

func New(deps Deps) *Container {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Container{
		SessionService: app.NewSessionService(deps.Sessions, deps.InitialIndex),
		RenderService:  app.NewRenderService(deps.Source, deps.Images, deps.Renderer),
		source:         deps.Source,
		resources:      deps.Resources,
		logger:         logger,
	}
}

// NewViewer создаёт Viewer над переданными элементами
func (c *Container) NewViewer(surfaces app.Surfaces) *app.Viewer {
	return app.NewViewer(surfaces, c.source, c.resources, c.logger.With("component", "viewer"))
}
