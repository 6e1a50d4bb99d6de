package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"overlay-bot/config"
	telegram "overlay-bot/internal/api"
	"overlay-bot/internal/api/web"
	"overlay-bot/internal/container"
	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
	"overlay-bot/internal/infrastructure/annotations"
	"overlay-bot/internal/infrastructure/raster"
	"overlay-bot/internal/infrastructure/storage"
	"overlay-bot/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resources := entity.Resources{
		ImageDir:         cfg.ImageDir,
		ImageExt:         cfg.ImageExt,
		AnnotationDir:    cfg.AnnotationDir,
		AnnotationPrefix: cfg.AnnotationPrefix,
	}

	// Источник изображений и аннотаций: локальный каталог или внешний сервер
	var (
		source port.AnnotationSource
		images port.ImageStore
		opts   web.Options
	)
	if cfg.AnnotationsURL != "" {
		src := annotations.NewHTTPSource(cfg.AnnotationsURL, resources, &http.Client{Timeout: 30 * time.Second})
		source, images = src, src
		opts.ImageBaseURL = src.BaseURL
	} else {
		src := annotations.NewFileSource(cfg.DataDir, resources)
		source, images = src, src
		opts.StaticRoot = cfg.DataDir
		opts.StaticDirs = []string{resources.ImageDir, resources.AnnotationDir}
	}

	renderer, err := newRenderer(cfg.Renderer)
	if err != nil {
		logger.Error("failed to create renderer", "error", err)
		os.Exit(1)
	}

	// Собираем сервисы приложения
	appContainer := container.New(container.Deps{
		Sessions:     storage.NewMemorySessionRepository(),
		Source:       source,
		Images:       images,
		Renderer:     renderer,
		Resources:    resources,
		InitialIndex: cfg.InitialIndex,
		Logger:       logger,
	})

	// Проверяем, что начальное изображение доступно
	if overlay, err := appContainer.RenderService.Overlay(ctx, cfg.InitialIndex); err != nil {
		logger.Warn("initial annotations not available", "index", cfg.InitialIndex, "error", err)
	} else {
		logger.Info("initial overlay ready", "index", cfg.InitialIndex, "hotspots", len(overlay.Items))
	}

	handler := web.NewHandler(appContainer.SessionService, appContainer.RenderService, appContainer.NewViewer, opts, logger)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, logger.With("component", "telegram"))
		if err != nil {
			logger.Error("failed to create bot", "error", err)
			os.Exit(1)
		}
		go func() {
			logger.Info("bot is running")
			if err := bot.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	} else {
		logger.Info("TELEGRAM_TOKEN is not set, bot disabled")
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("fatal error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
}

func newRenderer(name string) (port.OverlayRenderer, error) {
	if name == config.RendererGoCV {
		return vision.NewGoCVRenderer(), nil
	}

	r, err := raster.NewRenderer()
	if err != nil {
		return nil, err
	}
	return r, nil
}
