package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	RendererGG   = "gg"
	RendererGoCV = "gocv"
)

type Config struct {
	TelegramToken string
	HTTPAddr      string

	DataDir        string // корень локальных images/ и purified/
	AnnotationsURL string // если задан, изображения и аннотации берутся с этого сервера

	ImageDir         string
	ImageExt         string
	AnnotationDir    string
	AnnotationPrefix string
	InitialIndex     int

	Renderer string
	LogLevel slog.Level
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DataDir:          getEnv("DATA_DIR", "."),
		AnnotationsURL:   os.Getenv("ANNOTATIONS_URL"),
		ImageDir:         getEnv("IMAGE_DIR", "images"),
		ImageExt:         getEnv("IMAGE_EXT", ".png"),
		AnnotationDir:    getEnv("ANNOTATION_DIR", "purified"),
		AnnotationPrefix: getEnv("ANNOTATION_PREFIX", "purified"),
		Renderer:         strings.ToLower(getEnv("RENDERER", RendererGG)),
	}

	index, err := strconv.Atoi(getEnv("INITIAL_INDEX", "1"))
	if err != nil {
		return nil, fmt.Errorf("INITIAL_INDEX: %w", err)
	}
	cfg.InitialIndex = index

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	switch cfg.Renderer {
	case RendererGG, RendererGoCV:
	default:
		return nil, fmt.Errorf("RENDERER: unknown renderer %q", cfg.Renderer)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
