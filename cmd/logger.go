package main

import (
	"log/slog"
	"os"
)

// newLogger создаёт JSON-логгер с заданным уровнем
func newLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
