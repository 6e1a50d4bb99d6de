// Command purify сводит сырые результаты распознавания в файлы аннотаций:
// {in}/detections{i}.json -> {out}/purified{i}.json.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	app "overlay-bot/internal/application"
	"overlay-bot/internal/domain/entity"
)

func main() {
	in := flag.String("in", "detections", "directory with raw detections{i}.json files")
	out := flag.String("out", "purified", "output directory for purified{i}.json files")
	prefix := flag.String("prefix", "purified", "output file name prefix")
	from := flag.Int("from", 1, "first image index")
	to := flag.Int("to", 30, "last image index")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Error("create output directory", "error", err)
		os.Exit(1)
	}

	purifier := app.NewPurifier()
	for i := *from; i <= *to; i++ {
		src := filepath.Join(*in, fmt.Sprintf("detections%d.json", i))
		dst := filepath.Join(*out, fmt.Sprintf("%s%d.json", *prefix, i))

		n, err := purifyFile(purifier, src, dst)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("detections not found, skipping", "index", i)
			continue
		}
		if err != nil {
			logger.Error("error processing image", "index", i, "error", err)
			continue
		}
		logger.Info("purified points saved", "index", i, "file", dst, "points", n)
	}
}

func purifyFile(p *app.Purifier, src, dst string) (int, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return 0, err
	}

	var detections []entity.Detection
	if err := json.Unmarshal(data, &detections); err != nil {
		return 0, fmt.Errorf("decode %s: %w", src, err)
	}

	purified := p.Purify(detections)
	out, err := json.MarshalIndent(purified, "", "    ")
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return 0, err
	}
	return len(purified), nil
}
