package annotations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestFileSource_Fetch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "purified/purified1.json", `[{"top_left":[10,20],"bottom_right":[30,50],"text":"A"}]`)

	src := NewFileSource(root, entity.DefaultResources())
	anns, err := src.Fetch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, anns, 1)
	require.Equal(t, entity.Point{X: 10, Y: 20}, anns[0].TopLeft)
	require.Equal(t, entity.Value("A"), anns[0].Text)
}

func TestFileSource_FetchMissing(t *testing.T) {
	src := NewFileSource(t.TempDir(), entity.DefaultResources())
	_, err := src.Fetch(context.Background(), 2)
	require.ErrorIs(t, err, port.ErrAnnotationsNotFound)
}

func TestFileSource_FetchMalformed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "purified/purified3.json", `{"not": "a list"`)

	src := NewFileSource(root, entity.DefaultResources())
	_, err := src.Fetch(context.Background(), 3)
	require.Error(t, err)
	require.NotErrorIs(t, err, port.ErrAnnotationsNotFound)
}

func TestFileSource_LoadImage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "images/4.png", "png-bytes")

	src := NewFileSource(root, entity.DefaultResources())
	data, err := src.LoadImage(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)

	_, err = src.LoadImage(context.Background(), 5)
	require.Error(t, err)
}

func TestFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewFileSource(t.TempDir(), entity.DefaultResources())
	_, err := src.Fetch(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}
