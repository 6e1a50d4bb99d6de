package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository_GetCreates(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, "a", 3)
	require.NoError(t, err)
	require.Equal(t, 3, s.ImageIndex)

	// повторный Get не перезаписывает существующую сессию
	s, err = repo.Get(ctx, "a", 9)
	require.NoError(t, err)
	require.Equal(t, 3, s.ImageIndex)
}

func TestMemorySessionRepository_SaveAndUpdate(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, "b", 1)
	require.NoError(t, err)
	s.SetImage(2)
	s.MessageID = 77
	require.NoError(t, repo.Save(ctx, s))

	require.NoError(t, repo.UpdateMessage(ctx, "b", "hi"))
	require.NoError(t, repo.UpdateMessage(ctx, "missing", "ignored"))

	got, err := repo.Get(ctx, "b", 1)
	require.NoError(t, err)
	require.Equal(t, 2, got.ImageIndex)
	require.Equal(t, 77, got.MessageID)
	require.Equal(t, "hi", got.Message)
}

func TestMemorySessionRepository_FieldUpdates(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "c", 1)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateMessage(ctx, "c", "hi"))
	require.NoError(t, repo.UpdateImage(ctx, "c", 4))
	require.NoError(t, repo.UpdateMessageID(ctx, "c", 9))
	require.NoError(t, repo.UpdateImage(ctx, "missing", 4))

	got, err := repo.Get(ctx, "c", 1)
	require.NoError(t, err)
	require.Equal(t, 4, got.ImageIndex)
	require.Equal(t, 9, got.MessageID)
	require.Equal(t, "hi", got.Message)
}
