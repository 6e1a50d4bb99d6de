package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/infrastructure/storage"
)

// slowRepository задерживает чтение, чтобы параллельные обновления пересекались.
type slowRepository struct {
	*storage.MemorySessionRepository
}

func (r slowRepository) Get(ctx context.Context, id string, index int) (*entity.Session, error) {
	s, err := r.MemorySessionRepository.Get(ctx, id, index)
	time.Sleep(time.Millisecond)
	return s, err
}

func TestSessionService_SetImageAndMessage(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	svc := NewSessionService(repo, 1)
	ctx := context.Background()

	session, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 1, session.ImageIndex)

	session, err = svc.SetImage(ctx, "s1", 5)
	require.NoError(t, err)
	require.Equal(t, 5, session.ImageIndex)

	require.NoError(t, svc.SetMessage(ctx, "s1", "Button with value 9 is clicked"))
	require.NoError(t, svc.SetMessageID(ctx, "s1", 42))

	session, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 5, session.ImageIndex)
	require.Equal(t, "Button with value 9 is clicked", session.Message)
	require.Equal(t, 42, session.MessageID)
}

func TestSessionService_SetMessageCreatesSession(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	svc := NewSessionService(repo, 3)
	ctx := context.Background()

	require.NoError(t, svc.SetMessage(ctx, "fresh", "hello"))

	session, err := svc.Get(ctx, "fresh")
	require.NoError(t, err)
	require.Equal(t, 3, session.ImageIndex)
	require.Equal(t, "hello", session.Message)
	require.Equal(t, 3, svc.InitialIndex())
}

func TestSessionService_ConcurrentUpdatesKeepBothFields(t *testing.T) {
	svc := NewSessionService(slowRepository{storage.NewMemorySessionRepository()}, 1)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("tg:%d", i)

		var (
			wg               sync.WaitGroup
			imageErr, msgErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, imageErr = svc.SetImage(ctx, id, 5)
		}()
		go func() {
			defer wg.Done()
			msgErr = svc.SetMessageID(ctx, id, 42)
		}()
		wg.Wait()
		require.NoError(t, imageErr)
		require.NoError(t, msgErr)

		session, err := svc.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, 5, session.ImageIndex, id)
		require.Equal(t, 42, session.MessageID, id)
	}
}
