package storage

import (
	"context"
	"sync"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сессий
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*entity.Session),
	}
}

// Get возвращает копию сессии по ID, создаёт новую если не найдена
func (r *MemorySessionRepository) Get(ctx context.Context, id string, index int) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		session = entity.NewSession(id, index)
		r.sessions[id] = session
	}

	cp := *session
	return &cp, nil
}

// Save сохраняет состояние сессии
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	cp := *session

	r.mu.Lock()
	r.sessions[session.ID] = &cp
	r.mu.Unlock()

	return nil
}

// UpdateMessage обновляет текст поля сообщений
func (r *MemorySessionRepository) UpdateMessage(ctx context.Context, id string, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, exists := r.sessions[id]; exists {
		session.SetMessage(text)
	}

	return nil
}

// UpdateImage обновляет номер показанного изображения
func (r *MemorySessionRepository) UpdateImage(ctx context.Context, id string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, exists := r.sessions[id]; exists {
		session.SetImage(index)
	}

	return nil
}

// UpdateMessageID обновляет ID сообщения чата
func (r *MemorySessionRepository) UpdateMessageID(ctx context.Context, id string, messageID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, exists := r.sessions[id]; exists {
		session.MessageID = messageID
	}

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
