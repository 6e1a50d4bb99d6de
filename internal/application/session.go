package app

import (
	"context"

	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

type SessionService struct {
	repo         port.SessionRepository
	initialIndex int
}

func NewSessionService(repo port.SessionRepository, initialIndex int) *SessionService {
	return &SessionService{repo: repo, initialIndex: initialIndex}
}

func (s *SessionService) Get(ctx context.Context, id string) (*entity.Session, error) {
	return s.repo.Get(ctx, id, s.initialIndex)
}

func (s *SessionService) SetImage(ctx context.Context, id string, index int) (*entity.Session, error) {
	if _, err := s.repo.Get(ctx, id, s.initialIndex); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateImage(ctx, id, index); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id, s.initialIndex)
}

func (s *SessionService) SetMessage(ctx context.Context, id string, text string) error {
	if _, err := s.repo.Get(ctx, id, s.initialIndex); err != nil {
		return err
	}
	return s.repo.UpdateMessage(ctx, id, text)
}

func (s *SessionService) SetMessageID(ctx context.Context, id string, messageID int) error {
	if _, err := s.repo.Get(ctx, id, s.initialIndex); err != nil {
		return err
	}
	return s.repo.UpdateMessageID(ctx, id, messageID)
}

// InitialIndex номер изображения, с которого начинается просмотр.
func (s *SessionService) InitialIndex() int {
	return s.initialIndex
}
