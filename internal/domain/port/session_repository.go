package port

import (
	"context"

	"overlay-bot/internal/domain/entity"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	// Get возвращает сессию по ID, создаёт новую на изображении index если не найдена
	Get(ctx context.Context, id string, index int) (*entity.Session, error)

	// Save сохраняет сессию
	Save(ctx context.Context, session *entity.Session) error

	// UpdateMessage обновляет текст поля сообщений
	UpdateMessage(ctx context.Context, id string, text string) error

	// UpdateImage обновляет номер показанного изображения
	UpdateImage(ctx context.Context, id string, index int) error

	// UpdateMessageID обновляет ID сообщения, которое служит полем сообщений
	UpdateMessageID(ctx context.Context, id string, messageID int) error
}
