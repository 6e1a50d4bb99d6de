package port

import "overlay-bot/internal/domain/entity"

// OverlayRenderer рисует оверлей поверх изображения
type OverlayRenderer interface {
	// Render возвращает закодированную картинку с нарисованными хотспотами и подписями
	Render(imageData []byte, overlay entity.Overlay) ([]byte, error)
}
