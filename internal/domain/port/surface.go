package port

import "overlay-bot/internal/domain/entity"

// ImageSurface элемент, показывающий текущее изображение
type ImageSurface interface {
	SetSource(src string)
}

// MessageSurface поле, в которое выводится сообщение о нажатии
type MessageSurface interface {
	SetText(text string)
}

// OverlayContainer контейнер хотспотов и подписей поверх изображения
type OverlayContainer interface {
	// Clear удаляет все ранее добавленные хотспоты и подписи
	Clear()

	// Append добавляет хотспот и подпись одной записи
	Append(item entity.OverlayItem)
}
