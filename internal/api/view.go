package telegram

import (
	app "overlay-bot/internal/application"
	"overlay-bot/internal/domain/entity"
)

type messageMode int

const (
	messageSend messageMode = iota
	messageEdit
	messageKeep
)

// shownOverlay возвращает оверлей изображения index, если именно он сейчас на экране.
// Номер и записи берутся из одного чтения Viewer.
func shownOverlay(v *app.Viewer, index int) (entity.Overlay, bool) {
	overlay, ok := v.Overlay()
	if !ok || overlay.ImageIndex != index {
		return entity.Overlay{}, false
	}
	return overlay, true
}

// messageAction решает, как вывести text в поле сообщений чата.
// Telegram отклоняет правку, которая не меняет текст, поэтому такой вывод пропускается.
func messageAction(session *entity.Session, text string) messageMode {
	switch {
	case session.MessageID == 0:
		return messageSend
	case session.Message == text:
		return messageKeep
	default:
		return messageEdit
	}
}
