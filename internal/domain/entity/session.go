package entity

// Session состояние одного зрителя: вкладки браузера или чата Telegram
type Session struct {
	ID         string // идентификатор сессии (cookie или чат)
	ImageIndex int    // последнее показанное изображение
	Message    string // текущее содержимое поля сообщений
	MessageID  int    // ID сообщения Telegram, которое служит полем сообщений
}

// NewSession создаёт новую сессию, открытую на изображении index
func NewSession(id string, index int) *Session {
	return &Session{
		ID:         id,
		ImageIndex: index,
	}
}

// SetImage запоминает номер показанного изображения
func (s *Session) SetImage(index int) {
	s.ImageIndex = index
}

// SetMessage заменяет текст поля сообщений
func (s *Session) SetMessage(text string) {
	s.Message = text
}
