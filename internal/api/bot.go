package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "overlay-bot/internal/application"
	"overlay-bot/internal/container"
	"overlay-bot/internal/domain/entity"
	"overlay-bot/internal/domain/port"
)

const (
	msgStart = `👋 Привет! Я показываю изображения с подписанными областями.

🖼 Под каждой картинкой есть кнопки: одна кнопка на каждую отмеченную область.

📋 Команды:
/show N — показать изображение N
/next — следующее изображение
/prev — предыдущее изображение
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /show и номер изображения (или просто номер)
2️⃣ Бот пришлёт картинку с отмеченными областями
3️⃣ Нажмите кнопку под картинкой, чтобы выбрать область

📋 Команды:
/show N — показать изображение N
/next, /prev — листать изображения`

	msgShowUsage       = "🔢 Укажите номер изображения: /show 3"
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgImageNotFound   = "⚠️ Не удалось загрузить изображение %d."
	msgHotspotOutdated = "Эта область больше не на экране"
)

// Bot представляет Telegram-бота
type Bot struct {
	api    *tgbotapi.BotAPI
	app    *container.Container
	logger *slog.Logger

	mu    sync.Mutex
	views map[int64]*chatView
}

// chatView Viewer чата
type chatView struct {
	viewer *app.Viewer
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("authorized on account", "username", api.Self.UserName)

	return &Bot{
		api:    api,
		app:    c,
		logger: logger,
		views:  make(map[int64]*chatView),
	}, nil
}

// Run запускает основной цикл обработки обновлений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.handleUpdate(ctx, update)
			}()
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Число без команды тоже открывает изображение
	if index, ok := parseIndex(msg.Text); ok {
		b.showImage(ctx, msg.Chat.ID, index)
		return
	}

	b.sendMessage(msg.Chat.ID, msgShowUsage)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.sendMessage(chatID, msgStart)
		b.showImage(ctx, chatID, b.app.SessionService.InitialIndex())

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "show":
		index, ok := parseIndex(msg.CommandArguments())
		if !ok {
			b.sendMessage(chatID, msgShowUsage)
			return
		}
		b.showImage(ctx, chatID, index)

	case "next", "prev":
		session, err := b.app.SessionService.Get(ctx, chatSessionID(chatID))
		if err != nil {
			b.logger.Error("error getting session", "chat_id", chatID, "error", err)
			return
		}
		step := 1
		if msg.Command() == "prev" {
			step = -1
		}
		b.showImage(ctx, chatID, session.ImageIndex+step)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleCallback обрабатывает нажатие на кнопку-хотспот
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	answer := ""
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, answer)); err != nil {
			b.logger.Warn("error answering callback", "error", err)
		}
	}()

	if cq.Message == nil {
		return
	}
	index, position, ok := parseCallback(cq.Data)
	if !ok {
		b.logger.Warn("unexpected callback data", "data", cq.Data)
		return
	}

	if !b.view(cq.Message.Chat.ID).viewer.Activate(index, position) {
		answer = msgHotspotOutdated
	}
}

// showImage загружает изображение с оверлеем и отправляет его в чат
func (b *Bot) showImage(ctx context.Context, chatID int64, index int) {
	view := b.view(chatID)
	view.viewer.LoadImage(ctx, index)

	if _, err := b.app.SessionService.SetImage(ctx, chatSessionID(chatID), index); err != nil {
		b.logger.Error("error saving session", "chat_id", chatID, "error", err)
	}

	var (
		data     []byte
		keyboard tgbotapi.InlineKeyboardMarkup
		buttons  bool
	)

	// Кнопки прикладываются только если на экране оверлей этого изображения
	if overlay, ok := shownOverlay(view.viewer, index); ok {
		rendered, err := b.app.RenderService.Render(ctx, overlay)
		if err != nil {
			b.logger.Error("error rendering overlay", "index", index, "error", err)
		} else {
			data = rendered
		}
		keyboard, buttons = buildKeyboard(index, overlay.Items)
	}

	if data == nil {
		raw, err := b.app.RenderService.Image(ctx, index)
		if err != nil {
			b.logger.Error("error loading image", "index", index, "error", err)
			b.sendMessage(chatID, fmt.Sprintf(msgImageNotFound, index))
			return
		}
		data = raw
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: fmt.Sprintf("%d.png", index), Bytes: data})
	photo.Caption = fmt.Sprintf("🖼 %d", index)
	if buttons {
		photo.ReplyMarkup = keyboard
	}
	if _, err := b.api.Send(photo); err != nil {
		b.logger.Error("error sending photo", "chat_id", chatID, "error", err)
	}
}

// view возвращает Viewer чата, создавая его при первом обращении
func (b *Bot) view(chatID int64) *chatView {
	b.mu.Lock()
	defer b.mu.Unlock()

	if v, ok := b.views[chatID]; ok {
		return v
	}

	surface := &chatSurface{bot: b, chatID: chatID}
	v := &chatView{
		viewer: b.app.NewViewer(app.Surfaces{
			Image:     surface,
			Messages:  surface,
			Container: surface,
		}),
	}
	b.views[chatID] = v
	return v
}

// showMessage выводит текст в поле сообщений чата: одно сообщение,
// которое редактируется при каждом нажатии.
func (b *Bot) showMessage(chatID int64, text string) {
	ctx := context.Background()
	sid := chatSessionID(chatID)

	session, err := b.app.SessionService.Get(ctx, sid)
	if err != nil {
		b.logger.Error("error getting session", "chat_id", chatID, "error", err)
		return
	}

	switch messageAction(session, text) {
	case messageKeep:
		return
	case messageEdit:
		edit := tgbotapi.NewEditMessageText(chatID, session.MessageID, text)
		if _, err := b.api.Send(edit); err == nil {
			b.saveMessage(ctx, sid, text)
			return
		}
		// сообщение удалено, отправляем новое
	}

	sent, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		b.logger.Error("error sending message", "chat_id", chatID, "error", err)
		return
	}
	if err := b.app.SessionService.SetMessageID(ctx, sid, sent.MessageID); err != nil {
		b.logger.Error("error saving session", "chat_id", chatID, "error", err)
	}
	b.saveMessage(ctx, sid, text)
}

func (b *Bot) saveMessage(ctx context.Context, sid, text string) {
	if err := b.app.SessionService.SetMessage(ctx, sid, text); err != nil {
		b.logger.Error("error saving message", "session", sid, "error", err)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("error sending message", "chat_id", chatID, "error", err)
	}
}

// chatSurface поле сообщений чата. Фото и кнопки отправляются целиком
// по Viewer.Overlay, поэтому изображение и контейнер ничего не хранят.
type chatSurface struct {
	bot    *Bot
	chatID int64
}

func (s *chatSurface) SetSource(string) {}

func (s *chatSurface) SetText(text string) {
	s.bot.showMessage(s.chatID, text)
}

func (s *chatSurface) Clear() {}

func (s *chatSurface) Append(entity.OverlayItem) {}

var (
	_ port.ImageSurface     = (*chatSurface)(nil)
	_ port.MessageSurface   = (*chatSurface)(nil)
	_ port.OverlayContainer = (*chatSurface)(nil)
)
