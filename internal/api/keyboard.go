package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"overlay-bot/internal/domain/entity"
)

const (
	callbackPrefix = "hs"
	buttonsPerRow  = 4
)

// buildKeyboard превращает хотспоты в inline-кнопки, по одной на хотспот.
// Возвращает false, если кнопок нет: Telegram не принимает пустую клавиатуру.
func buildKeyboard(index int, items []entity.OverlayItem) (tgbotapi.InlineKeyboardMarkup, bool) {
	if len(items) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, it := range items {
		text := strings.TrimSpace(it.Text)
		if text == "" {
			text = "#" + strconv.Itoa(it.Position)
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(text, callbackData(index, it.Position)))
		if len(row) == buttonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

func callbackData(index, position int) string {
	return fmt.Sprintf("%s:%d:%d", callbackPrefix, index, position)
}

// parseCallback разбирает данные кнопки вида hs:<index>:<position>
func parseCallback(data string) (index, position int, ok bool) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != callbackPrefix {
		return 0, 0, false
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	position, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}
	return index, position, true
}

// parseIndex разбирает номер изображения из аргумента команды
func parseIndex(arg string) (int, bool) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, false
	}
	return index, true
}

func chatSessionID(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}
