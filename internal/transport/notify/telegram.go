package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/samber/oops"
)

// Telegram delivers alerts to a chat via a bot token.
type Telegram struct {
	bot    *bot.Bot
	chatID int64
}

func NewTelegram(botToken string, chatID int64) (*Telegram, error) {
	b, err := bot.New(botToken)
	if err != nil {
		return nil, oops.With("service", "telegram").Wrap(err)
	}
	return &Telegram{bot: b, chatID: chatID}, nil
}

func (t *Telegram) Send(ctx context.Context, title, message string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   fmt.Sprintf("%s\n\n%s", title, message),
	})
	if err != nil {
		return oops.With("service", "telegram", "chat_id", t.chatID).Wrap(err)
	}
	return nil
}
