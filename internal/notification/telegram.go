package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier mirrors notifications into an operator chat. Used as a sandbox instead of real SMS or email.
// Without a bot token or chat id every Send fails with ErrNotifierDisabled.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	chatID    int64
	templates *Templates
	logger    logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, templates *Templates, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, templates: templates, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, templates: templates, logger: log}, nil
}

func (n *TelegramNotifier) Send(ctx context.Context, event domain.NotificationEvent, destination string, args domain.NotificationArgs) error {
	text, err := n.templates.Render(event, args)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	if n.bot == nil {
		n.logger.Warn("notification not sent (bot disabled)",
			logger.String("destination", destination),
			logger.String("event", string(event)),
		)
		return fmt.Errorf("send telegram notification: %w: empty bot token", ErrNotifierDisabled)
	}

	if n.chatID == 0 {
		n.logger.Warn("notification not sent (no chat_id)", logger.String("destination", destination))
		return fmt.Errorf("send telegram notification: %w: no chat_id", ErrNotifierDisabled)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send telegram notification: %w", err)
	}

	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("To %s:\n%s", destination, text))
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("send telegram notification: %w", err)
	}

	return nil
}
