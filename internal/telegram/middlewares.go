package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/Roma7-7-7/telegram"

	"github.com/Roma7-7-7/daily-kaenguru/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/subscribers.go . Subscribers

type Subscribers interface {
	Remove(ctx context.Context, chatID int64) (bool, error)
}

// PurgeOnForbiddenMiddleware unsubscribes chats that blocked the bot or removed it
type PurgeOnForbiddenMiddleware struct {
	subscribers Subscribers

	log *slog.Logger
}

func NewPurgeOnForbiddenMiddleware(subscribers Subscribers, log *slog.Logger) *PurgeOnForbiddenMiddleware {
	return &PurgeOnForbiddenMiddleware{
		subscribers: subscribers,
		log:         log.With("component", "telegram").With("middleware", "purge"),
	}
}

func (m *PurgeOnForbiddenMiddleware) Handle(next telegram.Handler) telegram.Handler {
	return func(ctx telegram.Context) error {
		rootErr := next(ctx)
		if !isBlocked(rootErr) {
			return rootErr
		}

		m.log.WarnContext(ctx, "Bot is blocked. Unsubscribing chat")
		chatIDStr, ok := ctx.ChatID()
		if !ok {
			m.log.WarnContext(ctx, "ChatID is not present in telegram context")
			return rootErr
		}
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64) //nolint:mnd
		if err != nil {
			m.log.WarnContext(ctx, "ChatID is not a number", "chatID", chatIDStr, "error", err)
			return rootErr
		}
		if _, err = m.subscribers.Remove(ctx, chatID); err != nil {
			m.log.ErrorContext(ctx, "Unsubscribe blocked chat failed", "chatID", chatID, "error", err)
		}
		return rootErr
	}
}

func isBlocked(err error) bool {
	return errors.Is(err, service.ErrRecipientBlocked) || errors.Is(err, telegram.ErrForbidden)
}
