package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	tc "github.com/Roma7-7-7/telegram"
	"golang.org/x/time/rate"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/daily-kaenguru/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/messenger.go . MessageSender,ChatAPI

type (
	MessageSender interface {
		SendMessage(ctx context.Context, chatID, msg string) error
	}

	// ChatAPI is the part of *tb.Bot used to upload media and leave chats
	ChatAPI interface {
		Send(to tb.Recipient, what interface{}, opts ...interface{}) (*tb.Message, error)
		Leave(chat tb.Recipient) error
	}

	// Messenger sends outbound messages, pacing every call with a shared limiter
	Messenger struct {
		sender  MessageSender
		api     ChatAPI
		limiter *rate.Limiter

		log *slog.Logger
	}
)

func NewMessenger(sender MessageSender, api ChatAPI, limiter *rate.Limiter, log *slog.Logger) *Messenger {
	return &Messenger{
		sender:  sender,
		api:     api,
		limiter: limiter,
		log:     log.With("component", "telegram").With("service", "messenger"),
	}
}

func (m *Messenger) SendText(ctx context.Context, chatID int64, text string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for send limiter: %w", err)
	}

	if err := m.sender.SendMessage(ctx, strconv.FormatInt(chatID, 10), text); err != nil {
		return deliveryError("send message", chatID, err)
	}
	return nil
}

func (m *Messenger) SendMedia(ctx context.Context, chatID int64, content []byte) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for send limiter: %w", err)
	}

	photo := &tb.Photo{File: tb.FromReader(bytes.NewReader(content))}
	if _, err := m.api.Send(tb.ChatID(chatID), photo); err != nil {
		return deliveryError("send photo", chatID, err)
	}
	m.log.DebugContext(ctx, "photo sent", "chatID", chatID, "size", len(content))
	return nil
}

func (m *Messenger) Leave(ctx context.Context, chatID int64) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for send limiter: %w", err)
	}

	if err := m.api.Leave(tb.ChatID(chatID)); err != nil {
		return fmt.Errorf("leave chat %d: %w", chatID, err)
	}
	return nil
}

func deliveryError(action string, chatID int64, err error) error {
	kind := service.ErrDelivery
	if forbidden(err) {
		kind = service.ErrRecipientBlocked
	}
	return fmt.Errorf("%s to chat %d: %w: %w", action, chatID, kind, err)
}

func forbidden(err error) bool {
	if errors.Is(err, tc.ErrForbidden) ||
		errors.Is(err, tb.ErrBlockedByUser) ||
		errors.Is(err, tb.ErrKickedFromGroup) ||
		errors.Is(err, tb.ErrKickedFromSuperGroup) {
		return true
	}

	var apiErr *tb.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden
}
