package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

//go:generate mockgen -package mocks -destination mocks/messenger.go . Messenger

const (
	msgSubscribed        = "Hallo!"
	msgAlreadySubscribed = "Schon unterwegs!"
	msgSubscribeFailed   = "Razupaltuff."
	msgUnsubscribed      = "Ciao!"
)

type (
	Command int

	Chat struct {
		ID      int64
		Private bool
	}

	Messenger interface {
		MediaSender
		SendText(ctx context.Context, chatID int64, text string) error
		Leave(ctx context.Context, chatID int64) error
	}

	Commands struct {
		registry  SubscribersRegistry
		content   ContentProvider
		messenger Messenger

		log *slog.Logger
	}
)

const (
	CommandUnknown Command = iota
	CommandSubscribe
	CommandUnsubscribe
)

// ParseCommand recognizes /start, /subscribe, /stop and /unsubscribe.
// Arguments and a trailing @botname are ignored.
func ParseCommand(text string) (Command, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return CommandUnknown, false
	}
	name, _, _ := strings.Cut(fields[0], "@")

	switch strings.ToLower(name) {
	case "/start", "/subscribe":
		return CommandSubscribe, true
	case "/stop", "/unsubscribe":
		return CommandUnsubscribe, true
	default:
		return CommandUnknown, false
	}
}

func (c Command) String() string {
	switch c {
	case CommandSubscribe:
		return "subscribe"
	case CommandUnsubscribe:
		return "unsubscribe"
	default:
		return "unknown"
	}
}

func NewCommands(registry SubscribersRegistry, content ContentProvider, messenger Messenger, log *slog.Logger) *Commands {
	return &Commands{
		registry:  registry,
		content:   content,
		messenger: messenger,
		log:       log.With("component", "service").With("service", "commands"),
	}
}

func (c *Commands) Handle(ctx context.Context, cmd Command, chat Chat) error {
	switch cmd {
	case CommandSubscribe:
		return c.subscribe(ctx, chat)
	case CommandUnsubscribe:
		return c.unsubscribe(ctx, chat)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCommand, cmd)
	}
}

func (c *Commands) subscribe(ctx context.Context, chat Chat) error {
	log := c.log.With("chatID", chat.ID)

	var reply string
	added, err := c.registry.Add(ctx, chat.ID)
	switch {
	case err != nil:
		log.ErrorContext(ctx, "failed to subscribe chat", "error", err)
		reply = msgSubscribeFailed
	case added:
		log.InfoContext(ctx, "Chat subscribed")
		reply = msgSubscribed
	default:
		log.DebugContext(ctx, "Chat already subscribed")
		reply = msgAlreadySubscribed
	}

	if err := c.messenger.SendText(ctx, chat.ID, reply); err != nil {
		return fmt.Errorf("send subscribe reply: %w", err)
	}

	content, err := c.content.Today(ctx)
	if !usable(content, err) {
		log.WarnContext(ctx, "failed to get today's content", "error", err)
		return nil
	}
	if err != nil {
		log.WarnContext(ctx, "failed to cache today's content, sending anyway", "error", err)
	}

	if err := c.messenger.SendMedia(ctx, chat.ID, content); err != nil {
		return fmt.Errorf("send today's content: %w", err)
	}
	return nil
}

func (c *Commands) unsubscribe(ctx context.Context, chat Chat) error {
	log := c.log.With("chatID", chat.ID)

	removed, err := c.registry.Remove(ctx, chat.ID)
	if err != nil {
		log.ErrorContext(ctx, "failed to unsubscribe chat", "error", err)
	} else {
		log.InfoContext(ctx, "Chat unsubscribed", "wasSubscribed", removed)
	}

	var replyErr error
	if err := c.messenger.SendText(ctx, chat.ID, msgUnsubscribed); err != nil {
		replyErr = fmt.Errorf("send unsubscribe reply: %w", err)
	}

	if !chat.Private {
		if err := c.messenger.Leave(ctx, chat.ID); err != nil {
			log.WarnContext(ctx, "failed to leave chat", "error", err)
		}
	}

	return replyErr
}
