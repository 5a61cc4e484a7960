package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tc "github.com/Roma7-7-7/telegram"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/daily-kaenguru/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/commands.go . Commands

type (
	Commands interface {
		Handle(ctx context.Context, cmd service.Command, chat service.Chat) error
	}

	Bot struct {
		bot *tb.Bot

		log *slog.Logger
	}

	// chatContext carries the chat of an update through tc middlewares
	chatContext struct {
		context.Context
		chat service.Chat
	}
)

// endpoints telebot dispatches to the command handler; service.ParseCommand decides what they mean
var commandEndpoints = []string{"/start", "/subscribe", "/stop", "/unsubscribe"}

var commandsMenu = []tb.Command{
	{Text: "start", Description: "Startet den Bot"},
	{Text: "stop", Description: "Stoppt den Bot"},
}

func NewBot(token string, log *slog.Logger) (*Bot, error) {
	log = log.With("component", "bot")

	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok

		OnError: func(err error, c tb.Context) {
			var chatID int64
			if c != nil && c.Chat() != nil {
				chatID = c.Chat().ID
			}
			log.Error("Failed to handle update", "chatID", chatID, "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		log: log,
	}, nil
}

// API exposes the underlying client for outbound calls
func (b *Bot) API() *tb.Bot {
	return b.bot
}

// Start polls for updates and dispatches commands until ctx is done
func (b *Bot) Start(ctx context.Context, commands Commands, purge *PurgeOnForbiddenMiddleware) error {
	handler := NewCommandHandler(ctx, commands, purge, b.log)
	for _, endpoint := range commandEndpoints {
		b.bot.Handle(endpoint, handler)
	}

	if err := b.bot.SetCommands(commandsMenu); err != nil {
		b.log.WarnContext(ctx, "Failed to publish commands menu", "error", err)
	}

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.log.InfoContext(ctx, "Starting bot", "username", b.bot.Me.Username)
	b.bot.Start()

	return nil
}

// NewCommandHandler parses the command of an update and runs it through the purge middleware
func NewCommandHandler(ctx context.Context, commands Commands, purge *PurgeOnForbiddenMiddleware, log *slog.Logger) tb.HandlerFunc {
	return func(c tb.Context) error {
		cmd, ok := service.ParseCommand(c.Text())
		if !ok {
			log.DebugContext(ctx, "Unknown command", "text", c.Text())
			return nil
		}
		if c.Chat() == nil {
			log.WarnContext(ctx, "Command without chat", "command", cmd.String())
			return nil
		}

		chat := chatFrom(c.Chat())
		log.DebugContext(ctx, "Command received", "command", cmd.String(), "chatID", chat.ID)

		handle := purge.Handle(func(ctx tc.Context) error {
			return commands.Handle(ctx, cmd, chat)
		})
		return handle(&chatContext{Context: ctx, chat: chat})
	}
}

func chatFrom(chat *tb.Chat) service.Chat {
	return service.Chat{
		ID:      chat.ID,
		Private: chat.Type == tb.ChatPrivate,
	}
}

func (c *chatContext) ChatID() (string, bool) {
	return strconv.FormatInt(c.chat.ID, 10), true
}
