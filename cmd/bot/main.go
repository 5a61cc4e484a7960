package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"go.etcd.io/bbolt"
	"golang.org/x/time/rate"

	tc "github.com/Roma7-7-7/telegram"

	"github.com/Roma7-7-7/daily-kaenguru/internal/config"
	"github.com/Roma7-7-7/daily-kaenguru/internal/dal"
	"github.com/Roma7-7-7/daily-kaenguru/internal/dal/migrations"
	"github.com/Roma7-7-7/daily-kaenguru/internal/providers"
	"github.com/Roma7-7-7/daily-kaenguru/internal/service"
	"github.com/Roma7-7-7/daily-kaenguru/internal/telegram"
	"github.com/Roma7-7-7/daily-kaenguru/pkg/clock"
)

const dbFileName = "subscribers.db"

func main() {
	download := flag.Bool("download", false, "download today's comic into DATA_DIR and exit")
	broadcast := flag.Bool("broadcast", false, "send today's comic to all subscribers now and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-download | -broadcast]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output(), "Without flags the bot serves commands and delivers the comic daily at DELIVERY_TIME.")
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptions:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *download && *broadcast {
		flag.Usage()
		os.Exit(2) //nolint:mnd // flag package exit code
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig()
	if err != nil {
		slog.Error("Failed to process env vars", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	switch {
	case *download:
		err = runDownload(ctx, conf, log)
	case *broadcast:
		err = runBroadcast(ctx, conf, log)
	default:
		err = runBot(ctx, conf, log)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Failed to run", "error", err)
		os.Exit(1)
	}
}

func runDownload(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	content, err := newContent(conf, log)
	if err != nil {
		return err
	}

	data, err := content.Today(ctx)
	if err != nil {
		return fmt.Errorf("download today's content: %w", err)
	}
	log.InfoContext(ctx, "Downloaded today's content", "size", len(data))
	return nil
}

func runBroadcast(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	app, err := newApp(ctx, conf, log)
	if err != nil {
		return err
	}
	defer app.close(log)

	report, err := app.scheduler.Deliver(ctx)
	if err != nil {
		return fmt.Errorf("deliver today's content: %w", err)
	}
	log.InfoContext(ctx, "Broadcast done", "total", report.Total, "delivered", report.Delivered, "failed", report.Failed, "purged", report.Purged)
	return nil
}

func runBot(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	app, err := newApp(ctx, conf, log)
	if err != nil {
		return err
	}
	defer app.close(log)

	if count, err := app.registry.Count(ctx); err == nil {
		log.InfoContext(ctx, "Serving subscribers", "subscribers", count)
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.scheduler.Run(ctx)
	}()

	log.Info("Starting bot")
	err = app.bot.Start(ctx, app.commands, telegram.NewPurgeOnForbiddenMiddleware(app.registry, log))
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to start bot", "error", err)
		}
	}

	wg.Wait()
	// registry outlives the bot and the scheduler so late unsubscribes are still saved
	if count, err := app.registry.Count(context.WithoutCancel(ctx)); err == nil {
		log.Info("Stopping with subscribers", "subscribers", count)
	}
	log.Info("Stopped bot")
	return nil
}

type app struct {
	db           *bbolt.DB
	registry     *service.Registry
	stopRegistry context.CancelFunc
	scheduler    *service.Scheduler
	commands     *service.Commands
	bot          *telegram.Bot
}

func newApp(ctx context.Context, conf *config.Config, log *slog.Logger) (*app, error) {
	at, err := service.ParseDeliveryTime(conf.DeliveryTime)
	if err != nil {
		return nil, err
	}

	token, err := conf.ResolveTelegramToken(ctx, config.NewSSMStore)
	if err != nil {
		return nil, fmt.Errorf("resolve telegram token: %w", err)
	}

	content, err := newContent(conf, log)
	if err != nil {
		return nil, err
	}
	loc, err := conf.Location()
	if err != nil {
		return nil, err
	}

	db, err := bbolt.Open(filepath.Join(conf.DataDir, dbFileName), 0o600, &bbolt.Options{Timeout: time.Second}) //nolint:mnd
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	legacyFile := conf.LegacyChatIDsFile
	if legacyFile != "" && !filepath.IsAbs(legacyFile) {
		legacyFile = filepath.Join(conf.DataDir, legacyFile)
	}
	if err := migrations.RunMigrations(db, log, migrations.Default(legacyFile, log)...); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	store, err := dal.NewBoltDB(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bolt store: %w", err)
	}
	if count, err := store.CountSubscribers(); err == nil {
		log.InfoContext(ctx, "Database opened", "subscribers", count)
	}

	bot, err := telegram.NewBot(token, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	limiter := rate.NewLimiter(rate.Limit(conf.SendRate), 1)
	messenger := telegram.NewMessenger(tc.NewClient(http.DefaultClient, token), bot.API(), limiter, log)

	registryCtx, stopRegistry := context.WithCancel(context.WithoutCancel(ctx))
	registry := service.StartRegistry(registryCtx, store, log)
	delivery := service.NewDelivery(registry, messenger, log)

	return &app{
		db:           db,
		registry:     registry,
		stopRegistry: stopRegistry,
		scheduler:    service.NewScheduler(at, content, delivery, clock.NewWithLocation(loc), log),
		commands:     service.NewCommands(registry, content, messenger, log),
		bot:          bot,
	}, nil
}

func (a *app) close(log *slog.Logger) {
	a.stopRegistry()
	<-a.registry.Done()
	if err := a.db.Close(); err != nil {
		log.Error("Failed to close database", "error", err)
	}
}

func newContent(conf *config.Config, log *slog.Logger) (*service.Content, error) {
	loc, err := conf.Location()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(conf.DataDir, 0o750); err != nil { //nolint:mnd
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	cache, err := dal.NewContentCache(conf.DataDir, conf.ContentFileLayout)
	if err != nil {
		return nil, fmt.Errorf("create content cache: %w", err)
	}
	origin := providers.NewHTTPOrigin(conf.ContentBaseURL, conf.ContentFilename, conf.FetchTimeout)

	return service.NewContent(origin, cache, clock.NewWithLocation(loc), log), nil
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
