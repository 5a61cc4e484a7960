package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

//go:generate mockgen -package mocks -destination mocks/delivery.go . MediaSender,Broadcaster

type (
	MediaSender interface {
		SendMedia(ctx context.Context, chatID int64, content []byte) error
	}

	Broadcaster interface {
		Broadcast(ctx context.Context, content []byte) (DeliveryReport, error)
	}

	DeliveryReport struct {
		Total     int
		Delivered int
		Failed    int
		Purged    int
	}

	Delivery struct {
		registry SubscribersRegistry
		sender   MediaSender

		log *slog.Logger
	}
)

func NewDelivery(registry SubscribersRegistry, sender MediaSender, log *slog.Logger) *Delivery {
	return &Delivery{
		registry: registry,
		sender:   sender,
		log:      log.With("component", "service").With("service", "delivery"),
	}
}

// Broadcast sends content to every chat subscribed at the moment of the call.
// Failures of individual chats are logged and counted. Chats that blocked the bot are unsubscribed.
func (d *Delivery) Broadcast(ctx context.Context, content []byte) (DeliveryReport, error) {
	chatIDs, err := d.registry.Snapshot(ctx)
	if err != nil {
		return DeliveryReport{}, fmt.Errorf("get subscribers snapshot: %w", err)
	}

	report := DeliveryReport{Total: len(chatIDs)}
	d.log.InfoContext(ctx, "Broadcasting content", "subscribers", report.Total, "size", len(content))

	for _, chatID := range chatIDs {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("broadcast interrupted: %w", err)
		}

		err := d.sender.SendMedia(ctx, chatID, content)
		if err == nil {
			report.Delivered++
			continue
		}
		report.Failed++

		log := d.log.With("chatID", chatID)
		if !errors.Is(err, ErrRecipientBlocked) {
			log.WarnContext(ctx, "failed to deliver content", "error", err)
			continue
		}

		log.InfoContext(ctx, "bot is blocked by chat, unsubscribing", "error", err)
		removed, err := d.registry.Remove(ctx, chatID)
		if err != nil {
			log.ErrorContext(ctx, "failed to unsubscribe blocked chat", "error", err)
			continue
		}
		if removed {
			report.Purged++
		}
	}

	log := d.log.With("total", report.Total, "delivered", report.Delivered, "failed", report.Failed, "purged", report.Purged)
	if report.Failed > 0 {
		log.WarnContext(ctx, "Broadcast finished with failures")
	} else {
		log.InfoContext(ctx, "Broadcast finished")
	}
	return report, nil
}
