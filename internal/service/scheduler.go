package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const defaultMaxWait = time.Minute

type (
	// DeliveryTime is a local time of day
	DeliveryTime struct {
		Hour   int
		Minute int
	}

	Scheduler struct {
		at          DeliveryTime
		content     ContentProvider
		broadcaster Broadcaster
		clock       Clock

		// maxWait bounds a single sleep so that clock jumps and suspends are noticed
		maxWait time.Duration
		after   func(time.Duration) <-chan time.Time

		log *slog.Logger
	}
)

func ParseDeliveryTime(s string) (DeliveryTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return DeliveryTime{}, fmt.Errorf("parse delivery time %q: %w", s, err)
	}
	return DeliveryTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t DeliveryTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Next returns the first occurrence of t strictly after now, in now's location.
// Days are stepped by calendar date, so DST transitions keep the wall-clock time.
func (t DeliveryTime) Next(now time.Time) time.Time {
	y, m, d := now.Date()
	next := time.Date(y, m, d, t.Hour, t.Minute, 0, 0, now.Location())
	if next.After(now) {
		return next
	}
	return time.Date(y, m, d+1, t.Hour, t.Minute, 0, 0, now.Location())
}

func NewScheduler(at DeliveryTime, content ContentProvider, broadcaster Broadcaster, clock Clock, log *slog.Logger) *Scheduler {
	return &Scheduler{
		at:          at,
		content:     content,
		broadcaster: broadcaster,
		clock:       clock,

		maxWait: defaultMaxWait,
		after:   time.After,

		log: log.With("component", "scheduler"),
	}
}

// Run delivers the content once a day at the delivery time until ctx is done
func (s *Scheduler) Run(ctx context.Context) {
	s.log.InfoContext(ctx, "Starting scheduler", "at", s.at.String())
	defer s.log.InfoContext(ctx, "Scheduler stopped")

	// last delivery target; a clock stepped back behind it must not repeat that day
	var last time.Time
	for {
		now := s.clock.Now()
		from := now
		if from.Before(last) {
			s.log.WarnContext(ctx, "Clock is behind the last delivery", "now", now.Format(time.RFC3339), "last", last.Format(time.RFC3339))
			from = last
		}
		next := s.at.Next(from)
		s.log.InfoContext(ctx, "Waiting for next delivery", "at", next.Format(time.RFC3339), "in", next.Sub(now).Round(time.Second).String())

		if !s.waitUntil(ctx, next) {
			return
		}
		last = next

		err := withRecovery(ctx, func(ctx context.Context) error {
			_, err := s.Deliver(ctx)
			return err
		}, s.log)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.ErrorContext(ctx, "Delivery failed, skipping until next day", "error", err)
		}
	}
}

// Deliver broadcasts today's content. Content that failed only to be cached is still broadcast.
func (s *Scheduler) Deliver(ctx context.Context) (DeliveryReport, error) {
	content, err := s.content.Today(ctx)
	if !usable(content, err) {
		return DeliveryReport{}, fmt.Errorf("get today's content: %w", err)
	}
	if err != nil {
		s.log.WarnContext(ctx, "failed to cache today's content, delivering anyway", "error", err)
	}

	report, err := s.broadcaster.Broadcast(ctx, content)
	if err != nil {
		return report, fmt.Errorf("broadcast content: %w", err)
	}
	return report, nil
}

// waitUntil sleeps until the clock reaches target. It returns false if ctx is done first.
func (s *Scheduler) waitUntil(ctx context.Context, target time.Time) bool {
	for {
		if ctx.Err() != nil {
			return false
		}

		remaining := target.Sub(s.clock.Now())
		if remaining <= 0 {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-s.after(min(remaining, s.maxWait)):
		}
	}
}

func withRecovery(ctx context.Context, fn func(ctx context.Context) error, log *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Recovered from panic", "panic", r)
			err = fmt.Errorf("recovered from panic: %v", r)
		}
	}()

	return fn(ctx)
}
