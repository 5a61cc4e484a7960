package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Roma7-7-7/daily-kaenguru/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/content.go . ContentOrigin,ContentCache,ContentProvider

type (
	Clock interface {
		Now() time.Time
	}

	ContentOrigin interface {
		Download(ctx context.Context, d dal.Date) ([]byte, error)
	}

	ContentCache interface {
		GetContent(d dal.Date) ([]byte, bool, error)
		PutContent(d dal.Date, data []byte) error
	}

	ContentProvider interface {
		Today(ctx context.Context) ([]byte, error)
	}

	// Content fetches the content of a date from the origin at most once and caches it.
	// Returned slices are shared between callers and must not be modified.
	Content struct {
		origin ContentOrigin
		cache  ContentCache
		clock  Clock

		group singleflight.Group
		log   *slog.Logger
	}
)

func NewContent(origin ContentOrigin, cache ContentCache, clock Clock, log *slog.Logger) *Content {
	return &Content{
		origin: origin,
		cache:  cache,
		clock:  clock,
		log:    log.With("component", "service").With("service", "content"),
	}
}

// Today returns the content of the current local date
func (c *Content) Today(ctx context.Context) ([]byte, error) {
	return c.Get(ctx, dal.DateByTime(c.clock.Now()))
}

// Get returns the content of d, downloading it only if it is not cached yet.
// If caching a fresh download fails, the content is returned together with an error wrapping ErrFetchIO.
func (c *Content) Get(ctx context.Context, d dal.Date) ([]byte, error) {
	res, err, shared := c.group.Do(d.ToKey(), func() (interface{}, error) {
		return c.load(ctx, d)
	})
	if shared {
		c.log.DebugContext(ctx, "content request shared with concurrent caller", "date", d.ToKey())
	}

	data, _ := res.([]byte)
	return data, err
}

func (c *Content) load(ctx context.Context, d dal.Date) ([]byte, error) {
	log := c.log.With("date", d.ToKey())

	data, ok, err := c.cache.GetContent(d)
	switch {
	case err != nil:
		log.WarnContext(ctx, "failed to read cached content, downloading", "error", err)
	case ok:
		log.DebugContext(ctx, "content found in cache")
		return data, nil
	}

	log.InfoContext(ctx, "downloading content")
	data, err = c.origin.Download(ctx, d)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w for %s: %w", ErrFetchHTTP, d.ToKey(), err)
	}

	if err := c.cache.PutContent(d, data); err != nil {
		return data, fmt.Errorf("%w for %s: %w", ErrFetchIO, d.ToKey(), err)
	}
	log.InfoContext(ctx, "content downloaded and cached", "size", len(data))

	return data, nil
}

// usable reports whether content returned together with err can still be delivered
func usable(content []byte, err error) bool {
	return err == nil || (content != nil && errors.Is(err, ErrFetchIO))
}
