package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

//go:generate mockgen -package mocks -destination mocks/subscribers.go . SubscribersStore,SubscribersRegistry

type (
	SubscribersStore interface {
		LoadSubscribers() ([]int64, error)
		SaveSubscribers(chatIDs []int64) error
	}

	SubscribersRegistry interface {
		Add(ctx context.Context, chatID int64) (bool, error)
		Remove(ctx context.Context, chatID int64) (bool, error)
		Snapshot(ctx context.Context) ([]int64, error)
	}

	// Registry owns the set of subscribed chats.
	// All reads and writes go through a single goroutine, so mutations are totally ordered.
	Registry struct {
		requests chan registryRequest
		done     chan struct{}

		log *slog.Logger
	}

	registryOp int

	registryRequest struct {
		op     registryOp
		chatID int64
		reply  chan registryResponse
	}

	registryResponse struct {
		changed  bool
		snapshot []int64
	}
)

const (
	opAdd registryOp = iota
	opRemove
	opSnapshot
)

// StartRegistry loads the persisted subscribers and starts the owner goroutine.
// The owner stops when ctx is done.
func StartRegistry(ctx context.Context, store SubscribersStore, log *slog.Logger) *Registry {
	r := &Registry{
		requests: make(chan registryRequest),
		done:     make(chan struct{}),
		log:      log.With("component", "service").With("service", "registry"),
	}

	subscribers := r.load(ctx, store)
	go r.run(ctx, store, subscribers)

	return r
}

func (r *Registry) Add(ctx context.Context, chatID int64) (bool, error) {
	res, err := r.do(ctx, registryRequest{op: opAdd, chatID: chatID})
	return res.changed, err
}

func (r *Registry) Remove(ctx context.Context, chatID int64) (bool, error) {
	res, err := r.do(ctx, registryRequest{op: opRemove, chatID: chatID})
	return res.changed, err
}

// Snapshot returns a sorted copy of the subscribed chat IDs
func (r *Registry) Snapshot(ctx context.Context) ([]int64, error) {
	res, err := r.do(ctx, registryRequest{op: opSnapshot})
	return res.snapshot, err
}

func (r *Registry) Count(ctx context.Context) (int, error) {
	snapshot, err := r.Snapshot(ctx)
	return len(snapshot), err
}

// Done is closed once the owner goroutine has stopped
func (r *Registry) Done() <-chan struct{} {
	return r.done
}

func (r *Registry) do(ctx context.Context, req registryRequest) (registryResponse, error) {
	req.reply = make(chan registryResponse, 1)

	select {
	case r.requests <- req:
	case <-r.done:
		return registryResponse{}, ErrRegistryUnavailable
	case <-ctx.Done():
		return registryResponse{}, fmt.Errorf("%w: %w", ErrRegistryUnavailable, ctx.Err())
	}

	// accepted requests are always answered
	return <-req.reply, nil
}

func (r *Registry) run(ctx context.Context, store SubscribersStore, subscribers map[int64]struct{}) {
	defer close(r.done)
	r.log.InfoContext(ctx, "Registry started", "subscribers", len(subscribers))

	for {
		select {
		case <-ctx.Done():
			r.log.InfoContext(ctx, "Registry stopped", "subscribers", len(subscribers))
			return
		case req := <-r.requests:
			req.reply <- r.apply(ctx, store, subscribers, req)
		}
	}
}

func (r *Registry) apply(ctx context.Context, store SubscribersStore, subscribers map[int64]struct{}, req registryRequest) registryResponse {
	switch req.op {
	case opAdd:
		if _, ok := subscribers[req.chatID]; ok {
			return registryResponse{}
		}
		subscribers[req.chatID] = struct{}{}
	case opRemove:
		if _, ok := subscribers[req.chatID]; !ok {
			return registryResponse{}
		}
		delete(subscribers, req.chatID)
	case opSnapshot:
		return registryResponse{snapshot: sortedIDs(subscribers)}
	default:
		r.log.ErrorContext(ctx, "unknown registry operation", "op", req.op)
		return registryResponse{}
	}

	if err := store.SaveSubscribers(sortedIDs(subscribers)); err != nil {
		r.log.ErrorContext(ctx, "failed to save subscribers", "error", fmt.Errorf("%w: %w", ErrPersistence, err))
	}
	return registryResponse{changed: true}
}

func (r *Registry) load(ctx context.Context, store SubscribersStore) map[int64]struct{} {
	ids, err := store.LoadSubscribers()
	if err != nil {
		r.log.WarnContext(ctx, "failed to load subscribers, starting empty", "error", err)
		return make(map[int64]struct{})
	}

	subscribers := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		subscribers[id] = struct{}{}
	}
	return subscribers
}

func sortedIDs(subscribers map[int64]struct{}) []int64 {
	res := make([]int64, 0, len(subscribers))
	for id := range subscribers {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}
