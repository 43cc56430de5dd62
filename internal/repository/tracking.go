package repository

import (
	"context"
	"sync"
)

type trackingKey struct{}

type trackedKey struct {
	table string
	key   any
}

// Tracker registers instances returned by tracked reads for the lifetime of
// one request. It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	entries map[trackedKey]any
}

// WithTracking returns a child context carrying a fresh tracking scope.
func WithTracking(ctx context.Context) context.Context {
	return context.WithValue(ctx, trackingKey{}, &Tracker{entries: make(map[trackedKey]any)})
}

// TrackerFrom returns the scope installed by WithTracking, or nil.
func TrackerFrom(ctx context.Context) *Tracker {
	t, _ := ctx.Value(trackingKey{}).(*Tracker)
	return t
}

// Len reports how many instances are tracked.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Attach registers fresh under its key and returns the tracked instance.
// An instance already tracked for the key is refreshed in place with fresh's
// values and returned, so one key maps to one instance per request.
func Attach[T any](t *Tracker, table string, key any, fresh *T) *T {
	if t == nil {
		return fresh
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	k := trackedKey{table: table, key: key}
	if existing, ok := t.entries[k].(*T); ok {
		*existing = *fresh
		return existing
	}
	t.entries[k] = fresh
	return fresh
}

// Replace overwrites the tracked instance for key, if any, with replacement.
func Replace[T any](t *Tracker, table string, key any, replacement *T) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.entries[trackedKey{table: table, key: key}].(*T); ok && existing != replacement {
		*existing = *replacement
	}
}

// Detach stops tracking the instance for key.
func (t *Tracker) Detach(table string, key any) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, trackedKey{table: table, key: key})
}
