// Package query is the cache-and-mutate layer between page logic and the API
// modules: keyed fetches with staleness, prefix invalidation, in-flight
// de-duplication, and user-facing notifications for mutation outcomes.
package query

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"campus-connect-client/pkg/apierror"
)

// Notifier receives user-facing outcome messages (the toast analog).
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

type entry struct {
	value     any
	fetchedAt time.Time
}

type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Cache{
		ttl:     ttl,
		entries: map[string]entry{},
	}
}

// Fetch returns the cached value for key while it is fresh; otherwise it runs
// fn, collapsing concurrent callers onto a single in-flight request.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(context.Context) (T, error)) (T, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && time.Since(cached.fetchedAt) < c.ttl {
		if typed, valid := cached.value.(T); valid {
			return typed, nil
		}
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		value, fetchErr := fn(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}

		c.mu.Lock()
		c.entries[key] = entry{value: value, fetchedAt: time.Now()}
		c.mu.Unlock()

		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}

// Mutate runs a write operation, invalidates the affected key prefixes, and
// reports the outcome through the notifier. The error message prefers what
// the backend said over the caller's fallback.
func Mutate[T any](ctx context.Context, c *Cache, n Notifier, invalidate []string, successMsg string, errorMsg string, fn func(context.Context) (T, error)) (T, error) {
	result, err := fn(ctx)
	if err != nil {
		if n != nil {
			n.Error(Message(err, errorMsg))
		}
		var zero T
		return zero, err
	}

	for _, prefix := range invalidate {
		c.Invalidate(prefix)
	}
	if n != nil && successMsg != "" {
		n.Success(successMsg)
	}

	return result, nil
}

// Invalidate drops every entry whose key starts with prefix.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Get returns the cached value regardless of freshness.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	return cached.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, fetchedAt: time.Now()}
}

// Message extracts the backend's human-readable message from err, falling
// back to the supplied default.
func Message(err error, fallback string) string {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}
