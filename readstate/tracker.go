// Package readstate merges server-reported read flags with a locally
// persisted fallback set so unread indicators work whether or not the
// backend tracks read status for an item.
package readstate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"campus-connect-client/api"
	"campus-connect-client/localstore"
	"campus-connect-client/model"
)

type Tracker struct {
	local         *localstore.Store
	announcements *api.AnnouncementsAPI
	authed        func() bool
	logger        *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{}

	// Tracks detached mark-read calls so tests can wait for them.
	pending sync.WaitGroup
}

// NewTracker loads the persisted seen set. announcements may be nil, in
// which case marks stay local-only.
func NewTracker(local *localstore.Store, announcements *api.AnnouncementsAPI, authed func() bool, logger *slog.Logger) (*Tracker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if authed == nil {
		authed = func() bool { return false }
	}

	t := &Tracker{
		local:         local,
		announcements: announcements,
		authed:        authed,
		logger:        logger,
		seen:          map[string]struct{}{},
	}

	raw, err := local.Get(localstore.KeyReadAnnouncements)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return t, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// A corrupt set only costs unread badges; start over.
		logger.Warn("stored read set is corrupt, resetting", "error", err.Error())
		return t, nil
	}

	for _, id := range ids {
		t.seen[id] = struct{}{}
	}

	return t, nil
}

// Reconcile unions every id the server reports as read into the local set.
// The merge is one-way: ids are never removed, so a later fetch that omits
// the flag cannot un-read an item.
func (t *Tracker) Reconcile(items []model.Announcement) {
	t.mu.Lock()
	defer t.mu.Unlock()

	changed := false
	for _, item := range items {
		if item.IsRead != nil && *item.IsRead {
			if _, ok := t.seen[item.ID]; !ok {
				t.seen[item.ID] = struct{}{}
				changed = true
			}
		}
	}

	if changed {
		t.persistLocked()
	}
}

// MarkRead records the id locally first (optimistic, never rolled back) and,
// when a session user exists, tells the backend in a detached task whose
// failure is logged and swallowed.
func (t *Tracker) MarkRead(id string) {
	t.mu.Lock()
	if _, ok := t.seen[id]; ok {
		t.mu.Unlock()
		return
	}
	t.seen[id] = struct{}{}
	t.persistLocked()
	t.mu.Unlock()

	if t.announcements == nil || !t.authed() {
		return
	}

	t.pending.Add(1)
	go func() {
		defer t.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := t.announcements.MarkRead(ctx, id); err != nil {
			// Read status is a non-critical signal; never surface this.
			t.logger.Warn("mark-read sync failed", "announcement_id", id, "error", err.Error())
		}
	}()
}

// IsRead is the effective read status: the server flag when present,
// otherwise local-set membership.
func (t *Tracker) IsRead(item model.Announcement) bool {
	if item.IsRead != nil {
		return *item.IsRead
	}

	return t.Contains(item.ID)
}

func (t *Tracker) Contains(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.seen[id]
	return ok
}

// UnreadCounts groups items by channel and counts those whose effective read
// status is false.
func (t *Tracker) UnreadCounts(items []model.Announcement) map[string]int {
	counts := map[string]int{}
	for _, item := range items {
		if !t.IsRead(item) {
			counts[item.Channel]++
		}
	}

	return counts
}

// Wait blocks until all detached mark-read tasks finish.
func (t *Tracker) Wait() {
	t.pending.Wait()
}

func (t *Tracker) persistLocked() {
	ids := make([]string, 0, len(t.seen))
	for id := range t.seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw, err := json.Marshal(ids)
	if err != nil {
		t.logger.Warn("failed to encode read set", "error", err.Error())
		return
	}

	if err := t.local.Set(localstore.KeyReadAnnouncements, string(raw)); err != nil {
		t.logger.Warn("failed to persist read set", "error", err.Error())
	}
}
