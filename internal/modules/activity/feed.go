package activity

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/nfrund/oncampus/internal/pubsub"
)

// Entry is one event seen on the bus.
type Entry struct {
	Topic      string          `json:"topic"`
	SessionID  string          `json:"sessionId,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"receivedAt"`
}

// Feed keeps the most recent events in a fixed-size ring.
type Feed struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool
	now     func() time.Time
}

// NewFeed creates a feed that remembers up to size events.
func NewFeed(size int) *Feed {
	if size < 1 {
		size = 1
	}
	return &Feed{entries: make([]Entry, size), now: time.Now}
}

// Add records msg, evicting the oldest entry when the feed is full.
func (f *Feed) Add(msg pubsub.Message) {
	payload := json.RawMessage(msg.Payload)
	if !json.Valid(payload) {
		payload, _ = json.Marshal(string(msg.Payload))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[f.next] = Entry{
		Topic:      msg.Topic,
		SessionID:  msg.SessionID,
		Payload:    payload,
		ReceivedAt: f.now(),
	}
	f.next = (f.next + 1) % len(f.entries)
	if f.next == 0 {
		f.full = true
	}
}

// Handle is a pubsub.Handler that records every message.
func (f *Feed) Handle(_ context.Context, msg pubsub.Message) error {
	f.Add(msg)
	return nil
}

// Len returns the number of stored events.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.full {
		return len(f.entries)
	}
	return f.next
}

// Recent returns up to limit events, newest first, optionally only those on
// topic. A limit of zero or less returns everything stored.
func (f *Feed) Recent(topic string, limit int) []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := f.next
	if f.full {
		n = len(f.entries)
	}
	out := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		e := f.entries[(f.next-i+len(f.entries))%len(f.entries)]
		if topic != "" && e.Topic != topic {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
