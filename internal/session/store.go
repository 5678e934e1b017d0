package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/oncampus/internal/domain"
)

// Factory builds the controller of a new session.
type Factory func(sessionID string) (*Controller, error)

// FactoryFor returns a Factory that builds every controller from deps, with
// its events stamped with the session id.
func FactoryFor(deps Dependencies) Factory {
	return func(sessionID string) (*Controller, error) {
		d := deps
		d.Emitter = deps.Emitter.ForSession(sessionID)
		if d.Logger != nil {
			d.Logger = d.Logger.With("session_id", sessionID)
		}
		d.CounterOptions = slices.Clone(deps.CounterOptions)
		return New(d)
	}
}

type entry struct {
	mu       sync.Mutex
	ctrl     *Controller
	lastSeen time.Time
	closed   bool
}

// Store keeps one Controller per browser session and serializes access to
// each of them. Different sessions never block each other.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	factory Factory
	logger  *slog.Logger
	now     func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(factory Factory, logger *slog.Logger, opts ...StoreOption) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		entries: make(map[string]*entry),
		factory: factory,
		logger:  logger.With("component", "session_store"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session and returns its id.
func (s *Store) Create() (string, error) {
	id := uuid.NewString()
	if _, err := s.add(id); err != nil {
		return "", err
	}
	return id, nil
}

// Ensure returns id when that session exists, and otherwise starts a new one.
// created reports whether a new session was started.
func (s *Store) Ensure(id string) (string, bool, error) {
	if id != "" {
		s.mu.RLock()
		_, ok := s.entries[id]
		s.mu.RUnlock()
		if ok {
			return id, false, nil
		}
	}
	id, err := s.Create()
	return id, err == nil, err
}

func (s *Store) add(id string) (*entry, error) {
	ctrl, err := s.factory(id)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	e := &entry{ctrl: ctrl, lastSeen: s.now()}

	s.mu.Lock()
	s.entries[id] = e
	s.mu.Unlock()

	s.logger.Debug("Session created", "session_id", id, "screen", ctrl.Screen())
	return e, nil
}

// Do runs fn with exclusive access to the session's controller.
func (s *Store) Do(id string, fn func(*Controller) error) error {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("session %q: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return fmt.Errorf("session %q: %w", id, domain.ErrNotFound)
	}
	e.lastSeen = s.now()
	return fn(e.ctrl)
}

// Delete closes and forgets a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	e, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()
	if ok {
		e.close()
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Prune closes sessions that have not been used for idle and returns how
// many were removed.
func (s *Store) Prune(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	var stale []*entry
	s.mu.Lock()
	for id, e := range s.entries {
		e.mu.Lock()
		expired := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if expired {
			stale = append(stale, e)
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, e := range stale {
		e.close()
	}
	if len(stale) > 0 {
		s.logger.Info("Pruned idle sessions", "count", len(stale))
	}
	return len(stale)
}

// RunJanitor prunes idle sessions every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune(idle)
		}
	}
}

// Close tears down every session.
func (s *Store) Close() {
	s.mu.Lock()
	entries := s.entries
	s.entries = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range entries {
		e.close()
	}
}

func (e *entry) close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.closed {
		e.closed = true
		e.ctrl.Close()
	}
}
