package events

import (
	"context"
	"log/slog"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/pubsub"
)

// Emitter publishes events on behalf of one session. A nil Emitter, or one
// without a publisher, drops events silently, so presenters can be built
// without a bus in tests and in the CLI.
type Emitter struct {
	pub       pubsub.Publisher
	sessionID string
	logger    *slog.Logger
}

// NewEmitter creates an emitter that is not bound to a session.
func NewEmitter(pub pubsub.Publisher, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{pub: pub, logger: logger.With("component", "events")}
}

// ForSession returns a copy of the emitter that stamps every message with sessionID.
func (e *Emitter) ForSession(sessionID string) *Emitter {
	if e == nil {
		return nil
	}
	clone := *e
	clone.sessionID = sessionID
	clone.logger = e.logger.With("session_id", sessionID)
	return &clone
}

// SessionID returns the session the emitter is bound to.
func (e *Emitter) SessionID() string {
	if e == nil {
		return ""
	}
	return e.sessionID
}

// Emit publishes payload on event. Failures are logged and never returned:
// the bus is an observer of the flows, not part of them.
func Emit[T any](ctx context.Context, e *Emitter, event pubsub.Event[T], payload T) {
	if e == nil || e.pub == nil {
		return
	}
	if err := pubsub.Publish(ctx, e.pub, event, e.sessionID, payload); err != nil {
		e.logger.Error("Failed to publish event", "topic", event.Name(), "error", err)
	}
}

// PlacementLog records offline placements by logging them and publishing
// TopicPlacementRecorded. It keeps nothing.
type PlacementLog struct {
	emitter    *Emitter
	university string
	logger     *slog.Logger
}

// Compile-time interface compliance check
var _ domain.PlacementRecorder = (*PlacementLog)(nil)

// NewPlacementLog creates a recorder for the named university.
func NewPlacementLog(emitter *Emitter, university string, logger *slog.Logger) *PlacementLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlacementLog{emitter: emitter, university: university, logger: logger}
}

// RecordPlacement implements domain.PlacementRecorder.
func (p *PlacementLog) RecordPlacement(ctx context.Context, placement domain.OfflinePlacement) error {
	p.logger.Info("Offline placement recorded",
		"university", p.university,
		"company", placement.CompanyName,
		"student", placement.StudentName,
		"offer_type", placement.OfferType,
	)
	Emit(ctx, p.emitter, TopicPlacementRecorded, PlacementRecorded{
		University: p.university,
		Placement:  placement,
	})
	return nil
}
