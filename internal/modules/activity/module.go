// Package activity records the events published by the session flows and
// serves the most recent ones.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/module"
	"github.com/nfrund/oncampus/internal/registry"
)

// FeedKey is where the module publishes its feed in the registry.
const FeedKey registry.Key[*Feed] = "activity.feed"

// DefaultSize is the number of events kept when Dependencies.Size is zero.
const DefaultSize = 100

// ActivityModule implements the module.Module interface for the event feed.
type ActivityModule struct {
	module.BaseModule
	feed   *Feed
	logger *slog.Logger
	cancel context.CancelFunc
}

// Dependencies holds the settings of the ActivityModule.
type Dependencies struct {
	Size   int
	Logger *slog.Logger
}

// New creates a new ActivityModule.
func New(deps Dependencies) *ActivityModule {
	if deps.Size == 0 {
		deps.Size = DefaultSize
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &ActivityModule{
		feed:   NewFeed(deps.Size),
		logger: deps.Logger.With("module", "activity"),
	}
}

// Name returns the module name, which is also its mount point.
func (m *ActivityModule) Name() string {
	return "events"
}

// Register shares the feed with other modules.
func (m *ActivityModule) Register(reg *registry.Registry) error {
	registry.Set(reg, FeedKey, m.feed)
	return nil
}

// Boot subscribes to every event topic and sets up the routes.
func (m *ActivityModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	sub := registry.MustGet(reg, registry.SubscriberKey)

	subCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	for _, topic := range events.AllTopics() {
		if err := sub.Subscribe(subCtx, topic, m.feed.Handle); err != nil {
			cancel()
			return fmt.Errorf("subscribe to %s: %w", topic, err)
		}
	}

	g.GET("", m.list)
	m.logger.Info("Booting ActivityModule: subscribed", "topics", len(events.AllTopics()))
	return nil
}

// Shutdown ends the subscriptions.
func (m *ActivityModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// ListQuery filters the feed.
type ListQuery struct {
	Topic string `query:"topic"`
	Limit int    `query:"limit"`
}

// ListResponse is the body of GET /api/events.
type ListResponse struct {
	Events []Entry `json:"events"`
	Count  int     `json:"count"`
}

func (m *ActivityModule) list(c echo.Context) error {
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query").SetInternal(err)
	}
	if q.Limit < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "limit must not be negative")
	}
	entries := m.feed.Recent(q.Topic, q.Limit)
	return c.JSON(http.StatusOK, ListResponse{Events: entries, Count: len(entries)})
}
