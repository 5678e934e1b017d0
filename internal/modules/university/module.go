// Package university serves the placement officer's flows: sign in, the
// two-step signup with its invite counter, and the dashboard.
package university

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/middleware"
	"github.com/nfrund/oncampus/internal/module"
	"github.com/nfrund/oncampus/internal/registry"
	"golang.org/x/time/rate"
)

// UniversityModule implements the module.Module interface for the university role.
type UniversityModule struct {
	module.BaseModule
	submitRate rate.Limit
	logger     *slog.Logger
}

// Dependencies holds the services the UniversityModule requires.
type Dependencies struct {
	// SubmitRate bounds sign-in and signup submissions per client IP.
	// Zero means middleware.DefaultSubmitRate.
	SubmitRate rate.Limit
	Logger     *slog.Logger
}

// New creates a new UniversityModule.
func New(deps Dependencies) *UniversityModule {
	if deps.SubmitRate == 0 {
		deps.SubmitRate = middleware.DefaultSubmitRate
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &UniversityModule{
		submitRate: deps.SubmitRate,
		logger:     deps.Logger.With("module", "university"),
	}
}

// Name returns the module name.
func (m *UniversityModule) Name() string {
	return "university"
}

// Boot sets up the routes. The server mounts us under /api/university.
func (m *UniversityModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	store := registry.MustGet(reg, registry.SessionStoreKey)
	h := NewHandler(store, m.logger)
	limit := middleware.RateLimiter(m.submitRate)

	g.POST("/signin", h.SignIn, limit)
	g.POST("/signup", h.Signup, limit)
	g.POST("/signup/back", h.SignupBack)
	g.POST("/signup/complete", h.SignupComplete)
	g.GET("/signup/invite/ws", h.InviteWS)

	d := g.Group("/dashboard")
	d.GET("", h.Dashboard)
	d.POST("/tab", h.SetTab)
	d.GET("/students", h.Students)
	d.POST("/students/:id/select", h.SelectStudent)
	d.DELETE("/selection", h.CloseStudent)
	d.POST("/notifications/:id/read", h.MarkRead)
	d.POST("/notifications/read", h.MarkAllRead)
	d.POST("/posts", h.Post, limit)
	d.POST("/placements", h.RecordPlacement, limit)

	m.logger.Info("Booting UniversityModule: routes registered")
	return nil
}
