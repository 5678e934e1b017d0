// Package student serves the student's sign in, the three-step signup and
// the student dashboard.
package student

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/middleware"
	"github.com/nfrund/oncampus/internal/module"
	"github.com/nfrund/oncampus/internal/registry"
	"golang.org/x/time/rate"
)

// StudentModule implements the module.Module interface for the student role.
type StudentModule struct {
	module.BaseModule
	submitRate rate.Limit
	logger     *slog.Logger
}

// Dependencies holds the services the StudentModule requires.
type Dependencies struct {
	SubmitRate rate.Limit
	Logger     *slog.Logger
}

// New creates a new StudentModule.
func New(deps Dependencies) *StudentModule {
	if deps.SubmitRate == 0 {
		deps.SubmitRate = middleware.DefaultSubmitRate
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &StudentModule{
		submitRate: deps.SubmitRate,
		logger:     deps.Logger.With("module", "student"),
	}
}

// Name returns the module name.
func (m *StudentModule) Name() string {
	return "student"
}

// Boot sets up the routes under /api/student.
func (m *StudentModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	h := NewHandler(registry.MustGet(reg, registry.SessionStoreKey))
	limit := middleware.RateLimiter(m.submitRate)

	g.POST("/signin", h.SignIn, limit)
	g.POST("/signup/next", h.SignupNext)
	g.POST("/signup/back", h.SignupBack)
	g.POST("/signup/save", h.SignupSave)
	g.POST("/signup", h.Signup, limit)

	g.GET("/dashboard", h.Dashboard)
	g.POST("/dashboard/tab", h.SetTab)
	g.POST("/dashboard/notifications/toggle", h.ToggleNotifications)

	m.logger.Info("Booting StudentModule: routes registered")
	return nil
}
