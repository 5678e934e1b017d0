// Package employer serves the recruiter's signup with its optional first job
// post, and the employer dashboard.
package employer

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/middleware"
	"github.com/nfrund/oncampus/internal/module"
	"github.com/nfrund/oncampus/internal/registry"
	"golang.org/x/time/rate"
)

// EmployerModule implements the module.Module interface for the employer role.
type EmployerModule struct {
	module.BaseModule
	submitRate rate.Limit
	logger     *slog.Logger
}

// Dependencies holds the services the EmployerModule requires.
type Dependencies struct {
	SubmitRate rate.Limit
	Logger     *slog.Logger
}

// New creates a new EmployerModule.
func New(deps Dependencies) *EmployerModule {
	if deps.SubmitRate == 0 {
		deps.SubmitRate = middleware.DefaultSubmitRate
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &EmployerModule{
		submitRate: deps.SubmitRate,
		logger:     deps.Logger.With("module", "employer"),
	}
}

// Name returns the module name.
func (m *EmployerModule) Name() string {
	return "employer"
}

// Boot sets up the routes under /api/employer.
func (m *EmployerModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	h := NewHandler(registry.MustGet(reg, registry.SessionStoreKey), m.logger)
	limit := middleware.RateLimiter(m.submitRate)

	g.POST("/signup", h.Signup, limit)
	g.POST("/job", h.PostJob, limit)
	g.POST("/job/skip", h.SkipJob)

	d := g.Group("/dashboard")
	d.GET("", h.Dashboard)
	d.POST("/tab", h.SetTab)
	d.POST("/roles/:id/select", h.SelectRole)
	d.POST("/applications/:id/select", h.SelectApplication)
	d.DELETE("/selection", h.CloseApplication)
	d.POST("/applications/:id/:action", h.Act)

	m.logger.Info("Booting EmployerModule: routes registered")
	return nil
}
