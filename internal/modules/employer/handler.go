package employer

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/dashboard"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/forms"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/session"
)

// SignupRequest is the first step of the employer signup.
type SignupRequest struct {
	CompanyName string `json:"companyName" form:"companyName"`
	Email       string `json:"email" form:"email"`
	Role        string `json:"role" form:"role"`
}

// JobRequest is the first job an employer posts. Lists replace what the
// draft held before.
type JobRequest struct {
	Title     string         `json:"title" form:"title"`
	Type      domain.JobType `json:"type" form:"type"`
	StartDate string         `json:"startDate" form:"startDate"`
	Skills    []string       `json:"skills" form:"skills"`
	Courses   []string       `json:"courses" form:"courses"`
	Years     []string       `json:"years" form:"years"`
}

// DashboardResponse is the JSON rendering of the employer dashboard.
type DashboardResponse struct {
	Profile             domain.EmployerProfile `json:"profile"`
	Tab                 string                 `json:"tab"`
	Metrics             domain.EmployerMetrics `json:"metrics"`
	Roles               []domain.OpenRole      `json:"roles"`
	SelectedRoleID      string                 `json:"selectedRoleId,omitempty"`
	Applications        []domain.Application   `json:"applications"`
	SelectedApplication *domain.Application    `json:"selectedApplication,omitempty"`
	Activities          []domain.Activity      `json:"activities"`
}

// Handler holds dependencies for the employer HTTP handlers.
type Handler struct {
	store  *session.Store
	logger *slog.Logger
}

// NewHandler creates a new employer handler.
func NewHandler(store *session.Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Signup submits the company details and moves on to the job step.
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	return handlers.Act(c, h.store, func(ctx context.Context, ctrl *session.Controller) error {
		form, err := ctrl.EmployerSignupForm()
		if err != nil {
			return err
		}
		form.SetCompanyName(req.CompanyName)
		form.SetEmail(req.Email)
		form.SetRole(req.Role)
		return form.Next(ctx)
	})
}

// PostJob posts the first job and completes the signup.
func (h *Handler) PostJob(c echo.Context) error {
	var req JobRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	return handlers.Act(c, h.store, func(ctx context.Context, ctrl *session.Controller) error {
		form, err := ctrl.EmployerSignupForm()
		if err != nil {
			return err
		}
		fillJob(form, req)
		return form.Submit(ctx)
	})
}

func fillJob(form *forms.EmployerSignup, req JobRequest) {
	form.SetJob(domain.JobDraft{
		Title:     req.Title,
		Type:      req.Type,
		StartDate: req.StartDate,
		Skills:    req.Skills,
		Courses:   req.Courses,
		Years:     req.Years,
	})
}

// SkipJob completes the signup without a job.
func (h *Handler) SkipJob(c echo.Context) error {
	return handlers.Act(c, h.store, func(ctx context.Context, ctrl *session.Controller) error {
		form, err := ctrl.EmployerSignupForm()
		if err != nil {
			return err
		}
		return form.Skip(ctx)
	})
}

func (h *Handler) dashboard(c echo.Context, fn func(ctx context.Context, d *dashboard.Employer) error) error {
	ctx := c.Request().Context()
	return handlers.WithController(c, h.store, func(ctrl *session.Controller) error {
		d, err := ctrl.EmployerDashboard()
		if err != nil {
			return err
		}
		if fn != nil {
			if err := fn(ctx, d); err != nil {
				return err
			}
		}
		if handlers.IsHTMX(c) {
			return handlers.Respond(c, ctrl, nil)
		}
		return c.JSON(http.StatusOK, DashboardResponse{
			Profile:             d.Profile(),
			Tab:                 d.Tab(),
			Metrics:             d.Metrics(),
			Roles:               d.Roles(),
			SelectedRoleID:      d.SelectedRoleID(),
			Applications:        d.Applications(),
			SelectedApplication: d.SelectedApplication(),
			Activities:          d.Activities(),
		})
	})
}

// Dashboard returns the dashboard.
func (h *Handler) Dashboard(c echo.Context) error {
	return h.dashboard(c, nil)
}

// SetTab switches the dashboard tab.
func (h *Handler) SetTab(c echo.Context) error {
	var req handlers.TabRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	return h.dashboard(c, func(_ context.Context, d *dashboard.Employer) error {
		return d.SetTab(req.Tab)
	})
}

// SelectRole highlights an open role.
func (h *Handler) SelectRole(c echo.Context) error {
	id := c.Param("id")
	return h.dashboard(c, func(_ context.Context, d *dashboard.Employer) error {
		return d.SelectRole(id)
	})
}

// SelectApplication opens an application's detail panel.
func (h *Handler) SelectApplication(c echo.Context) error {
	id := c.Param("id")
	return h.dashboard(c, func(_ context.Context, d *dashboard.Employer) error {
		return d.SelectApplication(id)
	})
}

// CloseApplication closes the detail panel.
func (h *Handler) CloseApplication(c echo.Context) error {
	return h.dashboard(c, func(_ context.Context, d *dashboard.Employer) error {
		d.CloseApplication()
		return nil
	})
}

// Act shortlists, rejects or invites the applicant to an interview.
func (h *Handler) Act(c echo.Context) error {
	id := c.Param("id")
	action := domain.ApplicationAction(c.Param("action"))
	if !action.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, handlers.ErrorResponse{
			Code:    "invalid_action",
			Message: "Unknown application action " + string(action) + ".",
		})
	}
	return h.dashboard(c, func(ctx context.Context, d *dashboard.Employer) error {
		return d.ActOnApplication(ctx, id, action)
	})
}
