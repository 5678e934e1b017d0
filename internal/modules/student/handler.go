package student

import (
	"context"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/dashboard"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/forms"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/session"
)

// SignInRequest is the student sign-in form.
type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	College  string `json:"college" form:"college"`
}

// DashboardResponse is the JSON rendering of the student dashboard.
type DashboardResponse struct {
	Profile           domain.StudentProfile       `json:"profile"`
	Greeting          string                      `json:"greeting"`
	Tab               string                      `json:"tab"`
	PlacementStatus   domain.PlacementStatus      `json:"placementStatus"`
	Opportunities     []domain.Opportunity        `json:"opportunities"`
	Applications      []domain.StudentApplication `json:"applications"`
	Interviews        []domain.Interview          `json:"interviews"`
	Feed              []domain.FeedItem           `json:"feed"`
	NotificationsOpen bool                        `json:"notificationsOpen"`
}

// Handler holds dependencies for the student HTTP handlers.
type Handler struct {
	store *session.Store
}

// NewHandler creates a new student handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// SignIn submits the student sign-in form.
func (h *Handler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	return handlers.Act(c, h.store, func(ctx context.Context, ctrl *session.Controller) error {
		form, err := ctrl.StudentSignInForm()
		if err != nil {
			return err
		}
		form.SetEmail(req.Email)
		form.SetPassword(req.Password)
		form.SetCollege(req.College)
		return form.Submit(ctx)
	})
}

// apply copies the fields present in req onto the form. Skills, when sent,
// replace the selection.
func apply(form *forms.StudentSignup, req handlers.StudentSignupStepRequest) {
	set := func(v *string, setter func(string)) {
		if v != nil {
			setter(*v)
		}
	}
	set(req.Name, form.SetName)
	set(req.Email, form.SetEmail)
	set(req.Password, form.SetPassword)
	set(req.College, form.SetCollege)
	set(req.Course, form.SetCourse)
	set(req.Year, form.SetYear)
	set(req.Resume, form.SetResume)

	if req.Skills != nil {
		for _, skill := range form.Skills() {
			if !slices.Contains(req.Skills, skill) {
				form.ToggleSkill(skill)
			}
		}
		for _, skill := range req.Skills {
			if !form.HasSkill(skill) {
				form.ToggleSkill(skill)
			}
		}
	}
}

func (h *Handler) signup(c echo.Context, fn func(ctx context.Context, form *forms.StudentSignup) error) error {
	var req handlers.StudentSignupStepRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	return handlers.Act(c, h.store, func(ctx context.Context, ctrl *session.Controller) error {
		form, err := ctrl.StudentSignupForm()
		if err != nil {
			return err
		}
		apply(form, req)
		return fn(ctx, form)
	})
}

// SignupNext saves the fields of the current step and advances.
func (h *Handler) SignupNext(c echo.Context) error {
	return h.signup(c, func(_ context.Context, form *forms.StudentSignup) error {
		return form.Next()
	})
}

// SignupSave stores the fields of the current step without moving.
func (h *Handler) SignupSave(c echo.Context) error {
	return h.signup(c, func(context.Context, *forms.StudentSignup) error { return nil })
}

// SignupBack saves the fields of the current step and goes back one step.
func (h *Handler) SignupBack(c echo.Context) error {
	return h.signup(c, func(_ context.Context, form *forms.StudentSignup) error {
		form.Back()
		return nil
	})
}

// Signup saves the skills step and completes the signup.
func (h *Handler) Signup(c echo.Context) error {
	return h.signup(c, func(ctx context.Context, form *forms.StudentSignup) error {
		return form.Submit(ctx)
	})
}

func (h *Handler) dashboard(c echo.Context, fn func(d *dashboard.Student) error) error {
	return handlers.WithController(c, h.store, func(ctrl *session.Controller) error {
		d, err := ctrl.StudentDashboard()
		if err != nil {
			return err
		}
		if fn != nil {
			if err := fn(d); err != nil {
				return err
			}
		}
		if handlers.IsHTMX(c) {
			return handlers.Respond(c, ctrl, nil)
		}
		return c.JSON(http.StatusOK, DashboardResponse{
			Profile:           d.Profile(),
			Greeting:          d.Greeting(),
			Tab:               d.Tab(),
			PlacementStatus:   d.PlacementStatus(),
			Opportunities:     d.Opportunities(),
			Applications:      d.Applications(),
			Interviews:        d.Interviews(),
			Feed:              d.Feed(),
			NotificationsOpen: d.NotificationsOpen(),
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
	return h.dashboard(c, func(d *dashboard.Student) error {
		return d.SetTab(req.Tab)
	})
}

// ToggleNotifications opens or closes the notification panel.
func (h *Handler) ToggleNotifications(c echo.Context) error {
	return h.dashboard(c, func(d *dashboard.Student) error {
		d.ToggleNotifications()
		return nil
	})
}
