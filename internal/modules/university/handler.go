package university

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/dashboard"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/forms"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/invite"
	"github.com/nfrund/oncampus/internal/session"
)

// Handler holds dependencies for the university HTTP handlers.
type Handler struct {
	store  *session.Store
	logger *slog.Logger
}

// NewHandler creates a new university handler.
func NewHandler(store *session.Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// SignIn submits the university sign-in form.
func (h *Handler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	return handlers.Act(c, h.store, func(ctx context.Context, ctrl *session.Controller) error {
		form, err := ctrl.SignInForm()
		if err != nil {
			return err
		}
		form.SetEmail(req.Email)
		form.SetPassword(req.Password)
		return form.Submit(ctx)
	})
}

// Signup submits the details step and moves on to the invite step.
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	return handlers.Act(c, h.store, func(ctx context.Context, ctrl *session.Controller) error {
		form, err := ctrl.UniversitySignupForm()
		if err != nil {
			return err
		}
		form.SetName(req.Name)
		form.SetEmail(req.Email)
		form.SetUniversityName(req.UniversityName)
		form.SetDesignation(req.Designation)
		return form.Next(ctx)
	})
}

// SignupBack returns from the invite step to the details step.
func (h *Handler) SignupBack(c echo.Context) error {
	return handlers.Act(c, h.store, func(_ context.Context, ctrl *session.Controller) error {
		form, err := ctrl.UniversitySignupForm()
		if err != nil {
			return err
		}
		form.Back()
		return nil
	})
}

// SignupComplete finishes the signup and opens the dashboard.
func (h *Handler) SignupComplete(c echo.Context) error {
	return handlers.Act(c, h.store, func(ctx context.Context, ctrl *session.Controller) error {
		form, err := ctrl.UniversitySignupForm()
		if err != nil {
			return err
		}
		return form.Complete(ctx)
	})
}

// InviteWS streams the invite counter of the signup in progress until it
// stops or the client goes away.
func (h *Handler) InviteWS(c echo.Context) error {
	var counter *invite.Counter
	err := handlers.WithController(c, h.store, func(ctrl *session.Controller) error {
		form, err := ctrl.UniversitySignupForm()
		if err != nil {
			return err
		}
		if form.Step() != forms.StepInvite {
			return fmt.Errorf("invite stream on the %s step: %w", form.Step(), domain.ErrInvalidTransition)
		}
		counter = form.Counter()
		return nil
	})
	if err != nil {
		return err
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// TODO: check the origin against the public host once it is configurable.
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket connection", "error", err)
		return nil
	}
	defer conn.CloseNow()

	// CloseRead cancels ctx when the client closes or sends anything.
	ctx := conn.CloseRead(c.Request().Context())
	for count := range counter.Watch(ctx) {
		if err := wsjson.Write(ctx, conn, InviteUpdate{Count: count, Cap: counter.Cap()}); err != nil {
			h.logger.Debug("Invite stream ended", "error", err)
			return nil
		}
	}
	conn.Close(websocket.StatusNormalClosure, "counter stopped")
	return nil
}

// dashboard runs fn on the mounted dashboard and renders it.
func (h *Handler) dashboard(c echo.Context, fn func(ctx context.Context, d *dashboard.University) error) error {
	ctx := c.Request().Context()
	return handlers.WithController(c, h.store, func(ctrl *session.Controller) error {
		d, err := ctrl.UniversityDashboard()
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
		return c.JSON(http.StatusOK, newDashboardResponse(d))
	})
}

func newDashboardResponse(d *dashboard.University) DashboardResponse {
	return DashboardResponse{
		Profile:           d.Profile(),
		Tab:               d.Tab(),
		Metrics:           d.Metrics(),
		Students:          d.Students(),
		SelectedStudent:   d.SelectedStudent(),
		StatusFilter:      d.StatusFilter(),
		Search:            d.Search(),
		Jobs:              d.Jobs(),
		Activities:        d.Activities(),
		Notifications:     d.Notifications(),
		UnreadCount:       d.UnreadCount(),
		Posts:             d.Posts(),
		NotificationsOpen: d.NotificationsOpen(),
	}
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
	return h.dashboard(c, func(_ context.Context, d *dashboard.University) error {
		return d.SetTab(req.Tab)
	})
}

// Students filters the student list by status and name.
func (h *Handler) Students(c echo.Context) error {
	var q handlers.StudentQuery
	if err := handlers.Bind(c, &q); err != nil {
		return err
	}
	return h.dashboard(c, func(_ context.Context, d *dashboard.University) error {
		if err := d.SetStatusFilter(domain.StudentStatus(q.Status)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, handlers.ErrorResponse{
				Code:    "invalid_status",
				Message: err.Error(),
			}).SetInternal(err)
		}
		d.SetSearch(q.Search)
		return nil
	})
}

// SelectStudent opens a student's profile.
func (h *Handler) SelectStudent(c echo.Context) error {
	id := c.Param("id")
	return h.dashboard(c, func(_ context.Context, d *dashboard.University) error {
		return d.SelectStudent(id)
	})
}

// CloseStudent closes the open student profile.
func (h *Handler) CloseStudent(c echo.Context) error {
	return h.dashboard(c, func(_ context.Context, d *dashboard.University) error {
		d.CloseStudent()
		return nil
	})
}

// MarkRead marks one notification as read.
func (h *Handler) MarkRead(c echo.Context) error {
	id := c.Param("id")
	return h.dashboard(c, func(_ context.Context, d *dashboard.University) error {
		return d.MarkNotificationRead(id)
	})
}

// MarkAllRead marks every notification as read.
func (h *Handler) MarkAllRead(c echo.Context) error {
	return h.dashboard(c, func(_ context.Context, d *dashboard.University) error {
		d.MarkAllRead()
		return nil
	})
}

// Post publishes a message or a poll on the community feed.
func (h *Handler) Post(c echo.Context) error {
	var req handlers.CommunityPostRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	if len(req.PollOptions) > forms.MaxPollOptions {
		return echo.NewHTTPError(http.StatusBadRequest, handlers.ErrorResponse{
			Code:    "too_many_options",
			Message: fmt.Sprintf("A poll has at most %d options.", forms.MaxPollOptions),
		})
	}
	return h.dashboard(c, func(ctx context.Context, d *dashboard.University) error {
		composer := d.OpenComposer()
		err := compose(ctx, composer, req)
		if err != nil {
			d.CloseComposer()
		}
		return err
	})
}

func compose(ctx context.Context, composer *forms.CommunityPost, req handlers.CommunityPostRequest) error {
	if err := composer.SetTab(req.Type); err != nil {
		return err
	}
	if req.Type == domain.PostMessage {
		composer.SetMessage(req.Content)
		return composer.Submit(ctx)
	}
	composer.SetQuestion(req.Content)
	for i, option := range req.PollOptions {
		if i >= len(composer.Options()) {
			composer.AddOption()
		}
		if err := composer.SetOption(i, option); err != nil {
			return err
		}
	}
	return composer.Submit(ctx)
}

// RecordPlacement records an offline placement.
func (h *Handler) RecordPlacement(c echo.Context) error {
	var req PlacementRequest
	if err := handlers.Bind(c, &req); err != nil {
		return err
	}
	return h.dashboard(c, func(ctx context.Context, d *dashboard.University) error {
		d.OpenPlacementDialog()
		if err := d.RecordPlacement(ctx, req.placement()); err != nil {
			d.ClosePlacementDialog()
			return err
		}
		h.logger.Info("Offline placement recorded", "company", req.CompanyName, "student", req.StudentName)
		return nil
	})
}
