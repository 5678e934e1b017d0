package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/middleware"
	"github.com/nfrund/oncampus/internal/session"
	"github.com/nfrund/oncampus/internal/view"
)

const maxPayloadBytes = 64 << 10

// WithController runs fn on the request's controller while holding its
// session. Domain errors are mapped to HTTP errors.
func WithController(c echo.Context, store *session.Store, fn func(*session.Controller) error) error {
	id := middleware.SessionID(c)
	if id == "" {
		return echo.NewHTTPError(http.StatusInternalServerError, "request is not bound to a session")
	}
	return HTTPError(store.Do(id, fn))
}

// Act runs fn on the request's controller and responds with the screen the
// session ends up on.
func Act(c echo.Context, store *session.Store, fn func(ctx context.Context, ctrl *session.Controller) error) error {
	ctx := c.Request().Context()
	return WithController(c, store, func(ctrl *session.Controller) error {
		from := ctrl.Screen()
		if err := fn(ctx, ctrl); err != nil {
			return err
		}
		return Respond(c, ctrl, &session.Outcome{From: from, To: ctrl.Screen()})
	})
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// Respond answers with the #screen fragment for htmx requests and with a
// SessionResponse otherwise. It must be called while holding the session.
func Respond(c echo.Context, ctrl *session.Controller, outcome *session.Outcome) error {
	if outcome != nil && outcome.Notice != "" {
		view.SetFlashNotice(c, outcome.Notice)
	}
	if IsHTMX(c) {
		return RenderHTML(c, view.Screen(view.NewModel(ctrl, view.GetFlashData(c))))
	}
	return c.JSON(http.StatusOK, NewSessionResponse(middleware.SessionID(c), ctrl, outcome))
}

// RenderHTML writes a gomponents node as the response body.
func RenderHTML(c echo.Context, node interface{ Render(io.Writer) error }) error {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// SessionHandler serves the screen state machine.
type SessionHandler struct {
	store *session.Store
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// Get returns the session snapshot.
func (h *SessionHandler) Get(c echo.Context) error {
	return WithController(c, h.store, func(ctrl *session.Controller) error {
		return Respond(c, ctrl, nil)
	})
}

// Trigger fires the trigger named in the path. A request body is treated as
// the form payload of a completing trigger.
func (h *SessionHandler) Trigger(c echo.Context) error {
	trigger := session.Trigger(c.Param("trigger"))
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxPayloadBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: "bad_request", Message: "Could not read the request body."}).SetInternal(err)
	}
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	return WithController(c, h.store, func(ctrl *session.Controller) error {
		var (
			outcome session.Outcome
			err     error
		)
		if len(bytes.TrimSpace(body)) > 0 {
			outcome, err = ctrl.Submit(ctx, trigger, body)
		} else {
			outcome, err = ctrl.Fire(ctx, trigger)
		}
		if err != nil {
			logger.Debug("Trigger rejected", "trigger", trigger, "screen", ctrl.Screen(), "error", err)
			return err
		}
		logger.Info("Trigger applied", "trigger", trigger, "from", outcome.From, "to", outcome.To)
		return Respond(c, ctrl, &outcome)
	})
}

// Navigate jumps to the screen named in the path.
func (h *SessionHandler) Navigate(c echo.Context) error {
	screen, err := domain.ParseScreen(c.Param("screen"))
	if err != nil {
		return HTTPError(err)
	}
	ctx := c.Request().Context()
	return WithController(c, h.store, func(ctrl *session.Controller) error {
		outcome, err := ctrl.Navigate(ctx, screen)
		if err != nil {
			return err
		}
		return Respond(c, ctrl, &outcome)
	})
}

// Progress stores the scroll fraction of the mounted landing page.
func (h *SessionHandler) Progress(c echo.Context) error {
	var req ProgressRequest
	if err := Bind(c, &req); err != nil {
		return err
	}
	return WithController(c, h.store, func(ctrl *session.Controller) error {
		page, err := ctrl.Landing()
		if err != nil {
			return err
		}
		page.SetScrollProgress(*req.Progress)
		return Respond(c, ctrl, nil)
	})
}
