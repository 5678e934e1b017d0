package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/oncampus/internal/app"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	App *app.App

	// session groups every route that is bound to a browser session.
	session *echo.Group
}

// New creates a new Server instance around an assembled application.
func New(a *app.App) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger(a.Logger))

	secure := a.Config.GetAppEnv() == "production"
	cookies := middleware.NewCookieStore(a.Config.GetSessionSecret(), secure)
	sessionGroup := e.Group("", echosession.Middleware(cookies), middleware.Session(a.Store))

	return &Server{
		E:       e,
		App:     a,
		session: sessionGroup,
	}
}

// setupErrorHandling installs an error handler that answers HTTP errors as
// JSON and logs anything else with a stack trace before answering 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				middleware.FromContext(c.Request().Context()).Debug("Request failed",
					"status", he.Code, "error", he.Internal)
			}
			body := he.Message
			if msg, ok := body.(string); ok {
				body = handlers.ErrorResponse{Code: codeFor(he.Code), Message: msg}
			}
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(he.Code)
			} else {
				err = c.JSON(he.Code, body)
			}
			if err != nil {
				slog.Error("Failed to write error response", "error", err)
			}
			return
		}

		slog.Error("Internal Server Error (Unhandled)",
			"error", err,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		if err := c.JSON(http.StatusInternalServerError, handlers.ErrorResponse{
			Code:    "internal",
			Message: http.StatusText(http.StatusInternalServerError),
		}); err != nil {
			slog.Error("Failed to write error response", "error", err)
		}
	}
}

func codeFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusTooManyRequests:
		return "rate_limited"
	case http.StatusBadRequest:
		return "bad_request"
	default:
		return "error"
	}
}
