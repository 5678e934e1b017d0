package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/session"
)

// SessionCookieName is the gorilla session that carries the controller id.
const SessionCookieName = "oncampus-session"

// SessionIDKey is the echo context key holding the controller id.
const SessionIDKey = "session_id"

const sessionValueID = "sid"

// Session binds every request to a session.Controller. The id lives in the
// cookie session; an unknown or expired id starts a fresh controller on the
// initial screen. It must run after echo-contrib's session middleware.
func Session(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := echosession.Get(SessionCookieName, c)
			if sess == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session store is not configured").SetInternal(err)
			}
			if err != nil {
				// A cookie signed with another secret cannot be decoded; start over.
				FromContext(c.Request().Context()).Warn("Discarding unreadable session cookie", "error", err)
			}

			current, _ := sess.Values[sessionValueID].(string)
			id, created, err := store.Ensure(current)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "could not start a session").SetInternal(err)
			}

			if created {
				sess.Values[sessionValueID] = id
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "could not save the session").SetInternal(err)
				}
				FromContext(c.Request().Context()).Debug("Started session", "session_id", id)
			}

			c.Set(SessionIDKey, id)
			return next(c)
		}
	}
}

// SessionID returns the controller id bound to the request.
func SessionID(c echo.Context) string {
	id, _ := c.Get(SessionIDKey).(string)
	return id
}

// NewCookieStore returns the cookie store shared by the session and flash middleware.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
