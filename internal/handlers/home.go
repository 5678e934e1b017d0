package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/session"
	"github.com/nfrund/oncampus/internal/view"
)

// HomeHandler renders the session's active screen as a full page.
type HomeHandler struct {
	store *session.Store
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(store *session.Store) *HomeHandler {
	return &HomeHandler{store: store}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return WithController(c, h.store, func(ctrl *session.Controller) error {
		return RenderHTML(c, view.Page(view.NewModel(ctrl, view.GetFlashData(c))))
	})
}

// Health reports liveness.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
