package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/forms"
	"github.com/nfrund/oncampus/internal/session"
)

// HTTPError maps domain errors to HTTP errors. Unknown errors are returned
// unchanged and end up as a 500 in the server's error handler.
func HTTPError(err error) error {
	if err == nil {
		return nil
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}

	var status int
	resp := ErrorResponse{Message: err.Error()}
	switch {
	case errors.Is(err, domain.ErrIncompleteForm):
		status, resp.Code = http.StatusBadRequest, "incomplete_form"
		resp.Fields = forms.MissingFields(err)
	case errors.Is(err, domain.ErrInvalidTab):
		status, resp.Code = http.StatusBadRequest, "invalid_tab"
	case errors.Is(err, domain.ErrInvalidScreen):
		status, resp.Code = http.StatusBadRequest, "invalid_screen"
	case errors.Is(err, session.ErrBadPayload):
		status, resp.Code = http.StatusBadRequest, "bad_payload"
	case errors.Is(err, domain.ErrNotFound):
		status, resp.Code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		status, resp.Code = http.StatusConflict, "invalid_transition"
	case errors.Is(err, domain.ErrNoView):
		status, resp.Code = http.StatusConflict, "wrong_screen"
	default:
		return err
	}
	return echo.NewHTTPError(status, resp).SetInternal(err)
}
