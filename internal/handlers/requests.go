package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// Bind decodes and validates a request DTO, answering 400 on failure.
func Bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: "bad_request", Message: "Invalid request format."}).SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: "invalid_request", Message: err.Error()}).SetInternal(err)
	}
	return nil
}

// ProgressRequest reports how far a landing page has been scrolled.
type ProgressRequest struct {
	Progress *float64 `json:"progress" form:"progress" validate:"required"`
}

// TabRequest switches a dashboard tab.
type TabRequest struct {
	Tab string `json:"tab" form:"tab" validate:"required"`
}

// StudentQuery filters the university student list.
type StudentQuery struct {
	Status string `query:"status"`
	Search string `query:"q"`
}

// CommunityPostRequest is a post for the university community feed.
type CommunityPostRequest struct {
	Type        domain.PostType `json:"type" form:"type" validate:"required,oneof=message poll"`
	Content     string          `json:"content" form:"content"`
	PollOptions []string        `json:"pollOptions" form:"pollOptions"`
}

// StudentSignupStepRequest carries whichever fields the current signup step shows.
type StudentSignupStepRequest struct {
	Name     *string  `json:"name" form:"name"`
	Email    *string  `json:"email" form:"email"`
	Password *string  `json:"password" form:"password"`
	College  *string  `json:"college" form:"college"`
	Course   *string  `json:"course" form:"course"`
	Year     *string  `json:"year" form:"year"`
	Skills   []string `json:"skills" form:"skills"`
	Resume   *string  `json:"resume" form:"resume"`
}
