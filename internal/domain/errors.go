package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the state machine, the forms and the dashboards.
var (
	ErrInvalidScreen     = errors.New("unknown screen")
	ErrInvalidTransition = errors.New("trigger not available on the current screen")
	ErrIncompleteForm    = errors.New("required fields are missing")
	ErrNotFound          = errors.New("requested resource not found")
	ErrInvalidTab        = errors.New("unknown tab")
	ErrNoView            = errors.New("no presenter of the requested kind is mounted")
)
