package handlers

import (
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/landing"
	"github.com/nfrund/oncampus/internal/session"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// SessionResponse describes a session after an operation.
type SessionResponse struct {
	SessionID string               `json:"sessionId"`
	Screen    domain.Screen        `json:"screen"`
	State     session.State        `json:"state"`
	Available []session.Transition `json:"available"`
	Outcome   *session.Outcome     `json:"outcome,omitempty"`
	Notice    string               `json:"notice,omitempty"`
	Landing   *LandingResponse     `json:"landing,omitempty"`
}

// LandingResponse is the scroll state of a mounted landing page.
type LandingResponse struct {
	Progress   float64 `json:"progress"`
	Background string  `json:"background"`
	Inverted   bool    `json:"inverted"`
	Emphasised bool    `json:"emphasised"`
}

// NewSessionResponse snapshots a controller.
func NewSessionResponse(id string, ctrl *session.Controller, outcome *session.Outcome) SessionResponse {
	snap := ctrl.Snapshot()
	resp := SessionResponse{
		SessionID: id,
		Screen:    snap.Screen,
		State:     snap,
		Available: session.Available(snap.Screen),
		Outcome:   outcome,
	}
	if resp.Available == nil {
		resp.Available = []session.Transition{}
	}
	if outcome != nil {
		resp.Notice = outcome.Notice
	}
	if page, ok := ctrl.View().(*landing.Page); ok {
		resp.Landing = &LandingResponse{
			Progress:   page.Progress(),
			Background: page.Background(),
			Inverted:   page.Inverted(),
			Emphasised: page.Emphasised(),
		}
	}
	return resp
}
