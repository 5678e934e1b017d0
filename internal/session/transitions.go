package session

import (
	"github.com/nfrund/oncampus/internal/domain"
)

// Trigger is a user action that may move a session to another screen.
type Trigger string

const (
	TriggerGetStarted      Trigger = "get_started"
	TriggerEmployers       Trigger = "employers"
	TriggerBookDemo        Trigger = "book_demo"
	TriggerSwitchToSignIn  Trigger = "switch_to_signin"
	TriggerSwitchToSignup  Trigger = "switch_to_signup"
	TriggerPostJob         Trigger = "post_job"
	TriggerRequestDemo     Trigger = "request_demo"
	TriggerJoin            Trigger = "join"
	TriggerSignupCompleted Trigger = "signup_completed"
	TriggerSignInSubmitted Trigger = "signin_submitted"
)

// Transition is one row of the screen table.
type Transition struct {
	From    domain.Screen `json:"from"`
	Trigger Trigger       `json:"trigger"`
	To      domain.Screen `json:"to"`
	// Payload marks triggers that carry a completed form.
	Payload bool `json:"payload"`
	// Effect describes the side effect, if any.
	Effect string `json:"effect,omitempty"`
	// Notice is shown to the visitor instead of a screen change.
	Notice string `json:"notice,omitempty"`
}

var transitions = []Transition{
	{From: domain.ScreenLanding, Trigger: TriggerGetStarted, To: domain.ScreenSignup},
	{From: domain.ScreenLanding, Trigger: TriggerEmployers, To: domain.ScreenEmployerLanding},
	{From: domain.ScreenLanding, Trigger: TriggerBookDemo, To: domain.ScreenLanding,
		Notice: "Demo booking coming soon! For now, try the Get Started flow."},
	{From: domain.ScreenSignup, Trigger: TriggerSignupCompleted, To: domain.ScreenDashboard, Payload: true,
		Effect: "store university profile"},
	{From: domain.ScreenSignup, Trigger: TriggerSwitchToSignIn, To: domain.ScreenSignIn},
	{From: domain.ScreenSignIn, Trigger: TriggerSignInSubmitted, To: domain.ScreenDashboard, Payload: true,
		Effect: "store authenticated university profile"},
	{From: domain.ScreenSignIn, Trigger: TriggerSwitchToSignup, To: domain.ScreenSignup},
	{From: domain.ScreenEmployerLanding, Trigger: TriggerPostJob, To: domain.ScreenEmployerSignup},
	{From: domain.ScreenEmployerLanding, Trigger: TriggerRequestDemo, To: domain.ScreenEmployerLanding,
		Notice: "Employer demo booking coming soon!"},
	{From: domain.ScreenEmployerSignup, Trigger: TriggerSignupCompleted, To: domain.ScreenEmployerDashboard, Payload: true,
		Effect: "store employer profile"},
	{From: domain.ScreenStudentLanding, Trigger: TriggerJoin, To: domain.ScreenStudentSignup},
	{From: domain.ScreenStudentSignIn, Trigger: TriggerSignInSubmitted, To: domain.ScreenStudentDashboard, Payload: true,
		Effect: "store authenticated student profile"},
	{From: domain.ScreenStudentSignIn, Trigger: TriggerSwitchToSignup, To: domain.ScreenStudentSignup},
	{From: domain.ScreenStudentSignup, Trigger: TriggerSignupCompleted, To: domain.ScreenStudentDashboard, Payload: true,
		Effect: "store student profile without resume"},
	{From: domain.ScreenStudentSignup, Trigger: TriggerSwitchToSignIn, To: domain.ScreenStudentSignIn},
}

// Transitions returns the full screen table.
func Transitions() []Transition {
	out := make([]Transition, len(transitions))
	copy(out, transitions)
	return out
}

// Available returns the transitions that start on screen.
func Available(screen domain.Screen) []Transition {
	var out []Transition
	for _, t := range transitions {
		if t.From == screen {
			out = append(out, t)
		}
	}
	return out
}

func lookup(from domain.Screen, trigger Trigger) (Transition, bool) {
	for _, t := range transitions {
		if t.From == from && t.Trigger == trigger {
			return t, true
		}
	}
	return Transition{}, false
}
