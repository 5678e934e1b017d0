package forms

import (
	"context"
	"fmt"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/invite"
)

// Step names of the two-step signup flows.
const (
	StepSignup  = "signup"
	StepInvite  = "invite"
	StepPostJob = "post_job"
)

// UniversitySignup collects the placement officer's details, then shows an
// invite link with a live count of students joining.
type UniversitySignup struct {
	step       string
	values     domain.UniversityProfile
	inviteLink string
	counter    *invite.Counter
	onComplete Callback[domain.UniversityProfile]
}

// NewUniversitySignup creates the flow on its first step. counter may be nil.
func NewUniversitySignup(onComplete Callback[domain.UniversityProfile], inviteLink string, counter *invite.Counter) *UniversitySignup {
	return &UniversitySignup{
		step:       StepSignup,
		inviteLink: inviteLink,
		counter:    counter,
		onComplete: onComplete,
	}
}

func (f *UniversitySignup) SetName(v string)           { f.values.Name = v }
func (f *UniversitySignup) SetEmail(v string)          { f.values.Email = v }
func (f *UniversitySignup) SetUniversityName(v string) { f.values.UniversityName = v }
func (f *UniversitySignup) SetDesignation(v string)    { f.values.Designation = v }

func (f *UniversitySignup) Step() string                     { return f.step }
func (f *UniversitySignup) Values() domain.UniversityProfile { return f.values }
func (f *UniversitySignup) InviteLink() string               { return f.inviteLink }
func (f *UniversitySignup) Counter() *invite.Counter         { return f.counter }

// StudentsJoined returns the simulated number of students who used the link.
func (f *UniversitySignup) StudentsJoined() int {
	if f.counter == nil {
		return 0
	}
	return f.counter.Count()
}

// Next validates the details and moves to the invite step, starting the counter.
// The counter outlives ctx's cancellation; it stops on Back or Close.
func (f *UniversitySignup) Next(ctx context.Context) error {
	if f.step != StepSignup {
		return fmt.Errorf("next from step %q: %w", f.step, domain.ErrInvalidTransition)
	}
	if err := check(f.values); err != nil {
		return err
	}
	f.step = StepInvite
	if f.counter != nil {
		f.counter.Start(context.WithoutCancel(ctx))
	}
	return nil
}

// Back returns to the details step and stops the counter.
func (f *UniversitySignup) Back() {
	f.step = StepSignup
	f.Close()
}

// Complete emits the entered details. It is only available on the invite step.
func (f *UniversitySignup) Complete(ctx context.Context) error {
	if f.step != StepInvite {
		return fmt.Errorf("complete from step %q: %w", f.step, domain.ErrInvalidTransition)
	}
	if err := check(f.values); err != nil {
		return err
	}
	return f.onComplete(ctx, f.values)
}

// Close stops the counter.
func (f *UniversitySignup) Close() {
	if f.counter != nil {
		f.counter.Stop()
	}
}
