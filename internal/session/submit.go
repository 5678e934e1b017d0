package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/forms"
)

// EmployerSubmission is the payload of the employer signup. A nil Job skips
// the job step.
type EmployerSubmission struct {
	domain.EmployerProfile
	Job *domain.JobDraft `json:"job,omitempty"`
}

// StudentSubmission is the payload of the student signup.
type StudentSubmission struct {
	domain.StudentSignup
	Password string `json:"password"`
}

// Submit completes the form of the active screen in one call. A detached
// form is filled from the JSON payload, walked through its steps and
// submitted; it replaces the mounted view only by completing. On failure the
// session keeps its screen and the mounted form is left as it was.
func (c *Controller) Submit(ctx context.Context, trigger Trigger, payload []byte) (Outcome, error) {
	from := c.state.Screen
	t, ok := lookup(from, trigger)
	if !ok || !t.Payload {
		return Outcome{}, fmt.Errorf("%s on %s: %w", trigger, from, domain.ErrInvalidTransition)
	}

	draft := c.build(from)
	defer func() {
		if closer, ok := draft.(interface{ Close() }); ok {
			closer.Close()
		}
	}()

	var err error
	switch form := draft.(type) {
	case *forms.SignIn:
		err = submitSignIn(ctx, form, payload)
	case *forms.StudentSignIn:
		err = submitStudentSignIn(ctx, form, payload)
	case *forms.UniversitySignup:
		err = submitUniversitySignup(ctx, form, payload)
	case *forms.EmployerSignup:
		err = submitEmployerSignup(ctx, form, payload)
	case *forms.StudentSignup:
		err = submitStudentSignup(ctx, form, payload)
	default:
		err = fmt.Errorf("%s on %s: %w", trigger, from, domain.ErrInvalidTransition)
	}
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{From: from, To: c.state.Screen}, nil
}

// ErrBadPayload wraps JSON decoding failures.
var ErrBadPayload = errors.New("malformed payload")

func decode[T any](payload []byte) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return v, nil
}

func submitSignIn(ctx context.Context, form *forms.SignIn, payload []byte) error {
	creds, err := decode[domain.Credentials](payload)
	if err != nil {
		return err
	}
	form.SetEmail(creds.Email)
	form.SetPassword(creds.Password)
	return form.Submit(ctx)
}

func submitStudentSignIn(ctx context.Context, form *forms.StudentSignIn, payload []byte) error {
	creds, err := decode[domain.StudentCredentials](payload)
	if err != nil {
		return err
	}
	form.SetEmail(creds.Email)
	form.SetPassword(creds.Password)
	form.SetCollege(creds.College)
	return form.Submit(ctx)
}

func submitUniversitySignup(ctx context.Context, form *forms.UniversitySignup, payload []byte) error {
	profile, err := decode[domain.UniversityProfile](payload)
	if err != nil {
		return err
	}
	form.SetName(profile.Name)
	form.SetEmail(profile.Email)
	form.SetUniversityName(profile.UniversityName)
	form.SetDesignation(profile.Designation)
	if err := form.Next(ctx); err != nil {
		return err
	}
	return form.Complete(ctx)
}

func submitEmployerSignup(ctx context.Context, form *forms.EmployerSignup, payload []byte) error {
	sub, err := decode[EmployerSubmission](payload)
	if err != nil {
		return err
	}
	form.SetCompanyName(sub.CompanyName)
	form.SetEmail(sub.Email)
	form.SetRole(sub.Role)
	if err := form.Next(ctx); err != nil {
		return err
	}
	if sub.Job == nil {
		return form.Skip(ctx)
	}

	form.SetJob(*sub.Job)
	return form.Submit(ctx)
}

func submitStudentSignup(ctx context.Context, form *forms.StudentSignup, payload []byte) error {
	signup, err := decode[StudentSubmission](payload)
	if err != nil {
		return err
	}
	form.SetName(signup.Name)
	form.SetEmail(signup.Email)
	form.SetPassword(signup.Password)
	form.SetCollege(signup.College)
	form.SetCourse(signup.Course)
	form.SetYear(signup.Year)
	form.SetResume(signup.Resume)
	for _, s := range signup.Skills {
		if !form.HasSkill(s) {
			form.ToggleSkill(s)
		}
	}
	for form.Step() < forms.StudentSignupSteps {
		if err := form.Next(); err != nil {
			return err
		}
	}
	return form.Submit(ctx)
}
