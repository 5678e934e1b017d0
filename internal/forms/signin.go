package forms

import (
	"context"

	"github.com/nfrund/oncampus/internal/domain"
)

// SignIn is the university sign-in form.
type SignIn struct {
	values   domain.Credentials
	onSignIn Callback[domain.Credentials]
}

// NewSignIn creates an empty sign-in form.
func NewSignIn(onSignIn Callback[domain.Credentials]) *SignIn {
	return &SignIn{onSignIn: onSignIn}
}

func (f *SignIn) SetEmail(v string)    { f.values.Email = v }
func (f *SignIn) SetPassword(v string) { f.values.Password = v }

// Values returns the current field values.
func (f *SignIn) Values() domain.Credentials {
	return f.values
}

// Submit hands the credentials to the callback when both fields are filled.
func (f *SignIn) Submit(ctx context.Context) error {
	if err := check(f.values); err != nil {
		return err
	}
	return f.onSignIn(ctx, f.values)
}

// StudentSignIn is the student sign-in form, which also asks for the college.
type StudentSignIn struct {
	values   domain.StudentCredentials
	onSignIn Callback[domain.StudentCredentials]
}

// NewStudentSignIn creates an empty student sign-in form.
func NewStudentSignIn(onSignIn Callback[domain.StudentCredentials]) *StudentSignIn {
	return &StudentSignIn{onSignIn: onSignIn}
}

func (f *StudentSignIn) SetEmail(v string)    { f.values.Email = v }
func (f *StudentSignIn) SetPassword(v string) { f.values.Password = v }
func (f *StudentSignIn) SetCollege(v string)  { f.values.College = v }

// Values returns the current field values.
func (f *StudentSignIn) Values() domain.StudentCredentials {
	return f.values
}

// Submit hands the credentials to the callback when every field is filled.
func (f *StudentSignIn) Submit(ctx context.Context) error {
	if err := check(f.values); err != nil {
		return err
	}
	return f.onSignIn(ctx, f.values)
}
