package forms

import (
	"context"
	"fmt"
	"slices"

	"github.com/nfrund/oncampus/internal/domain"
)

// StudentSignupSteps is the number of steps of the student signup.
const StudentSignupSteps = 3

// DefaultMinSkills is the number of skills the student signup requires.
const DefaultMinSkills = 1

type studentAccount struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type studentAcademics struct {
	College string `json:"college" validate:"required"`
	Course  string `json:"course" validate:"required"`
	Year    string `json:"year" validate:"required"`
}

// StudentSignup walks a student through account details (step 1), academics
// (step 2) and skills with an optional resume (step 3).
type StudentSignup struct {
	step       int
	account    studentAccount
	academics  studentAcademics
	skills     []string
	resume     string
	minSkills  int
	onComplete Callback[domain.StudentSignup]
}

// NewStudentSignup creates the flow on step 1. minSkills below 1 is raised to 1.
func NewStudentSignup(onComplete Callback[domain.StudentSignup], minSkills int) *StudentSignup {
	if minSkills < DefaultMinSkills {
		minSkills = DefaultMinSkills
	}
	return &StudentSignup{step: 1, minSkills: minSkills, onComplete: onComplete}
}

func (f *StudentSignup) SetName(v string)     { f.account.Name = v }
func (f *StudentSignup) SetEmail(v string)    { f.account.Email = v }
func (f *StudentSignup) SetPassword(v string) { f.account.Password = v }
func (f *StudentSignup) SetCollege(v string)  { f.academics.College = v }
func (f *StudentSignup) SetCourse(v string)   { f.academics.Course = v }
func (f *StudentSignup) SetYear(v string)     { f.academics.Year = v }
func (f *StudentSignup) SetResume(v string)   { f.resume = v }

// ToggleSkill adds the skill, or removes it if already selected.
func (f *StudentSignup) ToggleSkill(skill string) {
	f.skills = toggle(f.skills, skill)
}

func (f *StudentSignup) Step() int              { return f.step }
func (f *StudentSignup) MinSkills() int         { return f.minSkills }
func (f *StudentSignup) Skills() []string       { return slices.Clone(f.skills) }
func (f *StudentSignup) StepValid() bool        { return f.validateStep(f.step) == nil }
func (f *StudentSignup) HasSkill(s string) bool { return slices.Contains(f.skills, s) }

// Values returns the record that Submit would emit.
func (f *StudentSignup) Values() domain.StudentSignup {
	return domain.StudentSignup{
		Name:    f.account.Name,
		Email:   f.account.Email,
		College: f.academics.College,
		Course:  f.academics.Course,
		Year:    f.academics.Year,
		Skills:  slices.Clone(f.skills),
		Resume:  f.resume,
	}
}

func (f *StudentSignup) validateStep(step int) error {
	switch step {
	case 1:
		return check(f.account)
	case 2:
		return check(f.academics)
	default:
		return checkMinItems("skills", f.skills, f.minSkills)
	}
}

// Next advances one step when the current step is complete.
func (f *StudentSignup) Next() error {
	if f.step >= StudentSignupSteps {
		return fmt.Errorf("next from step %d: %w", f.step, domain.ErrInvalidTransition)
	}
	if err := f.validateStep(f.step); err != nil {
		return err
	}
	f.step++
	return nil
}

// Back retreats one step without validating; it stays on step 1.
func (f *StudentSignup) Back() {
	if f.step > 1 {
		f.step--
	}
}

// Submit emits the record from the last step once every step validates.
func (f *StudentSignup) Submit(ctx context.Context) error {
	if f.step != StudentSignupSteps {
		return fmt.Errorf("submit from step %d: %w", f.step, domain.ErrInvalidTransition)
	}
	for step := 1; step <= StudentSignupSteps; step++ {
		if err := f.validateStep(step); err != nil {
			return err
		}
	}
	return f.onComplete(ctx, f.Values())
}
