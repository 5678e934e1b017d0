package forms

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/invite"
)

// EmployerSignup collects the recruiter's details, then offers to post a
// first job while a counter shows how many students the post would reach.
type EmployerSignup struct {
	step       string
	values     domain.EmployerProfile
	job        domain.JobDraft
	counter    *invite.Counter
	emitter    *events.Emitter
	onComplete Callback[domain.EmployerSignup]
}

// NewEmployerSignup creates the flow on its first step. counter and emitter may be nil.
func NewEmployerSignup(onComplete Callback[domain.EmployerSignup], counter *invite.Counter, emitter *events.Emitter) *EmployerSignup {
	return &EmployerSignup{
		step:       StepSignup,
		job:        domain.JobDraft{Type: domain.JobIntern},
		counter:    counter,
		emitter:    emitter,
		onComplete: onComplete,
	}
}

func (f *EmployerSignup) SetCompanyName(v string) { f.values.CompanyName = v }
func (f *EmployerSignup) SetEmail(v string)       { f.values.Email = v }
func (f *EmployerSignup) SetRole(v string)        { f.values.Role = v }

func (f *EmployerSignup) SetJobTitle(v string)        { f.job.Title = v }
func (f *EmployerSignup) SetJobType(v domain.JobType) { f.job.Type = v }
func (f *EmployerSignup) SetJobStartDate(v string)    { f.job.StartDate = v }
func (f *EmployerSignup) ToggleCourse(course string)  { f.job.Courses = toggle(f.job.Courses, course) }
func (f *EmployerSignup) ToggleYear(year string)      { f.job.Years = toggle(f.job.Years, year) }

// RemoveSkill drops a skill from the job draft.
func (f *EmployerSignup) RemoveSkill(skill string) {
	f.job.Skills = slices.DeleteFunc(f.job.Skills, func(s string) bool { return s == skill })
}

func (f *EmployerSignup) Step() string                   { return f.step }
func (f *EmployerSignup) Values() domain.EmployerProfile { return f.values }
func (f *EmployerSignup) Job() domain.JobDraft           { return f.job.Clone() }
func (f *EmployerSignup) Counter() *invite.Counter       { return f.counter }

// AddSkill trims the input and adds it unless it is blank or already listed.
// It reports whether the skill was added.
func (f *EmployerSignup) AddSkill(raw string) bool {
	skill := strings.TrimSpace(raw)
	if skill == "" || slices.Contains(f.job.Skills, skill) {
		return false
	}
	f.job.Skills = append(f.job.Skills, skill)
	return true
}

// SetJob replaces the draft with job. An empty type keeps the current one.
// List entries are trimmed, blanks are dropped and repeats collapse to the
// first occurrence.
func (f *EmployerSignup) SetJob(job domain.JobDraft) {
	f.job.Title = job.Title
	if job.Type != "" {
		f.job.Type = job.Type
	}
	f.job.StartDate = job.StartDate
	f.job.Skills = uniqueTrimmed(job.Skills)
	f.job.Courses = uniqueTrimmed(job.Courses)
	f.job.Years = uniqueTrimmed(job.Years)
}

func uniqueTrimmed(items []string) []string {
	var out []string
	for _, raw := range items {
		item := strings.TrimSpace(raw)
		if item != "" && !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}

// StudentsReached returns the simulated reach of the job post.
func (f *EmployerSignup) StudentsReached() int {
	if f.counter == nil {
		return 0
	}
	return f.counter.Count()
}

// Next validates the details and moves to the job step.
func (f *EmployerSignup) Next(ctx context.Context) error {
	if f.step != StepSignup {
		return fmt.Errorf("next from step %q: %w", f.step, domain.ErrInvalidTransition)
	}
	if err := check(f.values); err != nil {
		return err
	}
	f.step = StepPostJob
	if f.counter != nil {
		f.counter.Start(context.WithoutCancel(ctx))
	}
	return nil
}

// Back returns to the details step and stops the counter.
func (f *EmployerSignup) Back() {
	f.step = StepSignup
	f.Close()
}

// Submit posts the job and completes the signup with JobPosted set.
func (f *EmployerSignup) Submit(ctx context.Context) error {
	if f.step != StepPostJob {
		return fmt.Errorf("post job from step %q: %w", f.step, domain.ErrInvalidTransition)
	}
	if err := check(f.job); err != nil {
		return err
	}
	events.Emit(ctx, f.emitter, events.TopicJobPosted, events.JobPosted{
		CompanyName: f.values.CompanyName,
		Job:         f.job.Clone(),
	})
	return f.complete(ctx, true)
}

// Skip completes the signup without posting a job.
func (f *EmployerSignup) Skip(ctx context.Context) error {
	if f.step != StepPostJob {
		return fmt.Errorf("skip from step %q: %w", f.step, domain.ErrInvalidTransition)
	}
	return f.complete(ctx, false)
}

func (f *EmployerSignup) complete(ctx context.Context, jobPosted bool) error {
	if err := check(f.values); err != nil {
		return err
	}
	return f.onComplete(ctx, domain.EmployerSignup{
		CompanyName: f.values.CompanyName,
		Email:       f.values.Email,
		Role:        f.values.Role,
		JobPosted:   jobPosted,
	})
}

// Close stops the counter.
func (f *EmployerSignup) Close() {
	if f.counter != nil {
		f.counter.Stop()
	}
}
