// Package session owns the screen state machine of one visitor: the active
// screen, the three profile slots and the presenter mounted for the screen.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nfrund/oncampus/internal/config"
	"github.com/nfrund/oncampus/internal/dashboard"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/forms"
	"github.com/nfrund/oncampus/internal/invite"
	"github.com/nfrund/oncampus/internal/landing"
)

// SeedSource provides the seeds a dashboard copies when it is mounted.
type SeedSource interface {
	Seeds() dashboard.Seeds
}

// Dependencies holds everything a Controller needs.
type Dependencies struct {
	Auth    domain.Authenticator
	Seeds   SeedSource
	Emitter *events.Emitter
	Logger  *slog.Logger
	// Recorder receives offline placements. When nil, each university
	// dashboard gets an events.PlacementLog.
	Recorder domain.PlacementRecorder

	InitialScreen  domain.Screen
	DashboardGuard string
	MinSkills      int
	Invite         invite.Config
	InviteLink     string
	CounterOptions []invite.Option
}

// State is the tagged union the controller owns. A nil profile slot means
// the role has not signed up or signed in yet.
type State struct {
	Screen     domain.Screen             `json:"screen"`
	University *domain.UniversityProfile `json:"universityProfile,omitempty"`
	Employer   *domain.EmployerProfile   `json:"employerProfile,omitempty"`
	Student    *domain.StudentProfile    `json:"studentProfile,omitempty"`
}

// Clone returns a copy that shares nothing with s.
func (s State) Clone() State {
	if s.University != nil {
		p := *s.University
		s.University = &p
	}
	if s.Employer != nil {
		p := *s.Employer
		s.Employer = &p
	}
	if s.Student != nil {
		p := *s.Student
		p.Skills = slices.Clone(p.Skills)
		s.Student = &p
	}
	return s
}

// HasProfile reports whether the slot for role is filled.
func (s State) HasProfile(role domain.Role) bool {
	switch role {
	case domain.RoleEmployer:
		return s.Employer != nil
	case domain.RoleStudent:
		return s.Student != nil
	default:
		return s.University != nil
	}
}

// Outcome describes the effect of a trigger.
type Outcome struct {
	From   domain.Screen `json:"from"`
	To     domain.Screen `json:"to"`
	Notice string        `json:"notice,omitempty"`
}

// Controller is the single source of truth for one session. It is not safe
// for concurrent use; Store serializes access per session.
type Controller struct {
	deps   Dependencies
	logger *slog.Logger
	state  State
	view   any
}

// New creates a controller on the configured initial screen.
func New(deps Dependencies) (*Controller, error) {
	if deps.Auth == nil {
		return nil, fmt.Errorf("session: authenticator is required")
	}
	if deps.Seeds == nil {
		deps.Seeds = staticSeeds(dashboard.DefaultSeeds())
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.InitialScreen == "" {
		deps.InitialScreen = domain.ScreenStudentLanding
	}
	if deps.DashboardGuard == "" {
		deps.DashboardGuard = config.GuardRedirect
	}
	if !deps.InitialScreen.Valid() {
		return nil, fmt.Errorf("initial screen %q: %w", deps.InitialScreen, domain.ErrInvalidScreen)
	}

	c := &Controller{
		deps:   deps,
		logger: deps.Logger.With("component", "session", "session_id", deps.Emitter.SessionID()),
	}
	c.state.Screen = c.guard(deps.InitialScreen)
	c.mount()
	return c, nil
}

type staticSeeds dashboard.Seeds

func (s staticSeeds) Seeds() dashboard.Seeds { return dashboard.Seeds(s).Clone() }

// Screen returns the active screen.
func (c *Controller) Screen() domain.Screen {
	return c.state.Screen
}

// Snapshot returns a copy of the state.
func (c *Controller) Snapshot() State {
	return c.state.Clone()
}

// Fire applies a trigger that carries no data. A trigger the active screen
// does not list fails with domain.ErrInvalidTransition and changes nothing.
func (c *Controller) Fire(ctx context.Context, trigger Trigger) (Outcome, error) {
	from := c.state.Screen
	t, ok := lookup(from, trigger)
	if !ok {
		return Outcome{}, fmt.Errorf("%s on %s: %w", trigger, from, domain.ErrInvalidTransition)
	}
	if t.Payload {
		return Outcome{}, fmt.Errorf("%s on %s needs form data: %w", trigger, from, domain.ErrInvalidTransition)
	}

	if t.Notice != "" {
		events.Emit(ctx, c.deps.Emitter, events.TopicDemoRequested, events.DemoRequested{
			Role:   from.Role(),
			Screen: from,
			Notice: t.Notice,
		})
		c.logger.Info("Demo requested", "screen", from)
		return Outcome{From: from, To: from, Notice: t.Notice}, nil
	}

	c.enter(ctx, t.To, string(trigger))
	return Outcome{From: from, To: c.state.Screen}, nil
}

// Navigate jumps straight to screen, applying the dashboard guard. Navigating
// to the active screen keeps the mounted presenter.
func (c *Controller) Navigate(ctx context.Context, screen domain.Screen) (Outcome, error) {
	if !screen.Valid() {
		return Outcome{}, fmt.Errorf("navigate to %q: %w", screen, domain.ErrInvalidScreen)
	}
	from := c.state.Screen
	if screen != from {
		c.enter(ctx, screen, "navigate")
	}
	return Outcome{From: from, To: c.state.Screen}, nil
}

// Close tears down the mounted presenter.
func (c *Controller) Close() {
	c.teardown()
}

// guard resolves the screen actually shown for a requested one.
func (c *Controller) guard(to domain.Screen) domain.Screen {
	if to.IsDashboard() && !c.state.HasProfile(to.Role()) && c.deps.DashboardGuard == config.GuardRedirect {
		return to.Role().SignupScreen()
	}
	return to
}

func (c *Controller) enter(ctx context.Context, requested domain.Screen, trigger string) {
	from := c.state.Screen
	to := c.guard(requested)
	if to != requested {
		c.logger.Debug("Dashboard guard redirected", "requested", requested, "screen", to)
	}

	c.teardown()
	c.state.Screen = to
	c.mount()

	c.logger.Debug("Screen changed", "from", from, "to", to, "trigger", trigger)
	events.Emit(ctx, c.deps.Emitter, events.TopicScreenChanged, events.ScreenChanged{
		From:    from,
		To:      to,
		Trigger: trigger,
	})
}

// complete is the shared tail of every payload transition: the side effect
// has already stored the profile, so only the screen switch remains.
func (c *Controller) complete(ctx context.Context, from domain.Screen, trigger Trigger) error {
	if c.state.Screen != from {
		return fmt.Errorf("%s on %s: %w", trigger, c.state.Screen, domain.ErrInvalidTransition)
	}
	t, ok := lookup(from, trigger)
	if !ok {
		return fmt.Errorf("%s on %s: %w", trigger, from, domain.ErrInvalidTransition)
	}
	c.enter(ctx, t.To, string(trigger))
	return nil
}

func (c *Controller) teardown() {
	if closer, ok := c.view.(interface{ Close() }); ok {
		closer.Close()
	}
	c.view = nil
}

func (c *Controller) mount() {
	c.view = c.build(c.state.Screen)
}

// build constructs the presenter for screen. Dashboards are nil until their
// profile is set.
func (c *Controller) build(screen domain.Screen) any {
	switch screen {
	case domain.ScreenLanding, domain.ScreenEmployerLanding, domain.ScreenStudentLanding:
		return landing.New(screen.Role())
	case domain.ScreenSignIn:
		return forms.NewSignIn(c.signInUniversity)
	case domain.ScreenSignup:
		return forms.NewUniversitySignup(c.completeUniversitySignup, c.deps.InviteLink, c.newCounter("university_signup"))
	case domain.ScreenEmployerSignup:
		return forms.NewEmployerSignup(c.completeEmployerSignup, c.newCounter("employer_signup"), c.deps.Emitter)
	case domain.ScreenStudentSignIn:
		return forms.NewStudentSignIn(c.signInStudent)
	case domain.ScreenStudentSignup:
		return forms.NewStudentSignup(c.completeStudentSignup, c.deps.MinSkills)
	case domain.ScreenDashboard:
		if p := c.state.University; p != nil {
			recorder := c.deps.Recorder
			if recorder == nil {
				recorder = events.NewPlacementLog(c.deps.Emitter, p.UniversityName, c.logger)
			}
			return dashboard.NewUniversity(*p, c.deps.Seeds.Seeds().University, recorder)
		}
	case domain.ScreenEmployerDashboard:
		if p := c.state.Employer; p != nil {
			return dashboard.NewEmployer(*p, c.deps.Seeds.Seeds().Employer, c.deps.Emitter, c.logger)
		}
	case domain.ScreenStudentDashboard:
		if p := c.state.Student; p != nil {
			return dashboard.NewStudent(*p, c.deps.Seeds.Seeds().Student)
		}
	}
	return nil
}

func (c *Controller) newCounter(flow string) *invite.Counter {
	cfg := c.deps.Invite
	opts := []invite.Option{
		invite.WithLogger(c.logger),
		invite.WithOnTick(func(ctx context.Context, count int) {
			events.Emit(ctx, c.deps.Emitter, events.TopicStudentsJoined, events.StudentsJoined{
				Flow:  flow,
				Count: count,
				Cap:   cfg.Cap,
			})
		}),
	}
	return invite.New(cfg, append(opts, c.deps.CounterOptions...)...)
}

func (c *Controller) signInUniversity(ctx context.Context, creds domain.Credentials) error {
	if c.state.Screen != domain.ScreenSignIn {
		return fmt.Errorf("%s on %s: %w", TriggerSignInSubmitted, c.state.Screen, domain.ErrInvalidTransition)
	}
	profile, err := c.deps.Auth.AuthenticateUniversity(ctx, creds)
	if err != nil {
		return fmt.Errorf("university sign-in: %w", err)
	}
	c.state.University = profile
	return c.complete(ctx, domain.ScreenSignIn, TriggerSignInSubmitted)
}

func (c *Controller) completeUniversitySignup(ctx context.Context, profile domain.UniversityProfile) error {
	if c.state.Screen != domain.ScreenSignup {
		return fmt.Errorf("%s on %s: %w", TriggerSignupCompleted, c.state.Screen, domain.ErrInvalidTransition)
	}
	c.state.University = &profile
	return c.complete(ctx, domain.ScreenSignup, TriggerSignupCompleted)
}

func (c *Controller) completeEmployerSignup(ctx context.Context, signup domain.EmployerSignup) error {
	if c.state.Screen != domain.ScreenEmployerSignup {
		return fmt.Errorf("%s on %s: %w", TriggerSignupCompleted, c.state.Screen, domain.ErrInvalidTransition)
	}
	profile := signup.Profile()
	c.state.Employer = &profile
	c.logger.Info("Employer signed up", "company", profile.CompanyName, "job_posted", signup.JobPosted)
	return c.complete(ctx, domain.ScreenEmployerSignup, TriggerSignupCompleted)
}

func (c *Controller) signInStudent(ctx context.Context, creds domain.StudentCredentials) error {
	if c.state.Screen != domain.ScreenStudentSignIn {
		return fmt.Errorf("%s on %s: %w", TriggerSignInSubmitted, c.state.Screen, domain.ErrInvalidTransition)
	}
	profile, err := c.deps.Auth.AuthenticateStudent(ctx, creds)
	if err != nil {
		return fmt.Errorf("student sign-in: %w", err)
	}
	c.state.Student = profile
	return c.complete(ctx, domain.ScreenStudentSignIn, TriggerSignInSubmitted)
}

func (c *Controller) completeStudentSignup(ctx context.Context, signup domain.StudentSignup) error {
	if c.state.Screen != domain.ScreenStudentSignup {
		return fmt.Errorf("%s on %s: %w", TriggerSignupCompleted, c.state.Screen, domain.ErrInvalidTransition)
	}
	profile := signup.Profile()
	c.state.Student = &profile
	return c.complete(ctx, domain.ScreenStudentSignup, TriggerSignupCompleted)
}

func mounted[T any](c *Controller) (T, error) {
	v, ok := c.view.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w on screen %s", domain.ErrNoView, c.state.Screen)
	}
	return v, nil
}

// View returns whatever presenter is mounted, or nil on a blank dashboard.
func (c *Controller) View() any { return c.view }

func (c *Controller) Landing() (*landing.Page, error)          { return mounted[*landing.Page](c) }
func (c *Controller) SignInForm() (*forms.SignIn, error)       { return mounted[*forms.SignIn](c) }
func (c *Controller) StudentSignInForm() (*forms.StudentSignIn, error) {
	return mounted[*forms.StudentSignIn](c)
}
func (c *Controller) UniversitySignupForm() (*forms.UniversitySignup, error) {
	return mounted[*forms.UniversitySignup](c)
}
func (c *Controller) EmployerSignupForm() (*forms.EmployerSignup, error) {
	return mounted[*forms.EmployerSignup](c)
}
func (c *Controller) StudentSignupForm() (*forms.StudentSignup, error) {
	return mounted[*forms.StudentSignup](c)
}
func (c *Controller) UniversityDashboard() (*dashboard.University, error) {
	return mounted[*dashboard.University](c)
}
func (c *Controller) EmployerDashboard() (*dashboard.Employer, error) {
	return mounted[*dashboard.Employer](c)
}
func (c *Controller) StudentDashboard() (*dashboard.Student, error) {
	return mounted[*dashboard.Student](c)
}
