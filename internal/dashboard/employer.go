package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/events"
)

// Employer tabs.
const (
	TabRoles        = "roles"
	TabApplications = "applications"
)

var employerTabs = []string{TabOverview, TabRoles, TabApplications}

// Employer is the recruiter's dashboard.
type Employer struct {
	profile domain.EmployerProfile
	data    EmployerSeed
	emitter *events.Emitter
	logger  *slog.Logger

	tab           string
	roleID        string
	applicationID string
}

// NewEmployer mounts an employer dashboard on its own copy of seed. emitter may be nil.
func NewEmployer(profile domain.EmployerProfile, seed EmployerSeed, emitter *events.Emitter, logger *slog.Logger) *Employer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Employer{
		profile: profile,
		data:    seed.Clone(),
		emitter: emitter,
		logger:  logger.With("component", "employer_dashboard"),
		tab:     TabOverview,
	}
}

func (e *Employer) Profile() domain.EmployerProfile { return e.profile }
func (e *Employer) Tab() string                     { return e.tab }
func (e *Employer) Metrics() domain.EmployerMetrics { return e.data.Metrics }
func (e *Employer) Roles() []domain.OpenRole        { return slices.Clone(e.data.Roles) }
func (e *Employer) Activities() []domain.Activity   { return slices.Clone(e.data.Activities) }
func (e *Employer) SelectedRoleID() string          { return e.roleID }

// Applications returns the applications in display order.
func (e *Employer) Applications() []domain.Application {
	apps := slices.Clone(e.data.Applications)
	for i := range apps {
		apps[i].Skills = slices.Clone(apps[i].Skills)
	}
	return apps
}

// SetTab switches the visible tab.
func (e *Employer) SetTab(tab string) error {
	if !slices.Contains(employerTabs, tab) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTab, tab)
	}
	e.tab = tab
	return nil
}

// SelectRole highlights one of the open roles.
func (e *Employer) SelectRole(id string) error {
	for _, r := range e.data.Roles {
		if r.ID == id {
			e.roleID = id
			return nil
		}
	}
	return fmt.Errorf("role %q: %w", id, domain.ErrNotFound)
}

// SelectApplication opens the detail panel of an application.
func (e *Employer) SelectApplication(id string) error {
	if _, err := e.application(id); err != nil {
		return err
	}
	e.applicationID = id
	return nil
}

// CloseApplication closes the detail panel.
func (e *Employer) CloseApplication() {
	e.applicationID = ""
}

// SelectedApplication returns the application in the detail panel, or nil.
func (e *Employer) SelectedApplication() *domain.Application {
	app, err := e.application(e.applicationID)
	if err != nil {
		return nil
	}
	app.Skills = slices.Clone(app.Skills)
	return &app
}

func (e *Employer) application(id string) (domain.Application, error) {
	for _, a := range e.data.Applications {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Application{}, fmt.Errorf("application %q: %w", id, domain.ErrNotFound)
}

// ActOnApplication logs and publishes an action on an application. The
// application's status is not changed.
func (e *Employer) ActOnApplication(ctx context.Context, id string, action domain.ApplicationAction) error {
	if !action.Valid() {
		return fmt.Errorf("unknown action %q: %w", action, domain.ErrNotFound)
	}
	app, err := e.application(id)
	if err != nil {
		return err
	}

	e.logger.Info("Application action", "application_id", id, "action", action, "company", e.profile.CompanyName)
	events.Emit(ctx, e.emitter, events.TopicApplicationActed, events.ApplicationActed{
		ApplicationID: id,
		StudentName:   app.StudentName,
		Action:        action,
	})
	return nil
}
