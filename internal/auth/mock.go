// Package auth provides the authenticator used by the sign-in screens.
package auth

import (
	"context"
	"log/slog"

	"github.com/nfrund/oncampus/internal/domain"
)

// Mock accepts any complete set of credentials and fabricates a profile
// around the submitted email. The fixed fields can be overridden per instance.
type Mock struct {
	University domain.UniversityProfile
	Student    domain.StudentProfile
	logger     *slog.Logger
}

// Compile-time interface compliance check
var _ domain.Authenticator = (*Mock)(nil)

// NewMock returns a Mock with the demo profiles.
func NewMock(logger *slog.Logger) *Mock {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mock{
		University: domain.UniversityProfile{
			Name:           "Dr. Rajesh Kumar",
			UniversityName: "Indian Institute of Technology, Delhi",
			Designation:    "Placement Officer",
		},
		Student: domain.StudentProfile{
			Name:   "Priya Sharma",
			Course: "B.Tech Computer Science",
			Year:   "4th Year / Final Year",
			Skills: []string{"Python", "Java", "React"},
		},
		logger: logger.With("component", "auth"),
	}
}

// AuthenticateUniversity implements domain.Authenticator.
func (m *Mock) AuthenticateUniversity(_ context.Context, creds domain.Credentials) (*domain.UniversityProfile, error) {
	m.logger.Debug("Mock university sign-in", "email", creds.Email)
	profile := m.University
	profile.Email = creds.Email
	return &profile, nil
}

// AuthenticateStudent implements domain.Authenticator. The college comes from the form.
func (m *Mock) AuthenticateStudent(_ context.Context, creds domain.StudentCredentials) (*domain.StudentProfile, error) {
	m.logger.Debug("Mock student sign-in", "email", creds.Email, "college", creds.College)
	profile := m.Student
	profile.Email = creds.Email
	profile.College = creds.College
	profile.Skills = append([]string(nil), m.Student.Skills...)
	return &profile, nil
}
