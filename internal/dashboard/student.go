package dashboard

import (
	"fmt"
	"slices"

	"github.com/nfrund/oncampus/internal/domain"
)

// Student tabs.
const (
	TabOpportunities = "opportunities"
	TabInterviews    = "interviews"
)

var studentTabs = []string{TabOpportunities, TabApplications, TabInterviews}

// Student is the student's dashboard. Its placement status is fixed by the seed.
type Student struct {
	profile           domain.StudentProfile
	data              StudentSeed
	tab               string
	notificationsOpen bool
}

// NewStudent mounts a student dashboard on its own copy of seed.
func NewStudent(profile domain.StudentProfile, seed StudentSeed) *Student {
	profile.Skills = slices.Clone(profile.Skills)
	return &Student{
		profile: profile,
		data:    seed.Clone(),
		tab:     TabOpportunities,
	}
}

func (s *Student) Profile() domain.StudentProfile          { return s.profile }
func (s *Student) Tab() string                             { return s.tab }
func (s *Student) Greeting() string                        { return "Welcome back, " + domain.FirstName(s.profile.Name) + "!" }
func (s *Student) PlacementStatus() domain.PlacementStatus { return s.data.PlacementStatus }
func (s *Student) NotificationsOpen() bool                 { return s.notificationsOpen }
func (s *Student) ToggleNotifications()                    { s.notificationsOpen = !s.notificationsOpen }

func (s *Student) Opportunities() []domain.Opportunity       { return slices.Clone(s.data.Opportunities) }
func (s *Student) Applications() []domain.StudentApplication { return slices.Clone(s.data.Applications) }
func (s *Student) Interviews() []domain.Interview            { return slices.Clone(s.data.Interviews) }
func (s *Student) Feed() []domain.FeedItem                   { return slices.Clone(s.data.Feed) }

// SetTab switches the visible tab.
func (s *Student) SetTab(tab string) error {
	if !slices.Contains(studentTabs, tab) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTab, tab)
	}
	s.tab = tab
	return nil
}
