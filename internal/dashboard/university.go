// Package dashboard holds the state of the three role dashboards. Each mounted
// dashboard owns a private copy of its seed data and mutates only that copy.
package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/forms"
)

// University tabs.
const (
	TabOverview  = "overview"
	TabStudents  = "students"
	TabJobs      = "jobs"
	TabCommunity = "community"
)

var universityTabs = []string{TabOverview, TabStudents, TabJobs, TabCommunity}

// University is the placement officer's dashboard.
type University struct {
	profile  domain.UniversityProfile
	data     UniversitySeed
	recorder domain.PlacementRecorder
	newID    func() string

	tab          string
	selectedID   string
	statusFilter domain.StudentStatus
	search       string

	notificationsOpen bool
	profileOpen       bool
	placementOpen     bool
	composer          *forms.CommunityPost
}

// UniversityOption configures a University dashboard.
type UniversityOption func(*University)

// WithPostIDs replaces the generator of community post ids.
func WithPostIDs(fn func() string) UniversityOption {
	return func(u *University) {
		u.newID = fn
	}
}

// NewUniversity mounts a university dashboard on its own copy of seed.
func NewUniversity(profile domain.UniversityProfile, seed UniversitySeed, recorder domain.PlacementRecorder, opts ...UniversityOption) *University {
	u := &University{
		profile:  profile,
		data:     seed.Clone(),
		recorder: recorder,
		newID:    uuid.NewString,
		tab:      TabOverview,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *University) Profile() domain.UniversityProfile  { return u.profile }
func (u *University) Tab() string                        { return u.tab }
func (u *University) Metrics() domain.UniversityMetrics  { return u.data.Metrics }
func (u *University) Jobs() []domain.Job                 { return slices.Clone(u.data.Jobs) }
func (u *University) Activities() []domain.Activity      { return slices.Clone(u.data.Activities) }
func (u *University) StatusFilter() domain.StudentStatus { return u.statusFilter }
func (u *University) Search() string                     { return u.search }
func (u *University) NotificationsOpen() bool            { return u.notificationsOpen }
func (u *University) ProfileOpen() bool                  { return u.profileOpen }
func (u *University) PlacementDialogOpen() bool          { return u.placementOpen }

// SetTab switches the visible tab.
func (u *University) SetTab(tab string) error {
	if !slices.Contains(universityTabs, tab) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTab, tab)
	}
	u.tab = tab
	return nil
}

// Students returns the students matching the status filter and name search.
func (u *University) Students() []domain.Student {
	query := strings.ToLower(strings.TrimSpace(u.search))
	out := make([]domain.Student, 0, len(u.data.Students))
	for _, s := range u.data.Students {
		if u.statusFilter != "" && s.Status != u.statusFilter {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(s.Name), query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SetStatusFilter limits Students to one status; the empty status shows all.
func (u *University) SetStatusFilter(status domain.StudentStatus) error {
	switch status {
	case "", domain.StudentNotApplied, domain.StudentApplied, domain.StudentInterviewing,
		domain.StudentOfferReceived, domain.StudentPlaced:
		u.statusFilter = status
		return nil
	}
	return fmt.Errorf("unknown student status %q: %w", status, domain.ErrNotFound)
}

// SetSearch filters Students by a case-insensitive name fragment.
func (u *University) SetSearch(query string) {
	u.search = query
}

// SelectStudent opens the detail panel of a student.
func (u *University) SelectStudent(id string) error {
	for _, s := range u.data.Students {
		if s.ID == id {
			u.selectedID = id
			return nil
		}
	}
	return fmt.Errorf("student %q: %w", id, domain.ErrNotFound)
}

// CloseStudent closes the detail panel.
func (u *University) CloseStudent() {
	u.selectedID = ""
}

// SelectedStudent returns the student in the detail panel, or nil.
func (u *University) SelectedStudent() *domain.Student {
	for _, s := range u.data.Students {
		if s.ID == u.selectedID {
			return &s
		}
	}
	return nil
}

// Notifications returns the notifications in display order.
func (u *University) Notifications() []domain.Notification {
	return slices.Clone(u.data.Notifications)
}

// UnreadCount returns the number of unread notifications.
func (u *University) UnreadCount() int {
	n := 0
	for _, notification := range u.data.Notifications {
		if !notification.Read {
			n++
		}
	}
	return n
}

// MarkNotificationRead marks one notification as read.
func (u *University) MarkNotificationRead(id string) error {
	for i := range u.data.Notifications {
		if u.data.Notifications[i].ID == id {
			u.data.Notifications[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("notification %q: %w", id, domain.ErrNotFound)
}

// MarkAllRead marks every notification as read.
func (u *University) MarkAllRead() {
	for i := range u.data.Notifications {
		u.data.Notifications[i].Read = true
	}
}

func (u *University) ToggleNotifications() { u.notificationsOpen = !u.notificationsOpen }
func (u *University) ToggleProfile()       { u.profileOpen = !u.profileOpen }

// Posts returns the community feed, newest first.
func (u *University) Posts() []domain.CommunityPost {
	posts := slices.Clone(u.data.Posts)
	for i := range posts {
		posts[i].PollOptions = slices.Clone(posts[i].PollOptions)
	}
	return posts
}

// AddCommunityPost prepends a post authored by the signed-in officer.
func (u *University) AddCommunityPost(draft domain.PostDraft) domain.CommunityPost {
	post := domain.NewCommunityPost(u.newID(), u.profile.Name, draft)
	u.data.Posts = slices.Insert(u.data.Posts, 0, post)
	return post
}

// OpenComposer shows the community post composer. The composer adds its post
// to the feed and closes itself on submit.
func (u *University) OpenComposer() *forms.CommunityPost {
	if u.composer == nil {
		u.composer = forms.NewCommunityPost(func(_ context.Context, draft domain.PostDraft) error {
			u.AddCommunityPost(draft)
			u.composer = nil
			return nil
		})
	}
	return u.composer
}

// Composer returns the open composer, or nil.
func (u *University) Composer() *forms.CommunityPost {
	return u.composer
}

// CloseComposer discards the composer and its input.
func (u *University) CloseComposer() {
	u.composer = nil
}

func (u *University) OpenPlacementDialog()  { u.placementOpen = true }
func (u *University) ClosePlacementDialog() { u.placementOpen = false }

// RecordPlacement hands an offline placement to the recorder and closes the
// dialog. The dashboard's own collections do not change.
func (u *University) RecordPlacement(ctx context.Context, placement domain.OfflinePlacement) error {
	if placement.OfferType == "" {
		placement.OfferType = domain.DefaultOfferType
	}
	if err := forms.Validate(placement); err != nil {
		return err
	}
	if u.recorder != nil {
		if err := u.recorder.RecordPlacement(ctx, placement); err != nil {
			return fmt.Errorf("record placement: %w", err)
		}
	}
	u.placementOpen = false
	return nil
}

// PollShares returns the vote percentages of a poll post.
func (u *University) PollShares(postID string) ([]float64, error) {
	for _, p := range u.data.Posts {
		if p.ID == postID {
			return domain.PollPercentages(p.PollOptions), nil
		}
	}
	return nil, fmt.Errorf("post %q: %w", postID, domain.ErrNotFound)
}
