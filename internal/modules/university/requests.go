package university

import (
	"github.com/nfrund/oncampus/internal/domain"
)

// SignInRequest is the university sign-in form.
type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// SignupRequest is the first step of the university signup.
type SignupRequest struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	UniversityName string `json:"universityName" form:"universityName"`
	Designation    string `json:"designation" form:"designation"`
}

// PlacementRequest is the offline placement dialog.
type PlacementRequest struct {
	CompanyName string `json:"companyName" form:"companyName"`
	Role        string `json:"role" form:"role"`
	StudentName string `json:"studentName" form:"studentName"`
	OfferType   string `json:"offerType" form:"offerType"`
	CTC         string `json:"ctc" form:"ctc"`
}

func (r PlacementRequest) placement() domain.OfflinePlacement {
	return domain.OfflinePlacement{
		CompanyName: r.CompanyName,
		Role:        r.Role,
		StudentName: r.StudentName,
		OfferType:   r.OfferType,
		CTC:         r.CTC,
	}
}

// DashboardResponse is the JSON rendering of the university dashboard.
type DashboardResponse struct {
	Profile           domain.UniversityProfile `json:"profile"`
	Tab               string                   `json:"tab"`
	Metrics           domain.UniversityMetrics `json:"metrics"`
	Students          []domain.Student         `json:"students"`
	SelectedStudent   *domain.Student          `json:"selectedStudent,omitempty"`
	StatusFilter      domain.StudentStatus     `json:"statusFilter,omitempty"`
	Search            string                   `json:"search,omitempty"`
	Jobs              []domain.Job             `json:"jobs"`
	Activities        []domain.Activity        `json:"activities"`
	Notifications     []domain.Notification    `json:"notifications"`
	UnreadCount       int                      `json:"unreadCount"`
	Posts             []domain.CommunityPost   `json:"posts"`
	NotificationsOpen bool                     `json:"notificationsOpen"`
}

// InviteUpdate is streamed over the invite websocket on every tick.
type InviteUpdate struct {
	Count int `json:"count"`
	Cap   int `json:"cap"`
}
