package domain

import "context"

// StudentStatus is the placement progress of a student on the university dashboard.
type StudentStatus string

const (
	StudentNotApplied    StudentStatus = "not_applied"
	StudentApplied       StudentStatus = "applied"
	StudentInterviewing  StudentStatus = "interviewing"
	StudentOfferReceived StudentStatus = "offer_received"
	StudentPlaced        StudentStatus = "placed"
)

// Student is a row of the university dashboard.
type Student struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Course              string        `json:"course"`
	Year                string        `json:"year"`
	Status              StudentStatus `json:"status"`
	AppliedJobs         int           `json:"appliedJobs"`
	InterviewsScheduled int           `json:"interviewsScheduled"`
	Offers              int           `json:"offers"`
}

// Job is an employer opening as seen by a university.
type Job struct {
	ID               string `json:"id"`
	Company          string `json:"company"`
	Role             string `json:"role"`
	EligibleStudents int    `json:"eligibleStudents"`
	Applications     int    `json:"applications"`
	Interviewing     int    `json:"interviewing"`
	Offers           int    `json:"offers"`
}

// Activity is an entry of a dashboard's recent activity list.
type Activity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationOffer       NotificationType = "offer"
	NotificationInterview   NotificationType = "interview"
	NotificationApplication NotificationType = "application"
	NotificationSystem      NotificationType = "system"
)

// Notification is a dismissible message on the university dashboard.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Read    bool             `json:"read"`
	Type    NotificationType `json:"type"`
}

// UniversityMetrics are the headline counters of the university overview.
type UniversityMetrics struct {
	TotalStudents        int `json:"totalStudents"`
	StudentsApplied      int `json:"studentsApplied"`
	StudentsInterviewing int `json:"studentsInterviewing"`
	StudentsWithOffers   int `json:"studentsWithOffers"`
}

// OfflinePlacement is a placement the university records by hand.
type OfflinePlacement struct {
	CompanyName string `json:"companyName" validate:"required"`
	Role        string `json:"role" validate:"required"`
	StudentName string `json:"studentName" validate:"required"`
	OfferType   string `json:"offerType" validate:"required"`
	CTC         string `json:"ctc"`
}

// DefaultOfferType is preselected in the offline placement dialog.
const DefaultOfferType = "full-time"

// PlacementRecorder receives offline placements. Nothing in the dashboards
// reads back what was recorded.
type PlacementRecorder interface {
	RecordPlacement(ctx context.Context, placement OfflinePlacement) error
}

// ApplicationStatus is the hiring stage of an employer-side application.
type ApplicationStatus string

const (
	ApplicationApplied       ApplicationStatus = "applied"
	ApplicationShortlisted   ApplicationStatus = "shortlisted"
	ApplicationInterviewing  ApplicationStatus = "interviewing"
	ApplicationOnHold        ApplicationStatus = "on_hold"
	ApplicationOfferReleased ApplicationStatus = "offer_released"
	ApplicationRejected      ApplicationStatus = "rejected"
)

// ApplicationAction is what an employer can do with an application.
type ApplicationAction string

const (
	ActionShortlist ApplicationAction = "shortlist"
	ActionReject    ApplicationAction = "reject"
	ActionInterview ApplicationAction = "interview"
)

// Valid reports whether a is a known action.
func (a ApplicationAction) Valid() bool {
	return a == ActionShortlist || a == ActionReject || a == ActionInterview
}

// OpenRole is a role the employer is hiring for.
type OpenRole struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Universities int    `json:"universities"`
	Applications int    `json:"applications"`
	Shortlisted  int    `json:"shortlisted"`
	Interviewing int    `json:"interviewing"`
	Offers       int    `json:"offers"`
}

// Application is a candidate for one of the employer's roles.
type Application struct {
	ID          string            `json:"id"`
	StudentName string            `json:"studentName"`
	College     string            `json:"college"`
	Course      string            `json:"course"`
	Year        string            `json:"year"`
	Skills      []string          `json:"skills"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate string            `json:"appliedDate"`
}

// EmployerMetrics are the headline counters of the employer overview.
type EmployerMetrics struct {
	ActiveRoles  int `json:"activeRoles"`
	Applications int `json:"applications"`
	Shortlisted  int `json:"shortlisted"`
	Interviews   int `json:"interviews"`
}

// PlacementStatus is the overall state shown on the student dashboard.
type PlacementStatus string

const (
	PlacementReady         PlacementStatus = "Ready"
	PlacementApplied       PlacementStatus = "Applied"
	PlacementInterviewing  PlacementStatus = "Interviewing"
	PlacementOfferReceived PlacementStatus = "Offer Received"
	PlacementPlaced        PlacementStatus = "Placed"
)

// StudentApplicationStatus is the stage of one of the student's own applications.
type StudentApplicationStatus string

const (
	StudentAppApplied       StudentApplicationStatus = "Applied"
	StudentAppShortlisted   StudentApplicationStatus = "Shortlisted"
	StudentAppInterviewing  StudentApplicationStatus = "Interviewing"
	StudentAppOfferReceived StudentApplicationStatus = "Offer Received"
	StudentAppRejected      StudentApplicationStatus = "Rejected"
)

// Opportunity is an opening listed for a student.
type Opportunity struct {
	ID          int    `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Eligibility string `json:"eligibility"`
	PostedDate  string `json:"postedDate"`
	Applicants  int    `json:"applicants"`
}

// StudentApplication is an application the student has sent.
type StudentApplication struct {
	ID          int                      `json:"id"`
	Company     string                   `json:"company"`
	Role        string                   `json:"role"`
	AppliedDate string                   `json:"appliedDate"`
	Status      StudentApplicationStatus `json:"status"`
	NextStep    string                   `json:"nextStep"`
}

// Interview is an upcoming interview of the student.
type Interview struct {
	ID      int    `json:"id"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Mode    string `json:"mode"`
	Round   string `json:"round"`
}

// FeedItem is an entry of the student's notification feed.
type FeedItem struct {
	Text string `json:"text"`
	Time string `json:"time"`
}
