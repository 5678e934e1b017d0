package dashboard

import (
	"slices"

	"github.com/nfrund/oncampus/internal/domain"
)

// UniversitySeed is the data a university dashboard starts from.
type UniversitySeed struct {
	Metrics       domain.UniversityMetrics `json:"metrics"`
	Students      []domain.Student         `json:"students"`
	Jobs          []domain.Job             `json:"jobs"`
	Activities    []domain.Activity        `json:"activities"`
	Notifications []domain.Notification    `json:"notifications"`
	Posts         []domain.CommunityPost   `json:"communityPosts"`
}

// Clone returns a deep copy.
func (s UniversitySeed) Clone() UniversitySeed {
	s.Students = slices.Clone(s.Students)
	s.Jobs = slices.Clone(s.Jobs)
	s.Activities = slices.Clone(s.Activities)
	s.Notifications = slices.Clone(s.Notifications)
	s.Posts = slices.Clone(s.Posts)
	for i := range s.Posts {
		s.Posts[i].PollOptions = slices.Clone(s.Posts[i].PollOptions)
	}
	return s
}

// EmployerSeed is the data an employer dashboard starts from.
type EmployerSeed struct {
	Metrics      domain.EmployerMetrics `json:"metrics"`
	Roles        []domain.OpenRole      `json:"roles"`
	Applications []domain.Application   `json:"applications"`
	Activities   []domain.Activity      `json:"activities"`
}

// Clone returns a deep copy.
func (s EmployerSeed) Clone() EmployerSeed {
	s.Roles = slices.Clone(s.Roles)
	s.Applications = slices.Clone(s.Applications)
	for i := range s.Applications {
		s.Applications[i].Skills = slices.Clone(s.Applications[i].Skills)
	}
	s.Activities = slices.Clone(s.Activities)
	return s
}

// StudentSeed is the data a student dashboard starts from.
type StudentSeed struct {
	PlacementStatus domain.PlacementStatus      `json:"placementStatus"`
	Opportunities   []domain.Opportunity        `json:"opportunities"`
	Applications    []domain.StudentApplication `json:"applications"`
	Interviews      []domain.Interview          `json:"interviews"`
	Feed            []domain.FeedItem           `json:"feed"`
}

// Clone returns a deep copy.
func (s StudentSeed) Clone() StudentSeed {
	s.Opportunities = slices.Clone(s.Opportunities)
	s.Applications = slices.Clone(s.Applications)
	s.Interviews = slices.Clone(s.Interviews)
	s.Feed = slices.Clone(s.Feed)
	return s
}

// Seeds groups the seed data of all three dashboards.
type Seeds struct {
	University UniversitySeed
	Employer   EmployerSeed
	Student    StudentSeed
}

// Clone returns a deep copy.
func (s Seeds) Clone() Seeds {
	return Seeds{
		University: s.University.Clone(),
		Employer:   s.Employer.Clone(),
		Student:    s.Student.Clone(),
	}
}

// DefaultSeeds returns the built-in demo data.
func DefaultSeeds() Seeds {
	return Seeds{
		University: defaultUniversitySeed(),
		Employer:   defaultEmployerSeed(),
		Student:    defaultStudentSeed(),
	}
}

func defaultUniversitySeed() UniversitySeed {
	return UniversitySeed{
		Metrics: domain.UniversityMetrics{
			TotalStudents:        847,
			StudentsApplied:      342,
			StudentsInterviewing: 156,
			StudentsWithOffers:   89,
		},
		Students: []domain.Student{
			{ID: "1", Name: "Priya Sharma", Course: "B.Tech CSE", Year: "2024", Status: domain.StudentOfferReceived, AppliedJobs: 12, InterviewsScheduled: 5, Offers: 2},
			{ID: "2", Name: "Rahul Verma", Course: "B.Tech ECE", Year: "2024", Status: domain.StudentInterviewing, AppliedJobs: 8, InterviewsScheduled: 3},
			{ID: "3", Name: "Ananya Roy", Course: "MBA", Year: "2025", Status: domain.StudentApplied, AppliedJobs: 5, InterviewsScheduled: 1},
			{ID: "4", Name: "Arjun Patel", Course: "B.Tech ME", Year: "2024", Status: domain.StudentPlaced, AppliedJobs: 10, InterviewsScheduled: 4, Offers: 1},
			{ID: "5", Name: "Sneha Reddy", Course: "M.Tech CS", Year: "2025", Status: domain.StudentNotApplied},
		},
		Jobs: []domain.Job{
			{ID: "1", Company: "TechCorp", Role: "Software Engineer", EligibleStudents: 234, Applications: 89, Interviewing: 23, Offers: 8},
			{ID: "2", Company: "Innovate Labs", Role: "Data Analyst", EligibleStudents: 156, Applications: 67, Interviewing: 18, Offers: 5},
			{ID: "3", Company: "CloudSys", Role: "Product Manager", EligibleStudents: 89, Applications: 34, Interviewing: 12, Offers: 3},
			{ID: "4", Company: "FinTech Solutions", Role: "Backend Developer", EligibleStudents: 198, Applications: 76, Interviewing: 21, Offers: 6},
		},
		Activities: []domain.Activity{
			{ID: "1", Type: "offer", Message: "Priya Sharma received offer from TechCorp", Timestamp: "2 hours ago"},
			{ID: "2", Type: "interview", Message: "Rahul Verma scheduled for interview at Innovate Labs", Timestamp: "4 hours ago"},
			{ID: "3", Type: "application", Message: "Ananya Roy applied to CloudSys - Product Manager", Timestamp: "6 hours ago"},
			{ID: "4", Type: "placed", Message: "Arjun Patel marked as placed at FinTech Solutions", Timestamp: "1 day ago"},
			{ID: "5", Type: "invite", Message: "25 new students joined OnCampus", Timestamp: "2 days ago"},
		},
		Notifications: []domain.Notification{
			{ID: "1", Title: "New Offer Received", Message: "Priya Sharma received offer from TechCorp", Time: "2 hours ago", Type: domain.NotificationOffer},
			{ID: "2", Title: "Interview Scheduled", Message: "5 students have interviews scheduled for tomorrow", Time: "4 hours ago", Type: domain.NotificationInterview},
			{ID: "3", Title: "New Applications", Message: "15 students applied to CloudSys positions", Time: "6 hours ago", Read: true, Type: domain.NotificationApplication},
			{ID: "4", Title: "System Update", Message: "Dashboard analytics have been updated", Time: "1 day ago", Read: true, Type: domain.NotificationSystem},
		},
		Posts: []domain.CommunityPost{
			{
				ID:        "1",
				Author:    "Dr. Rajesh Kumar",
				Type:      domain.PostMessage,
				Content:   "Great news! We've partnered with 3 new companies this month. More opportunities for our students! 🎉",
				Timestamp: "3 hours ago",
				Likes:     24,
				Comments:  8,
			},
			{
				ID:        "2",
				Author:    "Prof. Anita Desai",
				Type:      domain.PostPoll,
				Content:   "Which technical skill should we prioritize for upcoming placements?",
				Timestamp: "1 day ago",
				Likes:     15,
				Comments:  12,
				PollOptions: []domain.PollOption{
					{Option: "Full Stack Development", Votes: 45},
					{Option: "Data Science & ML", Votes: 38},
					{Option: "Cloud Computing", Votes: 28},
					{Option: "Cybersecurity", Votes: 19},
				},
			},
		},
	}
}

func defaultEmployerSeed() EmployerSeed {
	return EmployerSeed{
		Metrics: domain.EmployerMetrics{ActiveRoles: 12, Applications: 247, Shortlisted: 42, Interviews: 18},
		Roles: []domain.OpenRole{
			{ID: "1", Title: "Software Development Intern", Type: "Intern", Universities: 23, Applications: 156, Shortlisted: 28, Interviewing: 12, Offers: 4},
			{ID: "2", Title: "Data Analyst Intern", Type: "Intern", Universities: 18, Applications: 89, Shortlisted: 14, Interviewing: 6, Offers: 2},
			{ID: "3", Title: "Product Manager", Type: "Full-time", Universities: 15, Applications: 67, Shortlisted: 10, Interviewing: 4, Offers: 1},
			{ID: "4", Title: "Backend Developer", Type: "Full-time", Universities: 20, Applications: 134, Shortlisted: 22, Interviewing: 8, Offers: 3},
		},
		Applications: []domain.Application{
			{ID: "1", StudentName: "Priya Sharma", College: "IIT Delhi", Course: "B.Tech CSE", Year: "2024", Skills: []string{"React", "Node.js", "Python"}, Status: domain.ApplicationShortlisted, AppliedDate: "2 days ago"},
			{ID: "2", StudentName: "Rahul Verma", College: "BITS Pilani", Course: "B.Tech ECE", Year: "2024", Skills: []string{"Java", "Spring Boot", "MySQL"}, Status: domain.ApplicationApplied, AppliedDate: "1 day ago"},
			{ID: "3", StudentName: "Ananya Roy", College: "NIT Trichy", Course: "B.Tech IT", Year: "2025", Skills: []string{"Python", "Data Analysis", "SQL"}, Status: domain.ApplicationInterviewing, AppliedDate: "4 days ago"},
			{ID: "4", StudentName: "Arjun Patel", College: "IIT Bombay", Course: "M.Tech CS", Year: "2024", Skills: []string{"AWS", "Docker", "Kubernetes"}, Status: domain.ApplicationOfferReleased, AppliedDate: "1 week ago"},
		},
		Activities: []domain.Activity{
			{ID: "1", Type: "application", Message: "Priya Sharma applied to Software Development Intern", Timestamp: "2 hours ago"},
			{ID: "2", Type: "shortlist", Message: "You shortlisted Rahul Verma for Data Analyst role", Timestamp: "5 hours ago"},
			{ID: "3", Type: "interview", Message: "Interview scheduled with Ananya Roy", Timestamp: "1 day ago"},
			{ID: "4", Type: "offer", Message: "Offer released to Arjun Patel", Timestamp: "2 days ago"},
		},
	}
}

func defaultStudentSeed() StudentSeed {
	return StudentSeed{
		PlacementStatus: domain.PlacementInterviewing,
		Opportunities: []domain.Opportunity{
			{ID: 1, Company: "TechCorp Solutions", Role: "Software Development Intern", Location: "Bangalore", Type: "Internship", Eligibility: "Eligible", PostedDate: "2 days ago", Applicants: 45},
			{ID: 2, Company: "DataMinds Analytics", Role: "Data Analyst Intern", Location: "Mumbai", Type: "Internship", Eligibility: "Eligible", PostedDate: "5 days ago", Applicants: 32},
			{ID: 3, Company: "CloudTech Inc", Role: "Backend Developer", Location: "Remote", Type: "Full-time", Eligibility: "Eligible", PostedDate: "1 week ago", Applicants: 67},
			{ID: 4, Company: "InnovateLabs", Role: "Product Management Intern", Location: "Pune", Type: "Internship", Eligibility: "Eligible", PostedDate: "3 days ago", Applicants: 28},
		},
		Applications: []domain.StudentApplication{
			{ID: 1, Company: "TechCorp Solutions", Role: "Software Development Intern", AppliedDate: "5 days ago", Status: domain.StudentAppInterviewing, NextStep: "Technical Interview on Jan 15"},
			{ID: 2, Company: "StartupHub", Role: "Full Stack Developer", AppliedDate: "1 week ago", Status: domain.StudentAppShortlisted, NextStep: "Awaiting interview schedule"},
			{ID: 3, Company: "FinTech Pro", Role: "Software Engineer Intern", AppliedDate: "2 weeks ago", Status: domain.StudentAppApplied, NextStep: "Under review"},
		},
		Interviews: []domain.Interview{
			{ID: 1, Company: "TechCorp Solutions", Role: "Software Development Intern", Date: "Jan 15, 2026", Time: "10:00 AM", Mode: "Online", Round: "Technical Round"},
			{ID: 2, Company: "StartupHub", Role: "Full Stack Developer", Date: "Jan 18, 2026", Time: "2:00 PM", Mode: "Offline", Round: "HR Round"},
		},
		Feed: []domain.FeedItem{
			{Text: "New opportunity: Frontend Developer at WebCraft", Time: "2 hours ago"},
			{Text: "Interview scheduled with TechCorp Solutions", Time: "1 day ago"},
			{Text: "Application shortlisted for StartupHub", Time: "2 days ago"},
			{Text: "New opportunity: Data Scientist at AI Innovators", Time: "3 days ago"},
		},
	}
}
