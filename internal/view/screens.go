package view

import (
	"fmt"
	"strings"

	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/oncampus/internal/dashboard"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/forms"
	"github.com/nfrund/oncampus/internal/landing"
)

var headlines = map[domain.Role]string{
	domain.RoleUniversity: "Run campus placements without the spreadsheets",
	domain.RoleEmployer:   "Hire from India's top campuses in one place",
	domain.RoleStudent:    "Your campus placement journey, in one place",
}

func presenter(v any) gomponents.Node {
	switch p := v.(type) {
	case *landing.Page:
		return landingPage(p)
	case *forms.SignIn:
		return signIn(p)
	case *forms.StudentSignIn:
		return studentSignIn(p)
	case *forms.UniversitySignup:
		return universitySignup(p)
	case *forms.EmployerSignup:
		return employerSignup(p)
	case *forms.StudentSignup:
		return studentSignup(p)
	case *dashboard.University:
		return universityDashboard(p)
	case *dashboard.Employer:
		return employerDashboard(p)
	case *dashboard.Student:
		return studentDashboard(p)
	default:
		return nil
	}
}

func landingPage(p *landing.Page) gomponents.Node {
	class := "landing"
	if p.Inverted() {
		class += " inverted"
	}
	features := "features"
	if p.Emphasised() {
		features += " emphasised"
	}
	return html.Section(
		html.Class(class),
		html.Style("background-color: "+p.Background()),
		hx.Post("/api/session/landing/progress"),
		gomponents.Attr("hx-trigger", "scroll from:window throttle:200ms"),
		gomponents.Attr("hx-vals", "js:{progress: window.scrollY / Math.max(1, document.body.scrollHeight - window.innerHeight)}"),
		hx.Target("#"+ScreenID),
		hx.Swap("outerHTML"),
		html.H1(gomponents.Text(headlines[p.Role()])),
		html.Div(html.Class(features)),
	)
}

func signIn(f *forms.SignIn) gomponents.Node {
	v := f.Values()
	return html.Form(
		html.H2(gomponents.Text("University sign in")),
		field("Email", "email", "email", v.Email),
		field("Password", "password", "password", ""),
		submit("/api/university/signin", "Sign in"),
	)
}

func studentSignIn(f *forms.StudentSignIn) gomponents.Node {
	v := f.Values()
	return html.Form(
		html.H2(gomponents.Text("Student sign in")),
		field("Email", "email", "email", v.Email),
		field("Password", "password", "password", ""),
		field("College", "college", "text", v.College),
		submit("/api/student/signin", "Sign in"),
	)
}

func universitySignup(f *forms.UniversitySignup) gomponents.Node {
	if f.Step() == forms.StepInvite {
		return html.Section(
			html.H2(gomponents.Text("Invite your students")),
			html.P(html.Class("invite-link"), gomponents.Text(f.InviteLink())),
			html.P(
				html.ID("students-joined"),
				gomponents.Textf("%d students joined", f.StudentsJoined()),
			),
			html.Button(html.Type("button"), hx.Post("/api/university/signup/back"), hx.Target("#"+ScreenID), hx.Swap("outerHTML"), gomponents.Text("Back")),
			html.Button(html.Type("button"), hx.Post("/api/university/signup/complete"), hx.Target("#"+ScreenID), hx.Swap("outerHTML"), gomponents.Text("Go to dashboard")),
		)
	}
	v := f.Values()
	return html.Form(
		html.H2(gomponents.Text("Set up your placement cell")),
		field("Full name", "name", "text", v.Name),
		field("Email", "email", "email", v.Email),
		field("University", "universityName", "text", v.UniversityName),
		field("Designation", "designation", "text", v.Designation),
		submit("/api/university/signup", "Continue"),
	)
}

func employerSignup(f *forms.EmployerSignup) gomponents.Node {
	if f.Step() == forms.StepPostJob {
		job := f.Job()
		return html.Form(
			html.H2(gomponents.Text("Post your first job")),
			html.P(html.ID("students-reached"), gomponents.Textf("Reaching %d students", f.StudentsReached())),
			field("Job title", "title", "text", job.Title),
			field("Start date", "startDate", "date", job.StartDate),
			html.P(gomponents.Text("Skills: "+strings.Join(job.Skills, ", "))),
			submit("/api/employer/job", "Post job"),
			html.Button(html.Type("button"), hx.Post("/api/employer/job/skip"), hx.Target("#"+ScreenID), hx.Swap("outerHTML"), gomponents.Text("Skip for now")),
		)
	}
	v := f.Values()
	return html.Form(
		html.H2(gomponents.Text("Create your employer account")),
		field("Company", "companyName", "text", v.CompanyName),
		field("Work email", "email", "email", v.Email),
		field("Your role", "role", "text", v.Role),
		submit("/api/employer/signup", "Continue"),
	)
}

func studentSignup(f *forms.StudentSignup) gomponents.Node {
	v := f.Values()
	var step gomponents.Node
	switch f.Step() {
	case 1:
		step = gomponents.Group{
			field("Full name", "name", "text", v.Name),
			field("Email", "email", "email", v.Email),
			field("Password", "password", "password", ""),
		}
	case 2:
		step = gomponents.Group{
			field("College", "college", "text", v.College),
			field("Course", "course", "text", v.Course),
			field("Year", "year", "text", v.Year),
		}
	default:
		step = gomponents.Group{
			html.Ul(html.Class("skills"), gomponents.Map(domain.PopularSkills, func(skill string) gomponents.Node {
				class := "skill"
				if f.HasSkill(skill) {
					class += " selected"
				}
				return html.Li(html.Class(class), html.Label(
					html.Input(
						html.Type("checkbox"),
						html.Name("skills"),
						html.Value(skill),
						gomponents.If(f.HasSkill(skill), html.Checked()),
						hx.Post("/api/student/signup/save"),
						gomponents.Attr("hx-trigger", "change"),
						hx.Target("#"+ScreenID),
						hx.Swap("outerHTML"),
					),
					gomponents.Text(skill),
				))
			})),
			html.P(gomponents.Textf("Pick at least %d", f.MinSkills())),
		}
	}
	action, label := "/api/student/signup/next", "Next"
	if f.Step() == forms.StudentSignupSteps {
		action, label = "/api/student/signup", "Create account"
	}
	var back gomponents.Node
	if f.Step() > 1 {
		back = html.Button(html.Type("button"), hx.Post("/api/student/signup/back"), hx.Target("#"+ScreenID), hx.Swap("outerHTML"), gomponents.Text("Back"))
	}
	next := submit(action, label)
	if f.Step() == forms.StudentSignupSteps && !f.StepValid() {
		next = html.Button(html.Type("submit"), html.Disabled(), gomponents.Text(label))
	}
	return html.Form(
		html.H2(gomponents.Textf("Step %d of %d", f.Step(), forms.StudentSignupSteps)),
		step,
		back,
		next,
	)
}

func universityDashboard(d *dashboard.University) gomponents.Node {
	m := d.Metrics()
	return html.Section(
		html.Class("dashboard university"),
		html.H1(gomponents.Text(d.Profile().UniversityName)),
		html.P(html.Class("unread"), gomponents.Textf("%d unread notifications", d.UnreadCount())),
		html.Div(html.Class("metrics"),
			metric("Students", m.TotalStudents),
			metric("Applied", m.StudentsApplied),
			metric("Interviewing", m.StudentsInterviewing),
			metric("With offers", m.StudentsWithOffers),
		),
		html.Ul(html.Class("students"), gomponents.Map(d.Students(), func(s domain.Student) gomponents.Node {
			return html.Li(gomponents.Text(s.Name+" · "+domain.Label(string(s.Status))))
		})),
		html.Ul(html.Class("posts"), gomponents.Map(d.Posts(), func(p domain.CommunityPost) gomponents.Node {
			return html.Li(html.Strong(gomponents.Text(p.Author)), gomponents.Text(" "+p.Content))
		})),
	)
}

func employerDashboard(d *dashboard.Employer) gomponents.Node {
	m := d.Metrics()
	return html.Section(
		html.Class("dashboard employer"),
		html.H1(gomponents.Text(d.Profile().CompanyName)),
		html.Div(html.Class("metrics"),
			metric("Active roles", m.ActiveRoles),
			metric("Applications", m.Applications),
			metric("Shortlisted", m.Shortlisted),
			metric("Interviews", m.Interviews),
		),
		html.Ul(html.Class("roles"), gomponents.Map(d.Roles(), func(r domain.OpenRole) gomponents.Node {
			return html.Li(gomponents.Text(fmt.Sprintf("%s (%s)", r.Title, r.Type)))
		})),
		html.Ul(html.Class("applications"), gomponents.Map(d.Applications(), func(a domain.Application) gomponents.Node {
			return html.Li(gomponents.Text(a.StudentName + " · " + domain.Label(string(a.Status))))
		})),
	)
}

func studentDashboard(d *dashboard.Student) gomponents.Node {
	return html.Section(
		html.Class("dashboard student"),
		html.H1(gomponents.Text(d.Greeting())),
		html.P(html.Class("placement-status"), gomponents.Text(string(d.PlacementStatus()))),
		html.Ul(html.Class("opportunities"), gomponents.Map(d.Opportunities(), func(o domain.Opportunity) gomponents.Node {
			return html.Li(gomponents.Text(o.Company + " · " + o.Role))
		})),
	)
}
