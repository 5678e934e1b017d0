package domain

import (
	"context"
	"slices"
)

// UniversityProfile is the placement officer captured by the university signup or sign-in.
type UniversityProfile struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	UniversityName string `json:"universityName" validate:"required"`
	Designation    string `json:"designation" validate:"required"`
}

// EmployerProfile is the recruiter captured by the employer signup.
type EmployerProfile struct {
	CompanyName string `json:"companyName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Role        string `json:"role" validate:"required"`
}

// StudentProfile is the student captured by the student signup or sign-in.
type StudentProfile struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	College string   `json:"college"`
	Course  string   `json:"course"`
	Year    string   `json:"year"`
	Skills  []string `json:"skills"`
}

// HasSkill reports whether the profile lists the skill.
func (p StudentProfile) HasSkill(skill string) bool {
	return slices.Contains(p.Skills, skill)
}

// EmployerSignup is the output of the employer signup flow. JobPosted is not
// kept once the profile is stored.
type EmployerSignup struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	JobPosted   bool   `json:"jobPosted"`
}

// Profile returns the stored part of the signup.
func (s EmployerSignup) Profile() EmployerProfile {
	return EmployerProfile{CompanyName: s.CompanyName, Email: s.Email, Role: s.Role}
}

// StudentSignup is the output of the student signup flow.
type StudentSignup struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	College string   `json:"college"`
	Course  string   `json:"course"`
	Year    string   `json:"year"`
	Skills  []string `json:"skills"`
	Resume  string   `json:"resume"`
}

// Profile drops the resume and copies the skills.
func (s StudentSignup) Profile() StudentProfile {
	return StudentProfile{
		Name:    s.Name,
		Email:   s.Email,
		College: s.College,
		Course:  s.Course,
		Year:    s.Year,
		Skills:  slices.Clone(s.Skills),
	}
}

// Credentials are submitted by the university sign-in form.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// StudentCredentials are submitted by the student sign-in form.
type StudentCredentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	College  string `json:"college" validate:"required"`
}

// Authenticator turns sign-in credentials into profiles. The state machine
// depends only on this contract so a real backend can replace the mock.
type Authenticator interface {
	AuthenticateUniversity(ctx context.Context, creds Credentials) (*UniversityProfile, error)
	AuthenticateStudent(ctx context.Context, creds StudentCredentials) (*StudentProfile, error)
}
