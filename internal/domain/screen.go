package domain

import "fmt"

// Screen identifies the single top-level presenter that is currently shown.
type Screen string

const (
	ScreenLanding           Screen = "landing"
	ScreenSignup            Screen = "signup"
	ScreenSignIn            Screen = "signin"
	ScreenDashboard         Screen = "dashboard"
	ScreenEmployerLanding   Screen = "employer_landing"
	ScreenEmployerSignup    Screen = "employer_signup"
	ScreenEmployerDashboard Screen = "employer_dashboard"
	ScreenStudentLanding    Screen = "student_landing"
	ScreenStudentSignIn     Screen = "student_signin"
	ScreenStudentSignup     Screen = "student_signup"
	ScreenStudentDashboard  Screen = "student_dashboard"
)

// Role is one of the three sides of the platform.
type Role string

const (
	RoleUniversity Role = "university"
	RoleEmployer   Role = "employer"
	RoleStudent    Role = "student"
)

var allScreens = []Screen{
	ScreenLanding,
	ScreenSignup,
	ScreenSignIn,
	ScreenDashboard,
	ScreenEmployerLanding,
	ScreenEmployerSignup,
	ScreenEmployerDashboard,
	ScreenStudentLanding,
	ScreenStudentSignIn,
	ScreenStudentSignup,
	ScreenStudentDashboard,
}

// Screens returns every screen in declaration order.
func Screens() []Screen {
	out := make([]Screen, len(allScreens))
	copy(out, allScreens)
	return out
}

// ParseScreen converts a raw tag into a Screen.
func ParseScreen(raw string) (Screen, error) {
	s := Screen(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidScreen, raw)
	}
	return s, nil
}

// Valid reports whether s is one of the declared screens.
func (s Screen) Valid() bool {
	for _, known := range allScreens {
		if s == known {
			return true
		}
	}
	return false
}

// Role returns the platform side a screen belongs to.
func (s Screen) Role() Role {
	switch s {
	case ScreenEmployerLanding, ScreenEmployerSignup, ScreenEmployerDashboard:
		return RoleEmployer
	case ScreenStudentLanding, ScreenStudentSignIn, ScreenStudentSignup, ScreenStudentDashboard:
		return RoleStudent
	default:
		return RoleUniversity
	}
}

// IsDashboard reports whether s requires a stored profile to render.
func (s Screen) IsDashboard() bool {
	return s == ScreenDashboard || s == ScreenEmployerDashboard || s == ScreenStudentDashboard
}

func (s Screen) String() string {
	return string(s)
}

// SignupScreen returns the signup screen for a role.
func (r Role) SignupScreen() Screen {
	switch r {
	case RoleEmployer:
		return ScreenEmployerSignup
	case RoleStudent:
		return ScreenStudentSignup
	default:
		return ScreenSignup
	}
}
