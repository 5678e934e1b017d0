package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label turns a snake_case tag such as "offer_received" into "Offer Received".
func Label(tag string) string {
	// Casers keep state and must not be shared between goroutines.
	return cases.Title(language.English).String(strings.ReplaceAll(tag, "_", " "))
}

var employerRoleLabels = map[string]string{
	"founder":   "Founder",
	"hr":        "HR Manager",
	"recruiter": "Recruiter",
	"other":     "Other",
}

// EmployerRoleLabel returns the display name of an employer signup role.
func EmployerRoleLabel(role string) string {
	if label, ok := employerRoleLabels[role]; ok {
		return label
	}
	return Label(role)
}

// FirstName returns the first word of a full name.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
