package app

import (
	"github.com/nfrund/oncampus/internal/module"
	"github.com/nfrund/oncampus/internal/modules/activity"
	"github.com/nfrund/oncampus/internal/modules/employer"
	"github.com/nfrund/oncampus/internal/modules/student"
	"github.com/nfrund/oncampus/internal/modules/university"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		// Add new application modules here.
		university.New(university.Dependencies{Logger: deps.Logger}),
		employer.New(employer.Dependencies{Logger: deps.Logger}),
		student.New(student.Dependencies{Logger: deps.Logger}),
		activity.New(activity.Dependencies{Size: deps.EventBuffer, Logger: deps.Logger}),
	}
}
