package domain

import "slices"

// JobType is the engagement kind of a posted job.
type JobType string

const (
	JobIntern   JobType = "intern"
	JobFullTime JobType = "fulltime"
)

// JobDraft is the job an employer posts right after signing up.
type JobDraft struct {
	Title     string   `json:"title" validate:"required"`
	Type      JobType  `json:"type" validate:"required,oneof=intern fulltime"`
	Skills    []string `json:"skills"`
	Courses   []string `json:"courses"`
	Years     []string `json:"years"`
	StartDate string   `json:"startDate"`
}

// Clone returns a copy that shares no slices with d.
func (d JobDraft) Clone() JobDraft {
	d.Skills = slices.Clone(d.Skills)
	d.Courses = slices.Clone(d.Courses)
	d.Years = slices.Clone(d.Years)
	return d
}
