// Package events declares the topics published on the bus and the payloads they carry.
package events

import (
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/pubsub"
)

// ScreenChanged is published whenever a session moves to another screen.
type ScreenChanged struct {
	From    domain.Screen `json:"from"`
	To      domain.Screen `json:"to"`
	Trigger string        `json:"trigger"`
}

// DemoRequested is published by the book-demo and request-demo triggers.
type DemoRequested struct {
	Role   domain.Role   `json:"role"`
	Screen domain.Screen `json:"screen"`
	Notice string        `json:"notice"`
}

// JobPosted carries the job submitted at the end of the employer signup.
type JobPosted struct {
	CompanyName string          `json:"companyName"`
	Job         domain.JobDraft `json:"job"`
}

// PlacementRecorded carries an offline placement entered by a university.
type PlacementRecorded struct {
	University string                  `json:"university"`
	Placement  domain.OfflinePlacement `json:"placement"`
}

// ApplicationActed is published when an employer acts on an application.
type ApplicationActed struct {
	ApplicationID string                   `json:"applicationId"`
	StudentName   string                   `json:"studentName"`
	Action        domain.ApplicationAction `json:"action"`
}

// StudentsJoined is published on every tick of the simulated invite counter.
type StudentsJoined struct {
	Flow  string `json:"flow"`
	Count int    `json:"count"`
	Cap   int    `json:"cap"`
}

var (
	TopicScreenChanged = pubsub.NewEvent[ScreenChanged](
		"session.screen.changed",
		"A session switched to another screen",
	)
	TopicDemoRequested = pubsub.NewEvent[DemoRequested](
		"session.demo.requested",
		"A visitor asked for a product demo",
	)
	TopicJobPosted = pubsub.NewEvent[JobPosted](
		"employer.job.posted",
		"An employer posted a job during signup",
	)
	TopicPlacementRecorded = pubsub.NewEvent[PlacementRecorded](
		"university.placement.recorded",
		"A university recorded an offline placement",
	)
	TopicApplicationActed = pubsub.NewEvent[ApplicationActed](
		"employer.application.acted",
		"An employer shortlisted, rejected or invited an applicant",
	)
	TopicStudentsJoined = pubsub.NewEvent[StudentsJoined](
		"invite.students.joined",
		"The simulated invite counter advanced",
	)
)

// AllTopics lists every topic name declared by this package.
func AllTopics() []string {
	return []string{
		TopicScreenChanged.Name(),
		TopicDemoRequested.Name(),
		TopicJobPosted.Name(),
		TopicPlacementRecorded.Name(),
		TopicApplicationActed.Name(),
		TopicStudentsJoined.Name(),
	}
}
