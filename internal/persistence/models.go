package persistence

import "time"

// Activity represents an extracurricular offering stored in persistence.
type Activity struct {
	ID              string
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Participant represents a single student's enrollment in one activity.
type Participant struct {
	ID         string
	ActivityID string
	Email      string
	CreatedAt  time.Time
}

// ActivityRoster pairs an activity with the emails enrolled in it, ordered by
// enrollment time.
type ActivityRoster struct {
	Activity Activity
	Emails   []string
}
