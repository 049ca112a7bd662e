package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/school-activities/internal/persistence"
)

var (
	activityCounter    uint64
	participantCounter uint64
)

var referenceTime = time.Date(2024, time.September, 2, 15, 30, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ActivityOption configures the generated activity fixture.
type ActivityOption func(*persistence.Activity)

// NewActivityFixture returns a deterministic activity record with optional
// overrides.
func NewActivityFixture(opts ...ActivityOption) persistence.Activity {
	idx := atomic.AddUint64(&activityCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := persistence.Activity{
		ID:              fmt.Sprintf("activity-%03d", idx),
		Name:            fmt.Sprintf("Activity %03d", idx),
		Description:     fmt.Sprintf("Description for activity %03d", idx),
		Schedule:        "Mondays, 3:30 PM - 5:00 PM",
		MaxParticipants: 0,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithActivityID overrides the generated activity ID.
func WithActivityID(id string) ActivityOption {
	return func(a *persistence.Activity) {
		a.ID = id
	}
}

// WithActivityName overrides the generated activity name.
func WithActivityName(name string) ActivityOption {
	return func(a *persistence.Activity) {
		a.Name = name
	}
}

// WithMaxParticipants sets the capacity on the generated fixture.
func WithMaxParticipants(max int) ActivityOption {
	return func(a *persistence.Activity) {
		a.MaxParticipants = max
	}
}

// ParticipantOption configures the generated participant fixture.
type ParticipantOption func(*persistence.Participant)

// NewParticipantFixture returns a deterministic participant record bound to
// the given activity, with optional overrides.
func NewParticipantFixture(activityID string, opts ...ParticipantOption) persistence.Participant {
	idx := atomic.AddUint64(&participantCounter, 1)
	fixture := persistence.Participant{
		ID:         fmt.Sprintf("participant-%03d", idx),
		ActivityID: activityID,
		Email:      fmt.Sprintf("student-%03d@mergington.edu", idx),
		CreatedAt:  referenceTime.Add(time.Duration(idx) * time.Second),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithParticipantEmail overrides the generated email address.
func WithParticipantEmail(email string) ParticipantOption {
	return func(p *persistence.Participant) {
		p.Email = email
	}
}
