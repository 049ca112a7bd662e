package persistence

import "context"

// ActivityRepository exposes read and seed operations for activities.
// Activities are created only during seeding; no update or delete operation
// is exposed.
type ActivityRepository interface {
	// CreateActivity inserts an activity together with its initial roster in
	// a single transaction.
	CreateActivity(ctx context.Context, activity Activity, roster []Participant) error
	GetActivityByName(ctx context.Context, name string) (Activity, error)
	ListActivities(ctx context.Context) ([]ActivityRoster, error)
	CountActivities(ctx context.Context) (int, error)
}

// ParticipantRepository exposes roster mutations and membership queries.
type ParticipantRepository interface {
	HasParticipant(ctx context.Context, activityID, email string) (bool, error)
	CountParticipants(ctx context.Context, activityID string) (int, error)
	AddParticipant(ctx context.Context, participant Participant) error
	RemoveParticipant(ctx context.Context, activityID, email string) error
}
