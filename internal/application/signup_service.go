package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/example/school-activities/internal/persistence"
)

// SignupService orchestrates validation and persistence for activity
// enrollment.
type SignupService struct {
	activities   persistence.ActivityRepository
	participants persistence.ParticipantRepository
	idGenerator  func() string
	now          func() time.Time
	logger       *slog.Logger
}

// NewSignupService constructs a signup service with the provided
// dependencies.
func NewSignupService(activities persistence.ActivityRepository, participants persistence.ParticipantRepository, idGenerator func() string, now func() time.Time) *SignupService {
	return NewSignupServiceWithLogger(activities, participants, idGenerator, now, nil)
}

// NewSignupServiceWithLogger constructs a signup service with a specified
// logger.
func NewSignupServiceWithLogger(activities persistence.ActivityRepository, participants persistence.ParticipantRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *SignupService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &SignupService{
		activities:   activities,
		participants: participants,
		idGenerator:  idGenerator,
		now:          now,
		logger:       defaultLogger(logger),
	}
}

func (s *SignupService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "SignupService", operation, attrs...)
}

// ListActivities returns every activity keyed by name, each with its roster.
func (s *SignupService) ListActivities(ctx context.Context) (map[string]ActivityDetail, error) {
	logger := s.loggerWith(ctx, "ListActivities")

	rosters, err := s.activities.ListActivities(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list activities", "error", err)
		return nil, err
	}

	result := make(map[string]ActivityDetail, len(rosters))
	for _, roster := range rosters {
		emails := roster.Emails
		if emails == nil {
			emails = []string{}
		}
		result[roster.Activity.Name] = ActivityDetail{
			Description:     roster.Activity.Description,
			Schedule:        roster.Activity.Schedule,
			MaxParticipants: roster.Activity.MaxParticipants,
			Participants:    emails,
		}
	}

	return result, nil
}

// SignUp enrolls the email in the named activity. Checks run in a fixed
// order so the caller-visible error is stable: activity existence, then
// duplicate enrollment, then capacity. Activity names match exactly, with
// no normalization.
func (s *SignupService) SignUp(ctx context.Context, activityName, email string) (confirmation Confirmation, err error) {
	email = strings.TrimSpace(email)

	logger := s.loggerWith(ctx, "SignUp", "activity", activityName, "email", email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "signup failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "student signed up")
	}()

	if vErr := validateEnrollmentInput(activityName, email); vErr.HasErrors() {
		err = vErr
		return
	}

	activity, err := s.activities.GetActivityByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		return
	}

	enrolled, err := s.participants.HasParticipant(ctx, activity.ID, email)
	if err != nil {
		return
	}
	if enrolled {
		err = ErrAlreadyEnrolled
		return
	}

	if activity.MaxParticipants > 0 {
		var count int
		count, err = s.participants.CountParticipants(ctx, activity.ID)
		if err != nil {
			return
		}
		if count >= activity.MaxParticipants {
			err = ErrActivityFull
			return
		}
	}

	participant := persistence.Participant{
		ID:         s.idGenerator(),
		ActivityID: activity.ID,
		Email:      email,
		CreatedAt:  s.now().UTC(),
	}

	if err = s.participants.AddParticipant(ctx, participant); err != nil {
		// The roster index catches a signup that raced past the
		// query-then-insert check.
		if errors.Is(err, persistence.ErrDuplicate) {
			err = ErrAlreadyEnrolled
		}
		return
	}

	confirmation = Confirmation{Email: email, ActivityName: activity.Name}
	return
}

// Unregister removes the email from the named activity's roster. Activity
// names match exactly, with no normalization.
func (s *SignupService) Unregister(ctx context.Context, activityName, email string) (confirmation Confirmation, err error) {
	email = strings.TrimSpace(email)

	logger := s.loggerWith(ctx, "Unregister", "activity", activityName, "email", email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "unregister failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "student unregistered")
	}()

	if vErr := validateEnrollmentInput(activityName, email); vErr.HasErrors() {
		err = vErr
		return
	}

	activity, err := s.activities.GetActivityByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		return
	}

	if err = s.participants.RemoveParticipant(ctx, activity.ID, email); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotEnrolled
		}
		return
	}

	confirmation = Confirmation{Email: email, ActivityName: activity.Name}
	return
}

func validateEnrollmentInput(activityName, email string) *ValidationError {
	vErr := &ValidationError{}
	if activityName == "" {
		vErr.add("activity", "activity name is required")
	}
	if email == "" {
		vErr.add("email", "email is required")
	}
	return vErr
}
