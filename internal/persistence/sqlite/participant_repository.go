package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/school-activities/internal/persistence"
)

// ParticipantRepository implements persistence.ParticipantRepository using
// SQLite.
type ParticipantRepository struct {
	store *Store
}

// NewParticipantRepository creates a new SQLite participant repository.
func NewParticipantRepository(store *Store) *ParticipantRepository {
	return &ParticipantRepository{store: store}
}

// HasParticipant reports whether the email is already enrolled in the
// activity.
func (r *ParticipantRepository) HasParticipant(ctx context.Context, activityID, email string) (bool, error) {
	query := `
		SELECT 1
		FROM participants
		WHERE activity_id = ? AND email = ?
		LIMIT 1
	`

	var one int
	err := r.store.db.QueryRowContext(ctx, query, activityID, email).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, mapSQLiteError(err)
	}

	return true, nil
}

// CountParticipants returns the current roster size for the activity.
func (r *ParticipantRepository) CountParticipants(ctx context.Context, activityID string) (int, error) {
	var count int
	err := r.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM participants WHERE activity_id = ?", activityID,
	).Scan(&count)
	if err != nil {
		return 0, mapSQLiteError(err)
	}
	return count, nil
}

// AddParticipant inserts a new enrollment row. Returns
// persistence.ErrDuplicate when the email is already on the activity's
// roster.
func (r *ParticipantRepository) AddParticipant(ctx context.Context, participant persistence.Participant) error {
	if participant.ID == "" || participant.ActivityID == "" || participant.Email == "" {
		return persistence.ErrConstraintViolation
	}

	return r.store.WithTransaction(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO participants (id, activity_id, email, created_at)
			VALUES (?, ?, ?, ?)
		`

		_, err := tx.ExecContext(ctx, query,
			participant.ID,
			participant.ActivityID,
			participant.Email,
			participant.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return mapSQLiteError(err)
		}

		return nil
	})
}

// RemoveParticipant deletes the enrollment row for the email within the
// activity. Returns persistence.ErrNotFound when no such row exists.
func (r *ParticipantRepository) RemoveParticipant(ctx context.Context, activityID, email string) error {
	return r.store.WithTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"DELETE FROM participants WHERE activity_id = ? AND email = ?",
			activityID, email,
		)
		if err != nil {
			return mapSQLiteError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("sqlite: failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return persistence.ErrNotFound
		}

		return nil
	})
}
