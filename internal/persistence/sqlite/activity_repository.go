package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/school-activities/internal/persistence"
)

// ActivityRepository implements persistence.ActivityRepository using SQLite.
type ActivityRepository struct {
	store *Store
}

// NewActivityRepository creates a new SQLite activity repository.
func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{store: store}
}

// CreateActivity inserts an activity and its initial roster in one
// transaction. Used only by seeding.
func (r *ActivityRepository) CreateActivity(ctx context.Context, activity persistence.Activity, roster []persistence.Participant) error {
	if activity.ID == "" || strings.TrimSpace(activity.Name) == "" {
		return persistence.ErrConstraintViolation
	}

	return r.store.WithTransaction(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO activities (id, name, description, schedule, max_participants, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`

		_, err := tx.ExecContext(ctx, query,
			activity.ID,
			activity.Name,
			nullableString(activity.Description),
			nullableString(activity.Schedule),
			activity.MaxParticipants,
			activity.CreatedAt.UTC().Format(time.RFC3339),
			activity.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return mapSQLiteError(err)
		}

		insert := `
			INSERT INTO participants (id, activity_id, email, created_at)
			VALUES (?, ?, ?, ?)
		`
		for _, participant := range roster {
			_, err := tx.ExecContext(ctx, insert,
				participant.ID,
				activity.ID,
				participant.Email,
				participant.CreatedAt.UTC().Format(time.RFC3339),
			)
			if err != nil {
				return mapSQLiteError(err)
			}
		}

		return nil
	})
}

// GetActivityByName retrieves an activity by its exact name.
func (r *ActivityRepository) GetActivityByName(ctx context.Context, name string) (persistence.Activity, error) {
	query := `
		SELECT id, name, description, schedule, max_participants, created_at, updated_at
		FROM activities
		WHERE name = ?
	`

	activity, err := scanActivity(r.store.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return persistence.Activity{}, persistence.ErrNotFound
		}
		return persistence.Activity{}, err
	}

	return activity, nil
}

// ListActivities returns all activities with their rosters. Activities are
// ordered by name and rosters by enrollment time.
func (r *ActivityRepository) ListActivities(ctx context.Context) ([]persistence.ActivityRoster, error) {
	query := `
		SELECT id, name, description, schedule, max_participants, created_at, updated_at
		FROM activities
		ORDER BY name ASC, id ASC
	`

	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer rows.Close()

	var rosters []persistence.ActivityRoster
	index := make(map[string]int)

	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		index[activity.ID] = len(rosters)
		rosters = append(rosters, persistence.ActivityRoster{Activity: activity})
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}

	participantQuery := `
		SELECT activity_id, email
		FROM participants
		ORDER BY created_at ASC, id ASC
	`

	participantRows, err := r.store.db.QueryContext(ctx, participantQuery)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer participantRows.Close()

	for participantRows.Next() {
		var activityID, email string
		if err := participantRows.Scan(&activityID, &email); err != nil {
			return nil, mapSQLiteError(err)
		}
		if i, ok := index[activityID]; ok {
			rosters[i].Emails = append(rosters[i].Emails, email)
		}
	}
	if err := participantRows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}

	return rosters, nil
}

// CountActivities returns the number of activity rows.
func (r *ActivityRepository) CountActivities(ctx context.Context) (int, error) {
	var count int
	err := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM activities").Scan(&count)
	if err != nil {
		return 0, mapSQLiteError(err)
	}
	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (persistence.Activity, error) {
	var activity persistence.Activity
	var description, schedule sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&activity.ID,
		&activity.Name,
		&description,
		&schedule,
		&activity.MaxParticipants,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.Activity{}, err
	}

	if description.Valid {
		activity.Description = description.String
	}
	if schedule.Valid {
		activity.Schedule = schedule.String
	}

	if activity.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.Activity{}, fmt.Errorf("sqlite: failed to parse created_at: %w", err)
	}
	if activity.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.Activity{}, fmt.Errorf("sqlite: failed to parse updated_at: %w", err)
	}

	return activity, nil
}

func nullableString(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

// mapSQLiteError translates driver errors into persistence sentinels.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return persistence.ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return persistence.ErrDuplicate
	}
	return err
}
