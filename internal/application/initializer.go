package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/school-activities/internal/catalog"
	"github.com/example/school-activities/internal/persistence"
)

// SchemaManager creates the persistence schema when it does not exist yet.
type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
}

// Initializer seeds an empty store from the activity catalog.
type Initializer struct {
	schema      SchemaManager
	activities  persistence.ActivityRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewInitializer constructs an initializer with the provided dependencies.
func NewInitializer(schema SchemaManager, activities persistence.ActivityRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *Initializer {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &Initializer{
		schema:      schema,
		activities:  activities,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// Initialize ensures the schema exists and seeds the store from the catalog
// when no activity rows exist yet. Calling it against a populated store is a
// no-op, so running it on every startup is safe.
func (i *Initializer) Initialize(ctx context.Context, cat catalog.Catalog) error {
	logger := serviceLogger(ctx, i.logger, "Initializer", "Initialize")

	if err := i.schema.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	count, err := i.activities.CountActivities(ctx)
	if err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}
	if count > 0 {
		logger.InfoContext(ctx, "store already seeded", "activities", count)
		return nil
	}

	for _, name := range cat.Names() {
		entry := cat[name]
		now := i.now().UTC()

		activity := persistence.Activity{
			ID:              i.idGenerator(),
			Name:            name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		roster := make([]persistence.Participant, 0, len(entry.Participants))
		for _, email := range entry.Participants {
			roster = append(roster, persistence.Participant{
				ID:         i.idGenerator(),
				ActivityID: activity.ID,
				Email:      email,
				CreatedAt:  now,
			})
		}

		if err := i.activities.CreateActivity(ctx, activity, roster); err != nil {
			return fmt.Errorf("failed to seed activity %s: %w", name, err)
		}
	}

	logger.InfoContext(ctx, "store seeded from catalog", "activities", len(cat))
	return nil
}
