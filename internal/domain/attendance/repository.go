package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. The store enforces
// uniqueness on (user_id, date) so a lost check-in race surfaces as
// ErrDuplicateRecord instead of a silent double row.
type Repository interface {
	// Create inserts a new record. Returns ErrDuplicateRecord when a record
	// already exists for that user and date.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record by its ID.
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByUserAndDate retrieves the record for a user on a specific date.
	// Returns nil when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)

	// ListForMonth retrieves all of a user's records within a month, date
	// ascending.
	ListForMonth(ctx context.Context, userID string, year int, month time.Month) ([]Record, error)

	// ListWorkingForMonth retrieves a user's working_day-typed records within
	// a month, used by the display-window selection.
	ListWorkingForMonth(ctx context.Context, userID string, year int, month time.Month) ([]Record, error)

	// Update overwrites an existing record.
	Update(ctx context.Context, record Record) error

	// Delete removes a record permanently. Admin-only path; the caller is
	// responsible for triggering summary recalculation.
	Delete(ctx context.Context, id string) error
}
