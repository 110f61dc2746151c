package holiday

import (
	"context"
	"time"
)

// Repository defines data access for the holiday set. The engine reads it;
// only admins mutate it.
type Repository interface {
	// List retrieves all holidays ordered by date.
	List(ctx context.Context) ([]Holiday, error)

	// Create inserts a holiday. Returns ErrHolidayExists when the date is
	// already registered.
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// DeleteByDate removes the holiday on the given date.
	DeleteByDate(ctx context.Context, date time.Time) error
}
