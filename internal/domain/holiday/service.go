package holiday

import "context"

// Service defines holiday administration business logic.
type Service interface {
	// List returns all holidays ordered by date.
	List(ctx context.Context) ([]HolidayResponse, error)

	// Add registers a new holiday. Fails with ErrHolidayExists when the date
	// is already registered.
	Add(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// Remove deletes the holiday on the given date (YYYY-MM-DD).
	Remove(ctx context.Context, date string) error
}
