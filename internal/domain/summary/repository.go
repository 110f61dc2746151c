package summary

import (
	"context"
	"time"
)

// Repository defines data access for monthly summaries. Upsert must be
// atomic per row; a unique constraint on (user_id, year, month) backs it.
type Repository interface {
	// Upsert inserts or replaces the summary for its (user, year, month)
	// key and returns the stored row.
	Upsert(ctx context.Context, s MonthlySummary) (MonthlySummary, error)

	// Get retrieves the stored summary for a user's month. Returns
	// ErrSummaryNotFound when none exists.
	Get(ctx context.Context, userID string, year int, month time.Month) (MonthlySummary, error)

	// ListForUser retrieves all summaries for a user ordered by year, month.
	ListForUser(ctx context.Context, userID string) ([]MonthlySummary, error)
}
