package summary

import (
	"context"
	"time"
)

// Service defines business logic for monthly summaries. Recomputation for a
// given (user, year, month) is serialized: one writer at a time reads the
// month's records, recomputes and upserts.
type Service interface {
	// Get returns the stored summary, computing and storing it first when
	// absent.
	Get(ctx context.Context, userID string, year int, month time.Month) (MonthlySummaryResponse, error)

	// Recalculate recomputes the summary from the underlying records and
	// replaces the stored row. The admin-set bonus is preserved.
	Recalculate(ctx context.Context, userID string, year int, month time.Month) (MonthlySummaryResponse, error)

	// SetBonus stores a new admin bonus for the month and recomputes the
	// salary with it.
	SetBonus(ctx context.Context, req SetBonusRequest) (MonthlySummaryResponse, error)
}
