package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary is the derived monthly aggregate for one user, unique per
// (user, year, month). It is a recomputable cache over the month's attendance
// records, never a source of truth: every write replaces the whole row.
//
// MinuteCost is a snapshot of the user's rate at calculation time. A later
// rate change does not alter a stored summary until an explicit
// recalculation.
type MonthlySummary struct {
	ID                  string
	UserID              string
	Year                int
	Month               time.Month
	WorkingDays         int
	AbsenceDays         int
	TotalWorkingMinutes int
	OvertimeMinutes     int // signed sum of per-day deviations
	TotalMinutes        int // working + overtime = literal minutes worked
	MinuteCost          decimal.Decimal
	Bonus               decimal.Decimal // admin-set, signed, survives recomputation
	TotalExtraExpenses  decimal.Decimal
	Salary              decimal.Decimal
	CalculatedAt        time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined for reports
	UserFullName *string
}
