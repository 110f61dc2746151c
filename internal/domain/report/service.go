package report

import (
	"context"
	"time"
)

// Service defines report generation over attendance data. Reports read the
// stored summaries; they do not hold locks beyond what the summary service
// takes when a missing summary has to be computed.
type Service interface {
	// DisplayWindow returns the dashboard records for "today": the current
	// month plus the previous month's trailing working days while today's
	// day-of-month is 8 or less.
	DisplayWindow(ctx context.Context, userID string, today time.Time) (DisplayWindowResponse, error)

	// MonthlyReport builds the monthly report for one user.
	MonthlyReport(ctx context.Context, userID string, year int, month time.Month) (MonthlyReportResponse, error)

	// FullReport builds the employment history report for one user.
	FullReport(ctx context.Context, userID string) (FullReportResponse, error)

	// AllUsersMonthlyReport builds the monthly report for every active user.
	AllUsersMonthlyReport(ctx context.Context, year int, month time.Month) ([]MonthlyReportResponse, error)
}
