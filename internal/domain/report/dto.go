package report

import (
	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
)

// DisplayWindowResponse carries the dashboard listing: the current month's
// records plus, during the first eight days of a month, the previous month's
// trailing working days. Everything is date ascending.
type DisplayWindowResponse struct {
	Records               []attendance.RecordResponse `json:"records"`
	IncludesPreviousMonth bool                        `json:"includes_previous_month"`
}

// MonthlyReportResponse is the full monthly report: the derived summary plus
// the records behind it and the calendar's expected working-day count.
type MonthlyReportResponse struct {
	Summary             summary.MonthlySummaryResponse `json:"summary"`
	ExpectedWorkingDays int                            `json:"expected_working_days"`
	Records             []attendance.RecordResponse    `json:"records"`
}

// CumulativeStats accumulates totals across all of a user's summaries.
type CumulativeStats struct {
	TotalWorkingDays     int    `json:"total_working_days"`
	TotalAbsenceDays     int    `json:"total_absence_days"`
	TotalWorkingMinutes  int    `json:"total_working_minutes"`
	TotalOvertimeMinutes int    `json:"total_overtime_minutes"`
	TotalBonus           string `json:"total_bonus"`
	TotalSalary          string `json:"total_salary"`
}

// FullReportResponse is the employment history report since join date.
type FullReportResponse struct {
	UserID              string                           `json:"user_id"`
	FullName            string                           `json:"full_name"`
	JoinDate            string                           `json:"join_date"`
	MinuteCost          string                           `json:"minute_cost"`
	VacationDaysAllowed int                              `json:"vacation_days_allowed"`
	Summaries           []summary.MonthlySummaryResponse `json:"monthly_summaries"`
	Cumulative          CumulativeStats                  `json:"cumulative_stats"`
}
