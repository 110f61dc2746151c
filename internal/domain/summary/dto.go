package summary

import (
	"github.com/nilehr/attendance-backend-go/internal/pkg/validator"
)

// SetBonusRequest sets the admin bonus for one user's month. The salary is
// recomputed with the new bonus in the same operation.
type SetBonusRequest struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Bonus  string `json:"bonus"`
}

func (r *SetBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if _, ok := validator.IsValidSignedAmount(r.Bonus); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus",
			Message: "bonus must be a decimal amount",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlySummaryResponse is the wire form of a summary.
type MonthlySummaryResponse struct {
	UserID              string  `json:"user_id"`
	UserFullName        *string `json:"user_full_name,omitempty"`
	Year                int     `json:"year"`
	Month               int     `json:"month"`
	MonthName           string  `json:"month_name"`
	WorkingDays         int     `json:"working_days"`
	AbsenceDays         int     `json:"absence_days"`
	TotalWorkingMinutes int     `json:"total_working_minutes"`
	OvertimeMinutes     int     `json:"overtime_minutes"`
	TotalMinutes        int     `json:"total_minutes"`
	MinuteCost          string  `json:"minute_cost"`
	Bonus               string  `json:"bonus"`
	TotalExtraExpenses  string  `json:"total_extra_expenses"`
	Salary              string  `json:"salary"`
	CalculatedAt        string  `json:"calculated_at"`
}

// NewMonthlySummaryResponse maps a MonthlySummary to its wire form.
func NewMonthlySummaryResponse(s MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		UserID:              s.UserID,
		UserFullName:        s.UserFullName,
		Year:                s.Year,
		Month:               int(s.Month),
		MonthName:           s.Month.String(),
		WorkingDays:         s.WorkingDays,
		AbsenceDays:         s.AbsenceDays,
		TotalWorkingMinutes: s.TotalWorkingMinutes,
		OvertimeMinutes:     s.OvertimeMinutes,
		TotalMinutes:        s.TotalMinutes,
		MinuteCost:          s.MinuteCost.String(),
		Bonus:               s.Bonus.String(),
		TotalExtraExpenses:  s.TotalExtraExpenses.String(),
		Salary:              s.Salary.String(),
		CalculatedAt:        s.CalculatedAt.Format("2006-01-02 15:04:05"),
	}
}
