package user

import (
	"github.com/nilehr/attendance-backend-go/internal/pkg/validator"
)

// SetMinuteCostRequest updates a user's per-minute rate. Stored summaries
// keep their snapshotted rate until explicitly recalculated.
type SetMinuteCostRequest struct {
	UserID     string `json:"-"`
	MinuteCost string `json:"minute_cost"`
}

func (r *SetMinuteCostRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidAmount(r.MinuteCost); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "minute_cost",
			Message: "minute_cost must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetVacationAllowanceRequest struct {
	UserID       string `json:"-"`
	VacationDays int    `json:"vacation_days"`
}

func (r *SetVacationAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.VacationDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_days",
			Message: "vacation_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID                  string `json:"id"`
	Username            string `json:"username"`
	FullName            string `json:"full_name"`
	Role                string `json:"role"`
	MinuteCost          string `json:"minute_cost"`
	VacationDaysAllowed int    `json:"vacation_days_allowed"`
	JoinDate            string `json:"join_date"`
	IsActive            bool   `json:"is_active"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		FullName:            u.FullName,
		Role:                string(u.Role),
		MinuteCost:          u.MinuteCost.String(),
		VacationDaysAllowed: u.VacationDaysAllowed,
		JoinDate:            u.JoinDate.Format("2006-01-02"),
		IsActive:            u.IsActive,
	}
}
