package attendance

import (
	"time"

	"github.com/nilehr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	// Timestamp is optional; the server clock is used when absent.
	Timestamp *string `json:"timestamp"`

	// Resolved from claims / parsing, not from the request body.
	UserID string     `json:"-"`
	At     *time.Time `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != nil {
		t, ok := validator.IsValidDateTime(*r.Timestamp)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC3339",
			})
		} else {
			r.At = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	Timestamp *string `json:"timestamp"`

	UserID string     `json:"-"`
	At     *time.Time `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != nil {
		t, ok := validator.IsValidDateTime(*r.Timestamp)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC3339",
			})
		} else {
			r.At = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddExpenseRequest attaches an expense and/or comment to the caller's record
// for today.
type AddExpenseRequest struct {
	Amount  string  `json:"amount"`
	Comment *string `json:"comment"`

	UserID string `json:"-"`
}

func (r *AddExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount is required",
		})
	} else if _, ok := validator.IsValidAmount(r.Amount); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateRecordRequest lets an admin create a record for any user and date,
// e.g. to mark a vacation or backfill a missed day.
type CreateRecordRequest struct {
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	DayType      string  `json:"day_type"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if !DayType(r.DayType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "day_type",
			Message: "day_type must be one of working_day, holiday, normal_vacation, sick_leave, absence",
		})
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be HH:MM",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be HH:MM",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCheckTimesRequest fixes wrong clock times on an existing record. The
// derived fields are recomputed from the new times.
type UpdateCheckTimesRequest struct {
	ID           string  `json:"-"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
}

func (r *UpdateCheckTimesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckInTime == nil && r.CheckOutTime == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "at least one of check_in_time or check_out_time is required",
		})
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be HH:MM",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be HH:MM",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetOvertimeRequest sets or clears the admin overtime override on a record.
// A nil value clears the override and the derived overtime takes effect
// again.
type SetOvertimeRequest struct {
	ID              string `json:"-"`
	OvertimeMinutes *int   `json:"overtime_minutes"`
}

func (r *SetOvertimeRequest) Validate() error {
	// Any signed value is acceptable; the override is an explicit admin
	// adjustment, negative for penalties.
	return nil
}

// SetDayTypeRequest reclassifies a record.
type SetDayTypeRequest struct {
	ID      string `json:"-"`
	DayType string `json:"day_type"`
}

func (r *SetDayTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !DayType(r.DayType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "day_type",
			Message: "day_type must be one of working_day, holiday, normal_vacation, sick_leave, absence",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordResponse is the wire form of a record.
type RecordResponse struct {
	ID                  string  `json:"id"`
	UserID              string  `json:"user_id"`
	UserFullName        *string `json:"user_full_name,omitempty"`
	Date                string  `json:"date"`
	CheckInTime         *string `json:"check_in_time"`
	CheckOutTime        *string `json:"check_out_time"`
	TotalWorkingMinutes int     `json:"total_working_minutes"`
	OvertimeMinutes     int     `json:"overtime_minutes"`
	OvertimeOverridden  bool    `json:"overtime_overridden"`
	ExtraExpenses       string  `json:"extra_expenses"`
	Comments            *string `json:"comments,omitempty"`
	DayType             string  `json:"day_type"`
	IsLate              bool    `json:"is_late"`
}

// NewRecordResponse maps a Record to its wire form.
func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:                  rec.ID,
		UserID:              rec.UserID,
		UserFullName:        rec.UserFullName,
		Date:                rec.Date.Format("2006-01-02"),
		CheckInTime:         timeOfDayPtr(rec.CheckIn),
		CheckOutTime:        timeOfDayPtr(rec.CheckOut),
		TotalWorkingMinutes: rec.TotalWorkingMinutes,
		OvertimeMinutes:     rec.OvertimeMinutes,
		OvertimeOverridden:  rec.OvertimeOverride != nil,
		ExtraExpenses:       rec.ExtraExpenses.String(),
		Comments:            rec.Comments,
		DayType:             string(rec.DayType),
		IsLate:              rec.IsLate,
	}
}

func timeOfDayPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
