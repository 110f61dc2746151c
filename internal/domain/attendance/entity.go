package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayType classifies how a record contributes to monthly totals.
type DayType string

const (
	DayTypeWorkingDay     DayType = "working_day"
	DayTypeHoliday        DayType = "holiday"
	DayTypeNormalVacation DayType = "normal_vacation"
	DayTypeSickLeave      DayType = "sick_leave"
	DayTypeAbsence        DayType = "absence"
)

// ValidDayTypes lists every accepted day type value.
var ValidDayTypes = []DayType{
	DayTypeWorkingDay,
	DayTypeHoliday,
	DayTypeNormalVacation,
	DayTypeSickLeave,
	DayTypeAbsence,
}

// IsValid reports whether t is one of the known day types.
func (t DayType) IsValid() bool {
	for _, v := range ValidDayTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Record is one attendance row, unique per (user, date).
//
// TotalWorkingMinutes, OvertimeMinutes and IsLate are derived from the check
// times and day type and are recomputed on every mutation. The one exception
// is an admin overtime override: when OvertimeOverride is set it replaces the
// derived overtime for this record and is kept across recomputations until
// the admin clears it.
type Record struct {
	ID                  string
	UserID              string
	Date                time.Time // day precision, time part zero
	CheckIn             *time.Time
	CheckOut            *time.Time
	TotalWorkingMinutes int
	OvertimeMinutes     int // signed: negative means under-worked
	OvertimeOverride    *int
	ExtraExpenses       decimal.Decimal
	Comments            *string
	DayType             DayType
	IsLate              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined for admin listings
	UserFullName *string
}

// IsOpen reports whether the record is a working day with a check-in but no
// check-out yet. Open records are excluded from monthly totals.
func (r Record) IsOpen() bool {
	return r.DayType == DayTypeWorkingDay && r.CheckIn != nil && r.CheckOut == nil
}

// SameDay reports whether the record belongs to the calendar day of t.
func (r Record) SameDay(t time.Time) bool {
	ry, rm, rd := r.Date.Date()
	ty, tm, td := t.Date()
	return ry == ty && rm == tm && rd == td
}
