// Package calendar answers "is this date a working day" for the rest of the
// engine. Everything here is a pure function of (date, holiday set); the
// holiday set is fetched once by the caller and passed in.
package calendar

import (
	"time"

	"github.com/nilehr/attendance-backend-go/internal/domain/holiday"
)

// Rules holds the single configurable piece of the calendar: the weekly rest
// day (Friday in the default deployment).
type Rules struct {
	restDay time.Weekday
}

func NewRules(restDay time.Weekday) Rules {
	return Rules{restDay: restDay}
}

// IsWeeklyRestDay reports whether date falls on the designated rest day.
func (r Rules) IsWeeklyRestDay(date time.Time) bool {
	return date.Weekday() == r.restDay
}

// IsHoliday reports whether date is in the holiday set.
func (r Rules) IsHoliday(date time.Time, set holiday.Set) bool {
	return set.Contains(date)
}

// IsWorkingDay reports whether date is neither the weekly rest day nor a
// holiday.
func (r Rules) IsWorkingDay(date time.Time, set holiday.Set) bool {
	return !r.IsWeeklyRestDay(date) && !r.IsHoliday(date, set)
}

// WorkingDaysInMonth counts the calendar working days in a month. This is the
// "expected" count used by reports; it is independent of any attendance
// records.
func (r Rules) WorkingDaysInMonth(year int, month time.Month, set holiday.Set) int {
	count := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if r.IsWorkingDay(d, set) {
			count++
		}
	}
	return count
}
