package report

import (
	"sort"
	"time"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/domain/holiday"
	"github.com/nilehr/attendance-backend-go/internal/service/calendar"
)

const (
	// From this day of the month on, the previous month drops out of the
	// dashboard window.
	windowCutoffDay = 9

	// At most this many trailing working days from the previous month.
	windowMaxDays = 5
)

// previousMonthWindow selects the previous month's trailing working-day
// records for the dashboard: the last windowMaxDays records that fall on
// calendar working days, date ascending. From windowCutoffDay onward the
// window is empty regardless of the records.
func previousMonthWindow(records []attendance.Record, rules calendar.Rules, set holiday.Set, today time.Time) []attendance.Record {
	if today.Day() >= windowCutoffDay {
		return nil
	}

	eligible := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		if rec.DayType != attendance.DayTypeWorkingDay {
			continue
		}
		if !rules.IsWorkingDay(rec.Date, set) {
			continue
		}
		eligible = append(eligible, rec)
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].Date.Before(eligible[j].Date)
	})

	if len(eligible) > windowMaxDays {
		eligible = eligible[len(eligible)-windowMaxDays:]
	}
	return eligible
}
