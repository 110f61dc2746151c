package attendance

import (
	"time"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
)

// DayEvaluation is the derived view of one record: what it contributes to
// the monthly totals.
type DayEvaluation struct {
	WorkingMinutes  int
	OvertimeMinutes int // signed; already replaced by the admin override when one is set
	IsLate          bool
	CountsAsWorking bool // adds to working_days
	CountsAsAbsence bool // adds to absence_days
	Open            bool // working day with check-in but no check-out yet
}

// EvaluateDay derives the per-day fields for one record under the given
// policy. It has no side effects; callers persist the result.
//
// Holiday records contribute nothing. Vacation and sick leave count as
// present with zero minutes unless an admin override supplies explicit
// overtime. Absence counts as absent. A working day needs both check times;
// until check-out arrives the record is open and excluded from totals.
func EvaluateDay(rec attendance.Record, pol attendance.Policy) (DayEvaluation, error) {
	switch rec.DayType {
	case attendance.DayTypeHoliday:
		return DayEvaluation{}, nil

	case attendance.DayTypeNormalVacation, attendance.DayTypeSickLeave:
		eval := DayEvaluation{CountsAsWorking: true}
		if rec.OvertimeOverride != nil {
			eval.OvertimeMinutes = *rec.OvertimeOverride
		}
		return eval, nil

	case attendance.DayTypeAbsence:
		return DayEvaluation{CountsAsAbsence: true}, nil

	case attendance.DayTypeWorkingDay:
		return evaluateWorkingDay(rec, pol)

	default:
		return DayEvaluation{}, attendance.ErrInvalidDayType
	}
}

func evaluateWorkingDay(rec attendance.Record, pol attendance.Policy) (DayEvaluation, error) {
	if rec.CheckIn == nil {
		return DayEvaluation{}, attendance.ErrMissingCheckTimes
	}

	if rec.IsOpen() {
		// Open record: late status is already known, minutes are not.
		return DayEvaluation{
			IsLate: isLate(minuteOfDay(*rec.CheckIn), pol),
			Open:   true,
		}, nil
	}

	if rec.CheckOut.Before(*rec.CheckIn) {
		return DayEvaluation{}, attendance.ErrCheckOutBeforeCheckIn
	}

	// Whole minutes, floored. The duration is non-negative here so integer
	// division floors correctly.
	working := int(rec.CheckOut.Sub(*rec.CheckIn).Minutes())

	overtime := working - pol.StandardWorkMinutes
	if rec.OvertimeOverride != nil {
		overtime = *rec.OvertimeOverride
	}

	return DayEvaluation{
		WorkingMinutes:  working,
		OvertimeMinutes: overtime,
		IsLate:          isLate(minuteOfDay(*rec.CheckIn), pol),
		CountsAsWorking: true,
	}, nil
}

// isLate compares the check-in minute of day against the threshold; exactly
// on the threshold is on time.
func isLate(checkInMinute int, pol attendance.Policy) bool {
	return checkInMinute > pol.LateThresholdMinute()
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
