package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	attendancecalc "github.com/nilehr/attendance-backend-go/internal/service/attendance"
)

// Aggregate folds one month of records into a MonthlySummary. It is a pure
// function of its inputs: recomputing from the same records, rate and bonus
// always yields the same summary, so the result can replace any stored row.
//
// The salary formula:
//
//	total_minutes = total_working_minutes + overtime_minutes
//	salary        = total_minutes × minute_cost + total_extra_expenses + bonus
//
// Overtime is the signed per-day deviation from the standard day, so
// total_minutes is the literal sum of minutes actually worked.
//
// An open record on a past day aborts with IncompleteRecordError; an open
// record for "today" is simply not part of the totals yet (its expenses still
// count). A malformed record aborts with RecordError: the engine never skips
// or clamps on the caller's behalf.
func Aggregate(
	userID string,
	year int,
	month time.Month,
	records []attendance.Record,
	pol attendance.Policy,
	minuteCost decimal.Decimal,
	bonus decimal.Decimal,
	today time.Time,
) (summary.MonthlySummary, error) {
	s := summary.MonthlySummary{
		UserID:             userID,
		Year:               year,
		Month:              month,
		MinuteCost:         minuteCost,
		Bonus:              bonus,
		TotalExtraExpenses: decimal.Zero,
	}

	for _, rec := range records {
		if rec.ExtraExpenses.IsNegative() {
			return summary.MonthlySummary{}, &summary.RecordError{Date: rec.Date, Err: attendance.ErrNegativeExpense}
		}

		eval, err := attendancecalc.EvaluateDay(rec, pol)
		if err != nil {
			return summary.MonthlySummary{}, &summary.RecordError{Date: rec.Date, Err: err}
		}

		// Expenses count for every record regardless of day type.
		s.TotalExtraExpenses = s.TotalExtraExpenses.Add(rec.ExtraExpenses)

		if eval.Open {
			if rec.SameDay(today) {
				continue
			}
			return summary.MonthlySummary{}, &summary.IncompleteRecordError{UserID: userID, Date: rec.Date}
		}

		if eval.CountsAsWorking {
			s.WorkingDays++
		}
		if eval.CountsAsAbsence {
			s.AbsenceDays++
		}
		s.TotalWorkingMinutes += eval.WorkingMinutes
		s.OvertimeMinutes += eval.OvertimeMinutes
	}

	s.TotalMinutes = s.TotalWorkingMinutes + s.OvertimeMinutes
	s.Salary = minuteCost.
		Mul(decimal.NewFromInt(int64(s.TotalMinutes))).
		Add(s.TotalExtraExpenses).
		Add(bonus)

	return s, nil
}
