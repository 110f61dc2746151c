package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	"github.com/nilehr/attendance-backend-go/internal/pkg/keymutex"
)

type ServiceImpl struct {
	attendance.Repository
	summaries summary.Service
	policy    attendance.Policy
	locks     *keymutex.KeyMutex
	now       func() time.Time
}

func NewService(
	repo attendance.Repository,
	summaries summary.Service,
	policy attendance.Policy,
) attendance.Service {
	return &ServiceImpl{
		Repository: repo,
		summaries:  summaries,
		policy:     policy,
		locks:      keymutex.New(),
		now:        time.Now,
	}
}

// lockKey serializes mutations per (user, date) so a double-submitted
// check-in cannot interleave between read and write.
func lockKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

// dateOf truncates a timestamp to its calendar day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.Service.
func (s *ServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	at := s.now()
	if req.At != nil {
		at = *req.At
	}
	date := dateOf(at)

	key := lockKey(req.UserID, date)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.Repository.GetByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get record for date: %w", err)
	}

	if existing != nil {
		if existing.CheckIn != nil {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		if existing.DayType != attendance.DayTypeWorkingDay {
			return attendance.RecordResponse{}, attendance.ErrDuplicateRecord
		}

		existing.CheckIn = &at
		if err := s.applyDerived(existing); err != nil {
			return attendance.RecordResponse{}, err
		}
		if err := s.Repository.Update(ctx, *existing); err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to update record: %w", err)
		}
		s.recalculate(ctx, req.UserID, date)
		return attendance.NewRecordResponse(*existing), nil
	}

	rec := attendance.Record{
		UserID:        req.UserID,
		Date:          date,
		CheckIn:       &at,
		DayType:       attendance.DayTypeWorkingDay,
		ExtraExpenses: decimal.Zero,
	}
	if err := s.applyDerived(&rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	created, err := s.Repository.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	s.recalculate(ctx, req.UserID, date)
	return attendance.NewRecordResponse(created), nil
}

// CheckOut implements attendance.Service.
func (s *ServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	at := s.now()
	if req.At != nil {
		at = *req.At
	}
	date := dateOf(at)

	key := lockKey(req.UserID, date)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	rec, err := s.Repository.GetByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get record for date: %w", err)
	}
	if rec == nil || rec.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNoCheckInFound
	}
	if rec.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if at.Before(*rec.CheckIn) {
		return attendance.RecordResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	rec.CheckOut = &at
	if err := s.applyDerived(rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	if err := s.Repository.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update record: %w", err)
	}

	s.recalculate(ctx, req.UserID, date)
	return attendance.NewRecordResponse(*rec), nil
}

// AddExpense implements attendance.Service. The expense attaches to the
// caller's record for today; checking in first is required so a bare expense
// row cannot poison the month.
func (s *ServiceImpl) AddExpense(ctx context.Context, req attendance.AddExpenseRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrNegativeExpense
	}
	if amount.IsNegative() {
		return attendance.RecordResponse{}, attendance.ErrNegativeExpense
	}

	date := dateOf(s.now())

	key := lockKey(req.UserID, date)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	rec, err := s.Repository.GetByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get record for date: %w", err)
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrNoCheckInFound
	}

	rec.ExtraExpenses = rec.ExtraExpenses.Add(amount)
	if req.Comment != nil && *req.Comment != "" {
		rec.Comments = appendComment(rec.Comments, *req.Comment)
	}

	if err := s.Repository.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update record: %w", err)
	}

	s.recalculate(ctx, req.UserID, date)
	return attendance.NewRecordResponse(*rec), nil
}

// ListMyRecords implements attendance.Service.
func (s *ServiceImpl) ListMyRecords(ctx context.Context, userID string, year int, month time.Month) ([]attendance.RecordResponse, error) {
	records, err := s.Repository.ListForMonth(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	return responses, nil
}

// CreateRecord implements attendance.Service. Admin path for backfilling a
// missed day or marking vacation, sick leave, holiday or absence.
func (s *ServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	key := lockKey(req.UserID, date)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	rec := attendance.Record{
		UserID:        req.UserID,
		Date:          date,
		DayType:       attendance.DayType(req.DayType),
		CheckIn:       combineTime(date, req.CheckInTime),
		CheckOut:      combineTime(date, req.CheckOutTime),
		ExtraExpenses: decimal.Zero,
	}
	if err := s.applyDerived(&rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	created, err := s.Repository.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	s.recalculate(ctx, req.UserID, date)
	return attendance.NewRecordResponse(created), nil
}

// UpdateCheckTimes implements attendance.Service.
func (s *ServiceImpl) UpdateCheckTimes(ctx context.Context, req attendance.UpdateCheckTimesRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.mutateRecord(ctx, req.ID, func(rec *attendance.Record) error {
		if req.CheckInTime != nil {
			rec.CheckIn = combineTime(rec.Date, req.CheckInTime)
		}
		if req.CheckOutTime != nil {
			rec.CheckOut = combineTime(rec.Date, req.CheckOutTime)
		}
		return nil
	})
}

// SetOvertime implements attendance.Service. A nil value clears the override
// and the derived overtime takes effect again.
func (s *ServiceImpl) SetOvertime(ctx context.Context, req attendance.SetOvertimeRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.mutateRecord(ctx, req.ID, func(rec *attendance.Record) error {
		rec.OvertimeOverride = req.OvertimeMinutes
		return nil
	})
}

// SetDayType implements attendance.Service.
func (s *ServiceImpl) SetDayType(ctx context.Context, req attendance.SetDayTypeRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.mutateRecord(ctx, req.ID, func(rec *attendance.Record) error {
		rec.DayType = attendance.DayType(req.DayType)
		return nil
	})
}

// DeleteRecord implements attendance.Service.
func (s *ServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	rec, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	key := lockKey(rec.UserID, rec.Date)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if err := s.Repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	s.recalculate(ctx, rec.UserID, rec.Date)
	return nil
}

// mutateRecord loads a record, applies mutate under the record's (user, date)
// lock, rederives the calculated fields and persists the result.
func (s *ServiceImpl) mutateRecord(ctx context.Context, id string, mutate func(*attendance.Record) error) (attendance.RecordResponse, error) {
	rec, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	key := lockKey(rec.UserID, rec.Date)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if err := mutate(&rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	if err := s.applyDerived(&rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	if err := s.Repository.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update record: %w", err)
	}

	s.recalculate(ctx, rec.UserID, rec.Date)
	return attendance.NewRecordResponse(rec), nil
}

// applyDerived recomputes the stored calculated fields from the check times
// and day type. Open records keep zero minutes until check-out arrives.
func (s *ServiceImpl) applyDerived(rec *attendance.Record) error {
	eval, err := EvaluateDay(*rec, s.policy)
	if err != nil {
		return err
	}
	rec.TotalWorkingMinutes = eval.WorkingMinutes
	rec.OvertimeMinutes = eval.OvertimeMinutes
	rec.IsLate = eval.IsLate
	return nil
}

// recalculate refreshes the affected month's summary after a record mutation.
// Failure here does not fail the mutation; the stale summary is replaced on
// the next successful recalculation and the error surfaces on summary reads.
func (s *ServiceImpl) recalculate(ctx context.Context, userID string, date time.Time) {
	if _, err := s.summaries.Recalculate(ctx, userID, date.Year(), date.Month()); err != nil {
		slog.Warn("summary recalculation failed",
			"user_id", userID,
			"year", date.Year(),
			"month", int(date.Month()),
			"error", err,
		)
	}
}

// combineTime places an HH:MM wall time onto a calendar date.
func combineTime(date time.Time, hhmm *string) *time.Time {
	if hhmm == nil {
		return nil
	}
	parsed, err := time.Parse("15:04", *hhmm)
	if err != nil {
		parsed, err = time.Parse("15:04:05", *hhmm)
		if err != nil {
			return nil
		}
	}
	t := time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, time.UTC)
	return &t
}

func appendComment(existing *string, comment string) *string {
	if existing == nil || *existing == "" {
		return &comment
	}
	joined := *existing + "; " + comment
	return &joined
}
