package attendance

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	"github.com/nilehr/attendance-backend-go/internal/pkg/keymutex"
)

type fakeRecordRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]attendance.Record
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeRecordRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.records {
		if existing.UserID == rec.UserID && existing.Date.Equal(rec.Date) {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
	}
	f.seq++
	rec.ID = fmt.Sprintf("rec-%d", f.seq)
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Date.Equal(date) {
			copied := rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) ListForMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Date.Year() == year && rec.Date.Month() == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListWorkingForMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Record, error) {
	all, _ := f.ListForMonth(ctx, userID, year, month)
	var out []attendance.Record
	for _, rec := range all {
		if rec.DayType == attendance.DayTypeWorkingDay {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, rec attendance.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[rec.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeRecordRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeSummaryService struct {
	mu           sync.Mutex
	recalculated []string
}

func (f *fakeSummaryService) Get(ctx context.Context, userID string, year int, month time.Month) (summary.MonthlySummaryResponse, error) {
	return summary.MonthlySummaryResponse{}, nil
}

func (f *fakeSummaryService) Recalculate(ctx context.Context, userID string, year int, month time.Month) (summary.MonthlySummaryResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recalculated = append(f.recalculated, fmt.Sprintf("%s|%d-%02d", userID, year, int(month)))
	return summary.MonthlySummaryResponse{}, nil
}

func (f *fakeSummaryService) SetBonus(ctx context.Context, req summary.SetBonusRequest) (summary.MonthlySummaryResponse, error) {
	return summary.MonthlySummaryResponse{}, nil
}

func newTestService(now time.Time) (*ServiceImpl, *fakeRecordRepo, *fakeSummaryService) {
	repo := newFakeRecordRepo()
	sums := &fakeSummaryService{}
	svc := &ServiceImpl{
		Repository: repo,
		summaries:  sums,
		policy:     testPolicy,
		locks:      keymutex.New(),
		now:        func() time.Time { return now },
	}
	return svc, repo, sums
}

func TestService_CheckIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 15, 0, 0, time.UTC)
	svc, _, sums := newTestService(now)

	rec, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-12", rec.Date)
	require.NotNil(t, rec.CheckInTime)
	assert.Equal(t, "09:15", *rec.CheckInTime)
	assert.Nil(t, rec.CheckOutTime)
	assert.False(t, rec.IsLate)
	assert.Equal(t, []string{"u1|2024-03"}, sums.recalculated)
}

func TestService_CheckIn_LatePastGrace(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 45, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	rec, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u1"})
	require.NoError(t, err)

	assert.True(t, rec.IsLate)
}

func TestService_CheckIn_Twice(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestService_CheckOut(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, sums := newTestService(now)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u1"})
	require.NoError(t, err)

	outAt := "2024-03-12T17:00:00Z"
	rec, err := svc.CheckOut(ctx, attendance.CheckOutRequest{UserID: "u1", Timestamp: &outAt})
	require.NoError(t, err)

	require.NotNil(t, rec.CheckOutTime)
	assert.Equal(t, "17:00", *rec.CheckOutTime)
	assert.Equal(t, 480, rec.TotalWorkingMinutes)
	assert.Equal(t, 0, rec.OvertimeMinutes)
	assert.Len(t, sums.recalculated, 2)
}

func TestService_CheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 17, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{UserID: "u1"})
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func TestService_CheckOut_Twice(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u1"})
	require.NoError(t, err)

	outAt := "2024-03-12T17:00:00Z"
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{UserID: "u1", Timestamp: &outAt})
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{UserID: "u1", Timestamp: &outAt})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestService_CheckOut_BeforeCheckIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u1"})
	require.NoError(t, err)

	outAt := "2024-03-12T08:00:00Z"
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{UserID: "u1", Timestamp: &outAt})
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
}

func TestService_AddExpense(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u1"})
	require.NoError(t, err)

	comment := "taxi"
	rec, err := svc.AddExpense(ctx, attendance.AddExpenseRequest{UserID: "u1", Amount: "12.50", Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, "12.5", rec.ExtraExpenses)
	require.NotNil(t, rec.Comments)
	assert.Equal(t, "taxi", *rec.Comments)

	lunch := "lunch"
	rec, err = svc.AddExpense(ctx, attendance.AddExpenseRequest{UserID: "u1", Amount: "7.50", Comment: &lunch})
	require.NoError(t, err)
	assert.Equal(t, "20", rec.ExtraExpenses)
	assert.Equal(t, "taxi; lunch", *rec.Comments)
}

func TestService_AddExpense_WithoutRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.AddExpense(ctx, attendance.AddExpenseRequest{UserID: "u1", Amount: "10"})
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func TestService_CreateRecord_Vacation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, sums := newTestService(now)

	rec, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		UserID:  "u2",
		Date:    "2024-03-07",
		DayType: string(attendance.DayTypeNormalVacation),
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.DayTypeNormalVacation), rec.DayType)
	assert.Equal(t, 0, rec.TotalWorkingMinutes)
	assert.Equal(t, []string{"u2|2024-03"}, sums.recalculated)

	_, err = svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		UserID:  "u2",
		Date:    "2024-03-07",
		DayType: string(attendance.DayTypeSickLeave),
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
}

func TestService_CreateRecord_WorkingDayNeedsCheckIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		UserID:  "u2",
		Date:    "2024-03-07",
		DayType: string(attendance.DayTypeWorkingDay),
	})
	assert.ErrorIs(t, err, attendance.ErrMissingCheckTimes)
}

func TestService_SetOvertime(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	in, out := "09:00", "18:30"
	created, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		UserID:       "u1",
		Date:         "2024-03-11",
		DayType:      string(attendance.DayTypeWorkingDay),
		CheckInTime:  &in,
		CheckOutTime: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, 90, created.OvertimeMinutes)

	override := 0
	updated, err := svc.SetOvertime(ctx, attendance.SetOvertimeRequest{ID: created.ID, OvertimeMinutes: &override})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.OvertimeMinutes)
	assert.True(t, updated.OvertimeOverridden)

	// Clearing the override restores the derived value.
	cleared, err := svc.SetOvertime(ctx, attendance.SetOvertimeRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, 90, cleared.OvertimeMinutes)
	assert.False(t, cleared.OvertimeOverridden)
}

func TestService_UpdateCheckTimes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	in, out := "10:00", "17:00"
	created, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		UserID:       "u1",
		Date:         "2024-03-11",
		DayType:      string(attendance.DayTypeWorkingDay),
		CheckInTime:  &in,
		CheckOutTime: &out,
	})
	require.NoError(t, err)
	assert.True(t, created.IsLate)

	fixedIn := "09:00"
	updated, err := svc.UpdateCheckTimes(ctx, attendance.UpdateCheckTimesRequest{ID: created.ID, CheckInTime: &fixedIn})
	require.NoError(t, err)
	assert.False(t, updated.IsLate)
	assert.Equal(t, 480, updated.TotalWorkingMinutes)
	assert.Equal(t, 0, updated.OvertimeMinutes)
}

func TestService_SetDayType(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	created, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		UserID:  "u1",
		Date:    "2024-03-11",
		DayType: string(attendance.DayTypeNormalVacation),
	})
	require.NoError(t, err)

	updated, err := svc.SetDayType(ctx, attendance.SetDayTypeRequest{ID: created.ID, DayType: string(attendance.DayTypeAbsence)})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.DayTypeAbsence), updated.DayType)
}

func TestService_DeleteRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, repo, sums := newTestService(now)

	created, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
		UserID:  "u1",
		Date:    "2024-03-11",
		DayType: string(attendance.DayTypeAbsence),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(ctx, created.ID))
	assert.Empty(t, repo.records)
	assert.Len(t, sums.recalculated, 2)

	assert.ErrorIs(t, svc.DeleteRecord(ctx, created.ID), attendance.ErrRecordNotFound)
}

func TestService_ListMyRecords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(now)

	_, err := repo.Create(ctx, attendance.Record{
		UserID:        "u1",
		Date:          time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		DayType:       attendance.DayTypeAbsence,
		ExtraExpenses: decimal.Zero,
	})
	require.NoError(t, err)

	records, err := svc.ListMyRecords(ctx, "u1", 2024, time.March)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = svc.ListMyRecords(ctx, "u1", 2024, time.February)
	require.NoError(t, err)
	assert.Empty(t, records)
}
