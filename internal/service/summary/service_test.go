package summary

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	"github.com/nilehr/attendance-backend-go/internal/domain/user"
	"github.com/nilehr/attendance-backend-go/internal/pkg/keymutex"
)

type fakeSummaryRepo struct {
	mu   sync.Mutex
	rows map[string]summary.MonthlySummary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{rows: make(map[string]summary.MonthlySummary)}
}

func (f *fakeSummaryRepo) Upsert(ctx context.Context, s summary.MonthlySummary) (summary.MonthlySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = monthKey(s.UserID, s.Year, s.Month)
	f.rows[s.ID] = s
	return s, nil
}

func (f *fakeSummaryRepo) Get(ctx context.Context, userID string, year int, month time.Month) (summary.MonthlySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[monthKey(userID, year, month)]
	if !ok {
		return summary.MonthlySummary{}, summary.ErrSummaryNotFound
	}
	return row, nil
}

func (f *fakeSummaryRepo) ListForUser(ctx context.Context, userID string) ([]summary.MonthlySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []summary.MonthlySummary
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListForMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Date.Year() == year && rec.Date.Month() == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListWorkingForMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error { return nil }

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListActive(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateMinuteCost(ctx context.Context, id string, cost decimal.Decimal) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.MinuteCost = cost
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateVacationAllowance(ctx context.Context, id string, days int) error {
	return nil
}

// txSpy stands in for the transactional wrapper and counts how often the
// service asked for one.
type txSpy struct {
	calls int
}

func (s *txSpy) run(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

func newSummaryTestService(records []attendance.Record) (*ServiceImpl, *fakeSummaryRepo, *fakeUserRepo, *txSpy) {
	repo := newFakeSummaryRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {
			ID:         "u1",
			FullName:   "Test User",
			MinuteCost: decimal.NewFromFloat(0.5),
			IsActive:   true,
		},
	}}
	tx := &txSpy{}
	svc := &ServiceImpl{
		Repository: repo,
		records:    &fakeAttendanceRepo{records: records},
		users:      users,
		policy:     aggPolicy,
		locks:      keymutex.New(),
		inTx:       tx.run,
		now: func() time.Time {
			return time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)
		},
	}
	return svc, repo, users, tx
}

func TestServiceGet_ComputesAndStoresWhenAbsent(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, tx := newSummaryTestService([]attendance.Record{
		day(t, 4, attendance.DayTypeWorkingDay, "09:00", "17:00"),
		day(t, 5, attendance.DayTypeWorkingDay, "09:00", "18:00"),
	})

	resp, err := svc.Get(ctx, "u1", 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.WorkingDays)
	assert.Equal(t, 1020, resp.TotalWorkingMinutes)
	assert.Equal(t, 60, resp.OvertimeMinutes)
	assert.Equal(t, 1080, resp.TotalMinutes)
	assert.Equal(t, "0.5", resp.MinuteCost)
	assert.Equal(t, "540", resp.Salary)
	require.NotNil(t, resp.UserFullName)
	assert.Equal(t, "Test User", *resp.UserFullName)

	// The computed summary was persisted, inside one transaction.
	stored, err := repo.Get(ctx, "u1", 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, "540", stored.Salary.String())
	assert.Equal(t, 1, tx.calls)
}

func TestServiceGet_ReturnsStoredRowWithoutRecomputing(t *testing.T) {
	ctx := context.Background()
	svc, _, users, tx := newSummaryTestService([]attendance.Record{
		day(t, 4, attendance.DayTypeWorkingDay, "09:00", "17:00"),
	})

	first, err := svc.Get(ctx, "u1", 2024, time.March)
	require.NoError(t, err)

	// A later rate change does not touch the stored summary until an
	// explicit recalculation.
	require.NoError(t, users.UpdateMinuteCost(ctx, "u1", decimal.NewFromInt(2)))

	second, err := svc.Get(ctx, "u1", 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, first.MinuteCost, second.MinuteCost)
	assert.Equal(t, first.Salary, second.Salary)
	assert.Equal(t, 1, tx.calls, "stored row served without recomputing")

	recalced, err := svc.Recalculate(ctx, "u1", 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, "2", recalced.MinuteCost)
	assert.Equal(t, "960", recalced.Salary)
}

func TestServiceRecalculate_PreservesBonus(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newSummaryTestService([]attendance.Record{
		day(t, 4, attendance.DayTypeWorkingDay, "09:00", "17:00"),
	})

	withBonus, err := svc.SetBonus(ctx, summary.SetBonusRequest{
		UserID: "u1",
		Year:   2024,
		Month:  3,
		Bonus:  "100",
	})
	require.NoError(t, err)
	assert.Equal(t, "100", withBonus.Bonus)
	assert.Equal(t, "340", withBonus.Salary) // 480 * 0.5 + 100

	recalced, err := svc.Recalculate(ctx, "u1", 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, "100", recalced.Bonus)
	assert.Equal(t, "340", recalced.Salary)
}

func TestServiceSetBonus_ReplacesPreviousBonus(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newSummaryTestService(nil)

	_, err := svc.SetBonus(ctx, summary.SetBonusRequest{UserID: "u1", Year: 2024, Month: 3, Bonus: "50"})
	require.NoError(t, err)

	resp, err := svc.SetBonus(ctx, summary.SetBonusRequest{UserID: "u1", Year: 2024, Month: 3, Bonus: "-25"})
	require.NoError(t, err)
	assert.Equal(t, "-25", resp.Bonus)
	assert.Equal(t, "-25", resp.Salary)
}

func TestServiceSetBonus_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newSummaryTestService(nil)

	_, err := svc.SetBonus(ctx, summary.SetBonusRequest{UserID: "u1", Year: 2024, Month: 3, Bonus: "abc"})
	assert.Error(t, err)
}

func TestServiceGet_IncompleteRecordSurfaces(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newSummaryTestService([]attendance.Record{
		day(t, 4, attendance.DayTypeWorkingDay, "09:00", ""), // open, in the past
	})

	_, err := svc.Get(ctx, "u1", 2024, time.March)
	var incomplete *summary.IncompleteRecordError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 4, incomplete.Date.Day())
}

func TestServiceRecalculate_TransactionFailurePropagates(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newSummaryTestService([]attendance.Record{
		day(t, 4, attendance.DayTypeWorkingDay, "09:00", "17:00"),
	})

	txErr := errors.New("begin transaction: connection closed")
	svc.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return txErr
	}

	_, err := svc.Recalculate(ctx, "u1", 2024, time.March)
	assert.ErrorIs(t, err, txErr)

	// Nothing was stored outside the failed transaction.
	_, err = repo.Get(ctx, "u1", 2024, time.March)
	assert.ErrorIs(t, err, summary.ErrSummaryNotFound)
}

func TestServiceGet_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newSummaryTestService(nil)

	_, err := svc.Get(ctx, "nobody", 2024, time.March)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
