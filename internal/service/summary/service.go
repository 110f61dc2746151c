package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	"github.com/nilehr/attendance-backend-go/internal/domain/user"
	"github.com/nilehr/attendance-backend-go/internal/pkg/database"
	"github.com/nilehr/attendance-backend-go/internal/pkg/keymutex"
	"github.com/nilehr/attendance-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	summary.Repository
	records attendance.Repository
	users   user.Repository
	policy  attendance.Policy
	locks   *keymutex.KeyMutex
	inTx    func(ctx context.Context, fn func(ctx context.Context) error) error
	now     func() time.Time
}

func NewService(
	db *database.DB,
	repo summary.Repository,
	records attendance.Repository,
	users user.Repository,
	policy attendance.Policy,
) summary.Service {
	return &ServiceImpl{
		Repository: repo,
		records:    records,
		users:      users,
		policy:     policy,
		locks:      keymutex.New(),
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				txCtx := context.WithValue(ctx, "tx", tx)
				return fn(txCtx)
			})
		},
		now: time.Now,
	}
}

func monthKey(userID string, year int, month time.Month) string {
	return fmt.Sprintf("%s|%d-%02d", userID, year, int(month))
}

// Get implements summary.Service. The stored row is returned as-is even when
// the underlying records or the user's rate changed since it was calculated;
// only an explicit recalculation refreshes it.
func (s *ServiceImpl) Get(ctx context.Context, userID string, year int, month time.Month) (summary.MonthlySummaryResponse, error) {
	key := monthKey(userID, year, month)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	stored, err := s.Repository.Get(ctx, userID, year, month)
	if err == nil {
		return summary.NewMonthlySummaryResponse(stored), nil
	}
	if !errors.Is(err, summary.ErrSummaryNotFound) {
		return summary.MonthlySummaryResponse{}, fmt.Errorf("failed to get summary: %w", err)
	}

	computed, err := s.compute(ctx, userID, year, month, decimal.Zero)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}
	return summary.NewMonthlySummaryResponse(computed), nil
}

// Recalculate implements summary.Service. The admin-set bonus on the existing
// row survives; everything else is recomputed from the records and the user's
// current rate.
func (s *ServiceImpl) Recalculate(ctx context.Context, userID string, year int, month time.Month) (summary.MonthlySummaryResponse, error) {
	key := monthKey(userID, year, month)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	bonus := decimal.Zero
	stored, err := s.Repository.Get(ctx, userID, year, month)
	if err == nil {
		bonus = stored.Bonus
	} else if !errors.Is(err, summary.ErrSummaryNotFound) {
		return summary.MonthlySummaryResponse{}, fmt.Errorf("failed to get summary: %w", err)
	}

	computed, err := s.compute(ctx, userID, year, month, bonus)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}
	return summary.NewMonthlySummaryResponse(computed), nil
}

// SetBonus implements summary.Service.
func (s *ServiceImpl) SetBonus(ctx context.Context, req summary.SetBonusRequest) (summary.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.MonthlySummaryResponse{}, err
	}
	bonus, err := decimal.NewFromString(req.Bonus)
	if err != nil {
		return summary.MonthlySummaryResponse{}, fmt.Errorf("failed to parse bonus: %w", err)
	}

	key := monthKey(req.UserID, req.Year, time.Month(req.Month))
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	computed, err := s.compute(ctx, req.UserID, req.Year, time.Month(req.Month), bonus)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}
	return summary.NewMonthlySummaryResponse(computed), nil
}

// compute aggregates the month from its records, snapshots the user's current
// rate and replaces the stored row. Callers hold the month lock. The
// read-recompute-upsert runs in one transaction so the stored row never
// reflects records a concurrent admin mutation removed mid-computation.
func (s *ServiceImpl) compute(ctx context.Context, userID string, year int, month time.Month, bonus decimal.Decimal) (summary.MonthlySummary, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	var stored summary.MonthlySummary
	err = s.inTx(ctx, func(ctx context.Context) error {
		records, err := s.records.ListForMonth(ctx, userID, year, month)
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		computed, err := Aggregate(userID, year, month, records, s.policy, u.MinuteCost, bonus, s.now())
		if err != nil {
			return err
		}
		computed.CalculatedAt = s.now()
		computed.UserFullName = &u.FullName

		stored, err = s.Repository.Upsert(ctx, computed)
		if err != nil {
			return fmt.Errorf("failed to upsert summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	stored.UserFullName = &u.FullName
	return stored, nil
}
