package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	"github.com/nilehr/attendance-backend-go/internal/pkg/database"
)

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.Repository {
	return &summaryRepository{db: db}
}

// Upsert implements summary.Repository. The unique constraint on
// (user_id, year, month) makes the replace atomic per row.
func (r *summaryRepository) Upsert(ctx context.Context, s summary.MonthlySummary) (summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO monthly_summaries (
			id, user_id, year, month, working_days, absence_days,
			total_working_minutes, overtime_minutes, total_minutes,
			minute_cost, bonus, total_extra_expenses, salary, calculated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (user_id, year, month) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			absence_days = EXCLUDED.absence_days,
			total_working_minutes = EXCLUDED.total_working_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			total_minutes = EXCLUDED.total_minutes,
			minute_cost = EXCLUDED.minute_cost,
			bonus = EXCLUDED.bonus,
			total_extra_expenses = EXCLUDED.total_extra_expenses,
			salary = EXCLUDED.salary,
			calculated_at = EXCLUDED.calculated_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.UserID,
		s.Year,
		int(s.Month),
		s.WorkingDays,
		s.AbsenceDays,
		s.TotalWorkingMinutes,
		s.OvertimeMinutes,
		s.TotalMinutes,
		s.MinuteCost,
		s.Bonus,
		s.TotalExtraExpenses,
		s.Salary,
		s.CalculatedAt,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return summary.MonthlySummary{}, fmt.Errorf("failed to upsert monthly summary: %w", err)
	}

	return s, nil
}

// Get implements summary.Repository.
func (r *summaryRepository) Get(ctx context.Context, userID string, year int, month time.Month) (summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := selectSummary + `
		WHERE s.user_id = $1
		  AND s.year = $2
		  AND s.month = $3
	`

	s, err := scanSummary(q.QueryRow(ctx, query, userID, year, int(month)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return summary.MonthlySummary{}, summary.ErrSummaryNotFound
		}
		return summary.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}
	return s, nil
}

// ListForUser implements summary.Repository.
func (r *summaryRepository) ListForUser(ctx context.Context, userID string) ([]summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := selectSummary + `
		WHERE s.user_id = $1
		ORDER BY s.year ASC, s.month ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly summaries: %w", err)
	}
	defer rows.Close()

	var summaries []summary.MonthlySummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly summaries: %w", err)
	}

	return summaries, nil
}

const selectSummary = `
		SELECT s.id, s.user_id, s.year, s.month, s.working_days, s.absence_days,
			   s.total_working_minutes, s.overtime_minutes, s.total_minutes,
			   s.minute_cost, s.bonus, s.total_extra_expenses, s.salary,
			   s.calculated_at, s.created_at, s.updated_at, u.full_name
		FROM monthly_summaries s
		JOIN users u ON u.id = s.user_id
`

func scanSummary(row pgx.Row) (summary.MonthlySummary, error) {
	var s summary.MonthlySummary
	var month int
	err := row.Scan(
		&s.ID, &s.UserID, &s.Year, &month, &s.WorkingDays, &s.AbsenceDays,
		&s.TotalWorkingMinutes, &s.OvertimeMinutes, &s.TotalMinutes,
		&s.MinuteCost, &s.Bonus, &s.TotalExtraExpenses, &s.Salary,
		&s.CalculatedAt, &s.CreatedAt, &s.UpdatedAt, &s.UserFullName,
	)
	s.Month = time.Month(month)
	return s, err
}
