package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_records (
			id, user_id, date, check_in, check_out,
			total_working_minutes, overtime_minutes, overtime_override,
			extra_expenses, comments, day_type, is_late
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.TotalWorkingMinutes,
		rec.OvertimeMinutes,
		rec.OvertimeOverride,
		rec.ExtraExpenses,
		rec.Comments,
		rec.DayType,
		rec.IsLate,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_user_date") {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := selectRecord + `
		WHERE r.id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// GetByUserAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := selectRecord + `
		WHERE r.user_id = $1
		  AND r.date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for that date
		}
		return nil, fmt.Errorf("failed to get attendance record by user and date: %w", err)
	}
	return &rec, nil
}

// ListForMonth implements attendance.Repository.
func (r *attendanceRepository) ListForMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Record, error) {
	return r.listForMonth(ctx, userID, year, month, false)
}

// ListWorkingForMonth implements attendance.Repository.
func (r *attendanceRepository) ListWorkingForMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Record, error) {
	return r.listForMonth(ctx, userID, year, month, true)
}

func (r *attendanceRepository) listForMonth(ctx context.Context, userID string, year int, month time.Month, workingOnly bool) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := selectRecord + `
		WHERE r.user_id = $1
		  AND r.date >= $2
		  AND r.date < $3
	`
	if workingOnly {
		query += `  AND r.day_type = 'working_day'
	`
	}
	query += `ORDER BY r.date ASC`

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	rows, err := q.Query(ctx, query, userID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2,
			check_out = $3,
			total_working_minutes = $4,
			overtime_minutes = $5,
			overtime_override = $6,
			extra_expenses = $7,
			comments = $8,
			day_type = $9,
			is_late = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.CheckIn,
		rec.CheckOut,
		rec.TotalWorkingMinutes,
		rec.OvertimeMinutes,
		rec.OvertimeOverride,
		rec.ExtraExpenses,
		rec.Comments,
		rec.DayType,
		rec.IsLate,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

const selectRecord = `
		SELECT r.id, r.user_id, r.date, r.check_in, r.check_out,
			   r.total_working_minutes, r.overtime_minutes, r.overtime_override,
			   r.extra_expenses, r.comments, r.day_type, r.is_late,
			   r.created_at, r.updated_at, u.full_name
		FROM attendance_records r
		JOIN users u ON u.id = r.user_id
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.TotalWorkingMinutes, &rec.OvertimeMinutes, &rec.OvertimeOverride,
		&rec.ExtraExpenses, &rec.Comments, &rec.DayType, &rec.IsLate,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.UserFullName,
	)
	return rec, err
}
