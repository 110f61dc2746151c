package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/domain/holiday"
	"github.com/nilehr/attendance-backend-go/internal/domain/report"
	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	"github.com/nilehr/attendance-backend-go/internal/domain/user"
	"github.com/nilehr/attendance-backend-go/internal/service/calendar"
)

type ServiceImpl struct {
	records     attendance.Repository
	summaries   summary.Service
	summaryRepo summary.Repository
	users       user.Repository
	holidays    holiday.Repository
	rules       calendar.Rules
}

func NewService(
	records attendance.Repository,
	summaries summary.Service,
	summaryRepo summary.Repository,
	users user.Repository,
	holidays holiday.Repository,
	rules calendar.Rules,
) report.Service {
	return &ServiceImpl{
		records:     records,
		summaries:   summaries,
		summaryRepo: summaryRepo,
		users:       users,
		holidays:    holidays,
		rules:       rules,
	}
}

// DisplayWindow implements report.Service.
func (s *ServiceImpl) DisplayWindow(ctx context.Context, userID string, today time.Time) (report.DisplayWindowResponse, error) {
	set, err := s.holidaySet(ctx)
	if err != nil {
		return report.DisplayWindowResponse{}, err
	}

	// Last day of the previous month; AddDate on "today" directly can skip a
	// month at the end of a long one.
	prevMonthEnd := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	prevRecords, err := s.records.ListWorkingForMonth(ctx, userID, prevMonthEnd.Year(), prevMonthEnd.Month())
	if err != nil {
		return report.DisplayWindowResponse{}, fmt.Errorf("failed to list previous month records: %w", err)
	}
	window := previousMonthWindow(prevRecords, s.rules, set, today)

	current, err := s.records.ListForMonth(ctx, userID, today.Year(), today.Month())
	if err != nil {
		return report.DisplayWindowResponse{}, fmt.Errorf("failed to list current month records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(window)+len(current))
	for _, rec := range window {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	for _, rec := range current {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}

	return report.DisplayWindowResponse{
		Records:               responses,
		IncludesPreviousMonth: len(window) > 0,
	}, nil
}

// MonthlyReport implements report.Service.
func (s *ServiceImpl) MonthlyReport(ctx context.Context, userID string, year int, month time.Month) (report.MonthlyReportResponse, error) {
	sum, err := s.summaries.Get(ctx, userID, year, month)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	records, err := s.records.ListForMonth(ctx, userID, year, month)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to list records: %w", err)
	}

	set, err := s.holidaySet(ctx)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}

	return report.MonthlyReportResponse{
		Summary:             sum,
		ExpectedWorkingDays: s.rules.WorkingDaysInMonth(year, month, set),
		Records:             responses,
	}, nil
}

// FullReport implements report.Service.
func (s *ServiceImpl) FullReport(ctx context.Context, userID string) (report.FullReportResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return report.FullReportResponse{}, err
	}

	summaries, err := s.summaryRepo.ListForUser(ctx, userID)
	if err != nil {
		return report.FullReportResponse{}, fmt.Errorf("failed to list summaries: %w", err)
	}

	responses := make([]summary.MonthlySummaryResponse, 0, len(summaries))
	stats := report.CumulativeStats{}
	totalBonus := decimal.Zero
	totalSalary := decimal.Zero
	for _, sum := range summaries {
		responses = append(responses, summary.NewMonthlySummaryResponse(sum))
		stats.TotalWorkingDays += sum.WorkingDays
		stats.TotalAbsenceDays += sum.AbsenceDays
		stats.TotalWorkingMinutes += sum.TotalWorkingMinutes
		stats.TotalOvertimeMinutes += sum.OvertimeMinutes
		totalBonus = totalBonus.Add(sum.Bonus)
		totalSalary = totalSalary.Add(sum.Salary)
	}
	stats.TotalBonus = totalBonus.String()
	stats.TotalSalary = totalSalary.String()

	return report.FullReportResponse{
		UserID:              u.ID,
		FullName:            u.FullName,
		JoinDate:            u.JoinDate.Format("2006-01-02"),
		MinuteCost:          u.MinuteCost.String(),
		VacationDaysAllowed: u.VacationDaysAllowed,
		Summaries:           responses,
		Cumulative:          stats,
	}, nil
}

// AllUsersMonthlyReport implements report.Service. A failing month for any
// user fails the whole report; the error names the offending record.
func (s *ServiceImpl) AllUsersMonthlyReport(ctx context.Context, year int, month time.Month) ([]report.MonthlyReportResponse, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	reports := make([]report.MonthlyReportResponse, 0, len(users))
	for _, u := range users {
		r, err := s.MonthlyReport(ctx, u.ID, year, month)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func (s *ServiceImpl) holidaySet(ctx context.Context) (holiday.Set, error) {
	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holiday.NewSet(holidays), nil
}
