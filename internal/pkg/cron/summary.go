package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	"github.com/nilehr/attendance-backend-go/internal/domain/user"
)

type SummaryJobs struct {
	summarySvc summary.Service
	userRepo   user.Repository
}

func NewSummaryJobs(summarySvc summary.Service, userRepo user.Repository) *SummaryJobs {
	return &SummaryJobs{
		summarySvc: summarySvc,
		userRepo:   userRepo,
	}
}

func (j *SummaryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recalculate_current_month_summaries", 1*time.Hour, j.RecalculateCurrentMonth)
}

// RecalculateCurrentMonth refreshes every active user's summary for the
// running month. An incomplete record (open past day) is expected while
// someone forgot to check out; it is logged and the user is skipped.
func (j *SummaryJobs) RecalculateCurrentMonth(ctx context.Context) error {
	now := time.Now().UTC()
	slog.Info("Cron: Starting monthly summary recalculation",
		"year", now.Year(), "month", int(now.Month()))

	users, err := j.userRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	refreshed := 0
	for _, u := range users {
		if _, err := j.summarySvc.Recalculate(ctx, u.ID, now.Year(), now.Month()); err != nil {
			var incomplete *summary.IncompleteRecordError
			if errors.As(err, &incomplete) {
				slog.Warn("Cron: Skipping user with incomplete record",
					"user_id", u.ID, "date", incomplete.Date.Format("2006-01-02"))
				continue
			}
			return fmt.Errorf("failed to recalculate summary for user %s: %w", u.ID, err)
		}
		refreshed++
	}

	slog.Info("Cron: Monthly summary recalculation finished",
		"user_count", len(users), "refreshed", refreshed)
	return nil
}
