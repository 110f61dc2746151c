package summary

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSummaryNotFound = errors.New("monthly summary not found")
)

// IncompleteRecordError reports that a summary could not be computed because
// an open record (check-in without check-out) exists for a past day. The
// offending date is carried so the caller can point the admin at it.
type IncompleteRecordError struct {
	UserID string
	Date   time.Time
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("open attendance record on %s blocks summary computation", e.Date.Format("2006-01-02"))
}

// RecordError reports that a single malformed record aborted the month's
// aggregation. The engine never skips or averages over a bad record; the
// caller decides whether to fix or exclude it.
type RecordError struct {
	Date time.Time
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record on %s: %v", e.Date.Format("2006-01-02"), e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
