package attendance

import (
	"context"
	"time"
)

// Service defines business logic for attendance operations. Mutations are
// serialized per (user, date) and trigger recalculation of the affected
// month's summary.
type Service interface {
	// CheckIn records the caller's check-in for today. Fails with
	// ErrAlreadyCheckedIn when a checked-in record already exists.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut completes the caller's open record for today. Fails with
	// ErrNoCheckInFound when there is nothing to close.
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// AddExpense adds an expense amount (and optional comment) to the
	// caller's record for today.
	AddExpense(ctx context.Context, req AddExpenseRequest) (RecordResponse, error)

	// ListMyRecords returns the caller's records for a month.
	ListMyRecords(ctx context.Context, userID string, year int, month time.Month) ([]RecordResponse, error)

	// Admin paths.
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	UpdateCheckTimes(ctx context.Context, req UpdateCheckTimesRequest) (RecordResponse, error)
	SetOvertime(ctx context.Context, req SetOvertimeRequest) (RecordResponse, error)
	SetDayType(ctx context.Context, req SetDayTypeRequest) (RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
