package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out conflicts
	ErrAlreadyCheckedIn  = errors.New("already checked in for this date")
	ErrAlreadyCheckedOut = errors.New("already checked out for this date")
	ErrNoCheckInFound    = errors.New("no check-in found for this date")
	ErrDuplicateRecord   = errors.New("attendance record already exists for this date")

	// Validation
	ErrCheckOutBeforeCheckIn = errors.New("check-out must not precede check-in")
	ErrNegativeExpense       = errors.New("extra expenses must not be negative")
	ErrInvalidDayType        = errors.New("invalid day type")
	ErrMissingCheckTimes     = errors.New("working day requires check-in and check-out times")

	// General
	ErrRecordNotFound = errors.New("attendance record not found")
)
