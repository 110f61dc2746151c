package user

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines data access for user accounts.
type Repository interface {
	// GetByID retrieves a user by ID. Returns ErrUserNotFound when missing.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by username for login.
	GetByUsername(ctx context.Context, username string) (User, error)

	// ListActive retrieves every active user, used by reports and the
	// scheduled recalculation.
	ListActive(ctx context.Context) ([]User, error)

	// UpdateMinuteCost sets a user's per-minute rate.
	UpdateMinuteCost(ctx context.Context, id string, cost decimal.Decimal) error

	// UpdateVacationAllowance sets a user's yearly vacation allowance.
	UpdateVacationAllowance(ctx context.Context, id string, days int) error
}
