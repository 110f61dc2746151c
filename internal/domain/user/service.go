package user

import "context"

// Service defines user administration business logic. All operations here are
// admin-only; the handler layer enforces the role.
type Service interface {
	// GetUser returns one user's profile.
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// ListUsers returns every active user.
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// SetMinuteCost updates a user's per-minute rate. Stored summaries keep
	// their snapshotted rate until explicitly recalculated.
	SetMinuteCost(ctx context.Context, req SetMinuteCostRequest) (UserResponse, error)

	// SetVacationAllowance updates a user's yearly vacation allowance.
	SetVacationAllowance(ctx context.Context, req SetVacationAllowanceRequest) (UserResponse, error)
}
