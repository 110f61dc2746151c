package user

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nilehr/attendance-backend-go/internal/domain/user"
)

type ServiceImpl struct {
	user.Repository
}

func NewService(repo user.Repository) user.Service {
	return &ServiceImpl{Repository: repo}
}

// GetUser implements user.Service.
func (s *ServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}

// ListUsers implements user.Service.
func (s *ServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.Repository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}
	return responses, nil
}

// SetMinuteCost implements user.Service. The new rate applies to future
// calculations only; stored summaries keep their snapshot.
func (s *ServiceImpl) SetMinuteCost(ctx context.Context, req user.SetMinuteCostRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	cost, err := decimal.NewFromString(req.MinuteCost)
	if err != nil || cost.IsNegative() {
		return user.UserResponse{}, user.ErrInvalidMinuteCost
	}

	if err := s.Repository.UpdateMinuteCost(ctx, req.UserID, cost); err != nil {
		return user.UserResponse{}, err
	}
	return s.GetUser(ctx, req.UserID)
}

// SetVacationAllowance implements user.Service.
func (s *ServiceImpl) SetVacationAllowance(ctx context.Context, req user.SetVacationAllowanceRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.VacationDays < 0 {
		return user.UserResponse{}, user.ErrInvalidVacationDays
	}

	if err := s.Repository.UpdateVacationAllowance(ctx, req.UserID, req.VacationDays); err != nil {
		return user.UserResponse{}, err
	}
	return s.GetUser(ctx, req.UserID)
}
