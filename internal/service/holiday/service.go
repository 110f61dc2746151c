package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/nilehr/attendance-backend-go/internal/domain/holiday"
	"github.com/nilehr/attendance-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	holiday.Repository
}

func NewService(repo holiday.Repository) holiday.Service {
	return &ServiceImpl{Repository: repo}
}

// List implements holiday.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.Repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(h))
	}
	return responses, nil
}

// Add implements holiday.Service.
func (s *ServiceImpl) Add(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.Repository.Create(ctx, holiday.Holiday{
		Date: date,
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.NewHolidayResponse(created), nil
}

// Remove implements holiday.Service.
func (s *ServiceImpl) Remove(ctx context.Context, dateStr string) error {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		}}
	}
	return s.Repository.DeleteByDate(ctx, date)
}
