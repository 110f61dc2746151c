package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nilehr/attendance-backend-go/internal/domain/auth"
	"github.com/nilehr/attendance-backend-go/internal/pkg/validator"
)

// userIDFromContext pulls the authenticated user's ID from the JWT claims.
func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// yearMonthFromQuery reads optional ?year= and ?month= parameters, defaulting
// to the current month.
func yearMonthFromQuery(r *http.Request) (int, time.Month, error) {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || !validator.IsValidYear(parsed) {
			return 0, 0, validator.ValidationErrors{{
				Field:   "year",
				Message: "year is out of range",
			}}
		}
		year = parsed
	}

	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || !validator.IsValidMonth(parsed) {
			return 0, 0, validator.ValidationErrors{{
				Field:   "month",
				Message: "month must be between 1 and 12",
			}}
		}
		month = time.Month(parsed)
	}

	return year, month, nil
}
