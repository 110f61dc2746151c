package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilehr/attendance-backend-go/internal/domain/user"
	"github.com/nilehr/attendance-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	// Admin endpoints
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	SetMinuteCost(w http.ResponseWriter, r *http.Request)
	SetVacationAllowance(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Get implements UserHandler.
func (h *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	u, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		slog.Error("Get user service error", "error", err, "user_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, u)
}

// SetMinuteCost implements UserHandler.
func (h *UserHandlerImpl) SetMinuteCost(w http.ResponseWriter, r *http.Request) {
	var req user.SetMinuteCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	u, err := h.userService.SetMinuteCost(r.Context(), req)
	if err != nil {
		slog.Error("SetMinuteCost service error", "error", err, "user_id", req.UserID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Minute cost updated", u)
}

// SetVacationAllowance implements UserHandler.
func (h *UserHandlerImpl) SetVacationAllowance(w http.ResponseWriter, r *http.Request) {
	var req user.SetVacationAllowanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	u, err := h.userService.SetVacationAllowance(r.Context(), req)
	if err != nil {
		slog.Error("SetVacationAllowance service error", "error", err, "user_id", req.UserID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation allowance updated", u)
}
