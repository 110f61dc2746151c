package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilehr/attendance-backend-go/internal/domain/summary"
	"github.com/nilehr/attendance-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)

	// Admin endpoints
	Get(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	SetBonus(w http.ResponseWriter, r *http.Request)
}

type SummaryHandlerImpl struct {
	summaryService summary.Service
}

func NewSummaryHandler(summaryService summary.Service) SummaryHandler {
	return &SummaryHandlerImpl{summaryService: summaryService}
}

// GetMy implements SummaryHandler.
func (h *SummaryHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sum, err := h.summaryService.Get(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("GetMy summary service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sum)
}

// Get implements SummaryHandler.
func (h *SummaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sum, err := h.summaryService.Get(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("Get summary service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sum)
}

// Recalculate implements SummaryHandler.
func (h *SummaryHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sum, err := h.summaryService.Recalculate(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("Recalculate summary service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Summary recalculated", sum)
}

// SetBonus implements SummaryHandler.
func (h *SummaryHandlerImpl) SetBonus(w http.ResponseWriter, r *http.Request) {
	var req summary.SetBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	sum, err := h.summaryService.SetBonus(r.Context(), req)
	if err != nil {
		slog.Error("SetBonus service error", "error", err, "user_id", req.UserID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus updated", sum)
}
