package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilehr/attendance-backend-go/internal/domain/attendance"
	"github.com/nilehr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	AddExpense(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)

	// Admin endpoints
	Create(w http.ResponseWriter, r *http.Request)
	UpdateCheckTimes(w http.ResponseWriter, r *http.Request)
	SetOvertime(w http.ResponseWriter, r *http.Request)
	SetDayType(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CheckInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.UserID = userID

	rec, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("CheckIn service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", rec)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CheckOutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.UserID = userID

	rec, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		slog.Error("CheckOut service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", rec)
}

// AddExpense implements AttendanceHandler.
func (h *AttendanceHandlerImpl) AddExpense(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	rec, err := h.attendanceService.AddExpense(r.Context(), req)
	if err != nil {
		slog.Error("AddExpense service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense recorded", rec)
}

// ListMy implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
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

	records, err := h.attendanceService.ListMyRecords(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("ListMy service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Create implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.CreateRecord(r.Context(), req)
	if err != nil {
		slog.Error("Create record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Record created", rec)
}

// UpdateCheckTimes implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateCheckTimes(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateCheckTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	rec, err := h.attendanceService.UpdateCheckTimes(r.Context(), req)
	if err != nil {
		slog.Error("UpdateCheckTimes service error", "error", err, "record_id", req.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check times updated", rec)
}

// SetOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SetOvertime(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	rec, err := h.attendanceService.SetOvertime(r.Context(), req)
	if err != nil {
		slog.Error("SetOvertime service error", "error", err, "record_id", req.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime updated", rec)
}

// SetDayType implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SetDayType(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetDayTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	rec, err := h.attendanceService.SetDayType(r.Context(), req)
	if err != nil {
		slog.Error("SetDayType service error", "error", err, "record_id", req.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day type updated", rec)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("Delete record service error", "error", err, "record_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}
