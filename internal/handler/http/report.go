package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nilehr/attendance-backend-go/internal/domain/report"
	"github.com/nilehr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	MyMonthly(w http.ResponseWriter, r *http.Request)
	MyFull(w http.ResponseWriter, r *http.Request)

	// Admin endpoints
	UserMonthly(w http.ResponseWriter, r *http.Request)
	UserFull(w http.ResponseWriter, r *http.Request)
	AllUsersMonthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Dashboard implements ReportHandler.
func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	window, err := h.reportService.DisplayWindow(r.Context(), userID, time.Now().UTC())
	if err != nil {
		slog.Error("Dashboard service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, window)
}

// MyMonthly implements ReportHandler.
func (h *ReportHandlerImpl) MyMonthly(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.monthly(w, r, userID)
}

// MyFull implements ReportHandler.
func (h *ReportHandlerImpl) MyFull(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.full(w, r, userID)
}

// UserMonthly implements ReportHandler.
func (h *ReportHandlerImpl) UserMonthly(w http.ResponseWriter, r *http.Request) {
	h.monthly(w, r, chi.URLParam(r, "userID"))
}

// UserFull implements ReportHandler.
func (h *ReportHandlerImpl) UserFull(w http.ResponseWriter, r *http.Request) {
	h.full(w, r, chi.URLParam(r, "userID"))
}

// AllUsersMonthly implements ReportHandler.
func (h *ReportHandlerImpl) AllUsersMonthly(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reports, err := h.reportService.AllUsersMonthlyReport(r.Context(), year, month)
	if err != nil {
		slog.Error("AllUsersMonthly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

func (h *ReportHandlerImpl) monthly(w http.ResponseWriter, r *http.Request, userID string) {
	year, month, err := yearMonthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rep, err := h.reportService.MonthlyReport(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("Monthly report service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

func (h *ReportHandlerImpl) full(w http.ResponseWriter, r *http.Request, userID string) {
	rep, err := h.reportService.FullReport(r.Context(), userID)
	if err != nil {
		slog.Error("Full report service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}
