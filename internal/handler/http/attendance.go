package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/handler/http/response"
	"github.com/tagpoint/attendance-backend-go/internal/service/export"
)

type AttendanceHandler interface {
	Tag(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	excelService      export.ExcelService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, excelService export.ExcelService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		excelService:      excelService,
	}
}

// parseEventFilter extracts the optional date range from query parameters.
func parseEventFilter(r *http.Request) attendance.EventFilter {
	filter := attendance.EventFilter{}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	return filter
}

// Tag implements AttendanceHandler.
func (h *attendanceHandlerImpl) Tag(w http.ResponseWriter, r *http.Request) {
	var req attendance.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Tag(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseEventFilter(r)

	results, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	filter := parseEventFilter(r)

	results, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ExportExcel implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	filter := parseEventFilter(r)

	results, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, filename, err := h.excelService.AttendanceReport(results)
	if err != nil {
		slog.Error("Failed to render attendance report", "error", err)
		response.InternalServerError(w, "Failed to render attendance report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write attendance report", "error", err)
	}
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}
