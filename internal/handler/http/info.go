package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/handler/http/response"
)

type InfoHandler interface {
	GetByTagID(w http.ResponseWriter, r *http.Request)
	PostByTagID(w http.ResponseWriter, r *http.Request)
}

type infoHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewInfoHandler(attendanceService attendance.AttendanceService) InfoHandler {
	return &infoHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetByTagID implements InfoHandler.
func (h *infoHandlerImpl) GetByTagID(w http.ResponseWriter, r *http.Request) {
	tagID := chi.URLParam(r, "tagID")

	result, err := h.attendanceService.Info(r.Context(), tagID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PostByTagID implements InfoHandler.
func (h *infoHandlerImpl) PostByTagID(w http.ResponseWriter, r *http.Request) {
	var req attendance.InfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Info(r.Context(), req.TagID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
