package http

import (
	"log/slog"
	"net/http"

	"github.com/tagpoint/attendance-backend-go/internal/handler/http/response"
	"github.com/tagpoint/attendance-backend-go/internal/service/seed"
)

type SeedHandler interface {
	Reseed(w http.ResponseWriter, r *http.Request)
}

type seedHandlerImpl struct {
	seedService seed.SeedService
}

func NewSeedHandler(seedService seed.SeedService) SeedHandler {
	return &seedHandlerImpl{
		seedService: seedService,
	}
}

// Reseed implements SeedHandler.
func (h *seedHandlerImpl) Reseed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seedService.Reseed(r.Context())
	if err != nil {
		slog.Error("Reseed failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Database reseeded with sample data", result)
}
