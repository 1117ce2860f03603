package create_timeslot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	"github.com/m04kA/SMC-TimeslotService/internal/service/timeslots"
	"github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimeRange   = "start_time must be before end_time"
	msgCategoryNotFound   = "category not found"
)

type Handler struct {
	service TimeslotService
	logger  Logger
}

func NewHandler(service TimeslotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/timeslots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timeslots.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/timeslots - Invalid time range: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, timeslots.ErrCategoryNotFound):
			h.logger.Warn("POST /admin/timeslots - Category not found: category_id=%d", req.CategoryID)
			handlers.RespondBadRequest(w, msgCategoryNotFound)

		default:
			h.logger.Error("POST /admin/timeslots - Failed to create slot: category_id=%d, error=%v",
				req.CategoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/timeslots - Slot created successfully: slot_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
