package unbook_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	"github.com/m04kA/SMC-TimeslotService/internal/api/middleware"
	slotModels "github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
	unbookSlot "github.com/m04kA/SMC-TimeslotService/internal/usecase/unbook_slot"
	"github.com/m04kA/SMC-TimeslotService/pkg/ptr"
)

const (
	msgInvalidSlotID = "invalid time slot id"
	msgMissingUserID = "authentication required"
	msgSlotNotFound  = "time slot not found"
	msgNotOwner      = "you did not book this slot"
	msgPastSlot      = "cannot unbook a slot in the past"
)

type Handler struct {
	useCase UnbookSlotUseCase
	logger  Logger
}

func NewHandler(useCase UnbookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timeslots/{slotId}/unbook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /timeslots/{id}/unbook - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /timeslots/{id}/unbook - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	slot, err := h.useCase.Execute(r.Context(), &unbookSlot.Request{
		SlotID: slotID,
		UserID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, unbookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /timeslots/{id}/unbook - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, unbookSlot.ErrNotOwner):
			h.logger.Warn("POST /timeslots/{id}/unbook - Not booked by user: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, unbookSlot.ErrPastSlot):
			h.logger.Warn("POST /timeslots/{id}/unbook - Slot in the past: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondBadRequest(w, msgPastSlot)

		default:
			h.logger.Error("POST /timeslots/{id}/unbook - Failed to unbook slot: slot_id=%d, user_id=%d, error=%v",
				slotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timeslots/{id}/unbook - Slot unbooked successfully: slot_id=%d, user_id=%d", slotID, userID)
	handlers.RespondJSON(w, http.StatusOK, slotModels.FromDomainSlot(slot, ptr.Ptr(userID)))
}
