package book_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	"github.com/m04kA/SMC-TimeslotService/internal/api/middleware"
	slotModels "github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
	bookSlot "github.com/m04kA/SMC-TimeslotService/internal/usecase/book_slot"
	"github.com/m04kA/SMC-TimeslotService/pkg/ptr"
)

const (
	msgInvalidSlotID      = "invalid time slot id"
	msgMissingUserID      = "authentication required"
	msgSlotNotFound       = "time slot not found"
	msgAlreadyBooked      = "slot already booked"
	msgPastSlot           = "cannot book a slot in the past"
	msgConflictingBooking = "you already have a booking conflicting with this time"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timeslots/{slotId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /timeslots/{id}/book - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /timeslots/{id}/book - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	slot, err := h.useCase.Execute(r.Context(), &bookSlot.Request{
		SlotID: slotID,
		UserID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /timeslots/{id}/book - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrAlreadyBooked):
			h.logger.Warn("POST /timeslots/{id}/book - Slot already booked: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondBadRequest(w, msgAlreadyBooked)

		case errors.Is(err, bookSlot.ErrPastSlot):
			h.logger.Warn("POST /timeslots/{id}/book - Slot in the past: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.Is(err, bookSlot.ErrConflictingBooking):
			h.logger.Warn("POST /timeslots/{id}/book - Conflicting booking: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondBadRequest(w, msgConflictingBooking)

		default:
			h.logger.Error("POST /timeslots/{id}/book - Failed to book slot: slot_id=%d, user_id=%d, error=%v",
				slotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timeslots/{id}/book - Slot booked successfully: slot_id=%d, user_id=%d", slotID, userID)
	handlers.RespondJSON(w, http.StatusOK, slotModels.FromDomainSlot(slot, ptr.Ptr(userID)))
}
