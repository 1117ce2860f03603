package update_preferences

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	"github.com/m04kA/SMC-TimeslotService/internal/api/middleware"
	"github.com/m04kA/SMC-TimeslotService/internal/service/preferences"
	"github.com/m04kA/SMC-TimeslotService/internal/service/preferences/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "authentication required"
	msgUserNotFound       = "user not found"
	msgInvalidCategory    = "unknown category id in interested_category_ids"
)

type Handler struct {
	service PreferencesService
	logger  Logger
}

func NewHandler(service PreferencesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/user/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /user/preferences - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdatePreferencesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /user/preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, preferences.ErrUserNotFound):
			h.logger.Warn("PUT /user/preferences - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, preferences.ErrInvalidCategory):
			h.logger.Warn("PUT /user/preferences - Unknown category ids: user_id=%d, ids=%v",
				userID, req.InterestedCategoryIDs)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("PUT /user/preferences - Failed to update preferences: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /user/preferences - Preferences updated successfully: user_id=%d, categories=%d",
		userID, len(result.InterestedCategories))
	handlers.RespondJSON(w, http.StatusOK, result)
}
