package delete_category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	"github.com/m04kA/SMC-TimeslotService/internal/service/categories"
)

const (
	msgInvalidCategoryID = "invalid category id"
	msgNotFound          = "category not found"
)

type Handler struct {
	service CategoryService
	logger  Logger
}

func NewHandler(service CategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/categories/{categoryId}
// Удаление категории каскадно удаляет ее слоты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID, err := strconv.ParseInt(vars["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	if err := h.service.Delete(r.Context(), categoryID); err != nil {
		switch {
		case errors.Is(err, categories.ErrCategoryNotFound):
			h.logger.Warn("DELETE /admin/categories/{id} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/categories/{id} - Failed to delete category: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/categories/{id} - Category deleted successfully: category_id=%d", categoryID)
	handlers.RespondNoContent(w)
}
