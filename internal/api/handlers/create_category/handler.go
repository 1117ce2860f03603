package create_category

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	"github.com/m04kA/SMC-TimeslotService/internal/service/categories"
	"github.com/m04kA/SMC-TimeslotService/internal/service/categories/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDuplicateName      = "category name already exists"
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

// Handle POST /api/v1/admin/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, categories.ErrInvalidInput):
			h.logger.Warn("POST /admin/categories - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, categories.ErrDuplicateName):
			h.logger.Warn("POST /admin/categories - Duplicate name: name=%q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("POST /admin/categories - Failed to create category: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/categories - Category created successfully: category_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
