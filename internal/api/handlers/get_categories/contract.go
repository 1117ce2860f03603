package get_categories

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/service/categories/models"
)

type CategoryService interface {
	List(ctx context.Context) (*models.CategoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
