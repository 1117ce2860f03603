package timeslots

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
