package book_slot

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	bookSlot "github.com/m04kA/SMC-TimeslotService/internal/usecase/book_slot"
)

type BookSlotUseCase interface {
	Execute(ctx context.Context, req *bookSlot.Request) (*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
