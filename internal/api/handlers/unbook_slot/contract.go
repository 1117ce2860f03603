package unbook_slot

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	unbookSlot "github.com/m04kA/SMC-TimeslotService/internal/usecase/unbook_slot"
)

type UnbookSlotUseCase interface {
	Execute(ctx context.Context, req *unbookSlot.Request) (*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
