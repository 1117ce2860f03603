package list_slots

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	listSlots "github.com/m04kA/SMC-TimeslotService/internal/usecase/list_slots"
)

type ListSlotsUseCase interface {
	Execute(ctx context.Context, req *listSlots.Request) ([]*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
