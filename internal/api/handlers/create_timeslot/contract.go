package create_timeslot

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
)

type TimeslotService interface {
	Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
