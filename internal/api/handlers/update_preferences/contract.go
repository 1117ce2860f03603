package update_preferences

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/service/preferences/models"
)

type PreferencesService interface {
	Update(ctx context.Context, userID int64, req *models.UpdatePreferencesRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
