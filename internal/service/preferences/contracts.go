package preferences

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetOrCreateByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error)
	ReplaceCategories(ctx context.Context, profileID int64, categoryIDs []int64) error
}

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
