package auth

import (
	"context"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetOrCreateByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

// TokenIssuer интерфейс выпуска токенов доступа
type TokenIssuer interface {
	Generate(userID int64) (string, error)
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
