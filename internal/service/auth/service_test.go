package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	userRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TimeslotService/internal/service/auth/models"
)

type mockUserRepo struct {
	createFn        func(ctx context.Context, u *domain.User) (*domain.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return m.createFn(ctx, u)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.getByUsernameFn(ctx, username)
}

type mockProfileRepo struct {
	calls int
}

func (m *mockProfileRepo) GetOrCreateByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	m.calls++
	return &domain.UserProfile{ID: 1, UserID: userID}, nil
}

type mockTokenIssuer struct{}

func (m *mockTokenIssuer) Generate(userID int64) (string, error) {
	return "signed-token", nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func TestRegister_Success(t *testing.T) {
	var createdUser *domain.User
	users := &mockUserRepo{
		createFn: func(ctx context.Context, u *domain.User) (*domain.User, error) {
			created := *u
			created.ID = 42
			createdUser = &created
			return &created, nil
		},
	}
	profiles := &mockProfileRepo{}

	svc := NewService(users, profiles, &mockTokenIssuer{}, &mockTxManager{}, &nopLogger{})

	result, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username:  "alice",
		Password:  "correct-horse",
		FirstName: "Alice",
		LastName:  "Liddell",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(42), result.User.ID)
	assert.Equal(t, "alice", result.User.Username)

	// Пароль хранится только как bcrypt-хеш
	require.NotNil(t, createdUser)
	assert.NotContains(t, createdUser.PasswordHash, "correct-horse")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.PasswordHash), []byte("correct-horse")))

	// Профиль создается вместе с пользователем
	assert.Equal(t, 1, profiles.calls)
}

func TestRegister_UsernameTaken(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(ctx context.Context, u *domain.User) (*domain.User, error) {
			return nil, userRepo.ErrDuplicateUsername
		},
	}

	svc := NewService(users, &mockProfileRepo{}, &mockTokenIssuer{}, &mockTxManager{}, &nopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Password: "correct-horse",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(&mockUserRepo{}, &mockProfileRepo{}, &mockTokenIssuer{}, &mockTxManager{}, &nopLogger{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{
			name: "empty username",
			req:  models.RegisterRequest{Username: "  ", Password: "correct-horse"},
		},
		{
			name: "username too long",
			req:  models.RegisterRequest{Username: strings.Repeat("a", 151), Password: "correct-horse"},
		},
		{
			name: "password too short",
			req:  models.RegisterRequest{Username: "alice", Password: "short"},
		},
		{
			name: "first name too long",
			req:  models.RegisterRequest{Username: "alice", Password: "correct-horse", FirstName: strings.Repeat("a", 151)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 42, Username: "alice", PasswordHash: string(hash)}, nil
		},
	}

	svc := NewService(users, &mockProfileRepo{}, &mockTokenIssuer{}, &mockTxManager{}, &nopLogger{})

	result, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(42), result.User.ID)
}

func TestLogin_UnknownUsername(t *testing.T) {
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, userRepo.ErrUserNotFound
		},
	}

	svc := NewService(users, &mockProfileRepo{}, &mockTokenIssuer{}, &mockTxManager{}, &nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "ghost",
		Password: "correct-horse",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 42, Username: "alice", PasswordHash: string(hash)}, nil
		},
	}

	svc := NewService(users, &mockProfileRepo{}, &mockTokenIssuer{}, &mockTxManager{}, &nopLogger{})

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})

	// Ошибка неотличима от неизвестного имени пользователя
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
