package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	userRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TimeslotService/internal/service/auth/models"
	slotModels "github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
)

// Service сервис регистрации и аутентификации пользователей
type Service struct {
	userRepo    UserRepository
	profileRepo ProfileRepository
	tokens      TokenIssuer
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	tokens TokenIssuer,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		txManager:   txManager,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя
// Профиль создается здесь же, явным хуком после создания пользователя:
// это единственное место, где профиль появляется не лениво
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: username=%q", req.Username)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}

	u := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.userRepo.Create(txCtx, u)
		if err != nil {
			if errors.Is(err, userRepo.ErrDuplicateUsername) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("%w: Register - failed to create user: %v", ErrInternal, err)
		}
		u = created

		// Post-creation hook: профиль заводится сразу вместе с пользователем
		if _, err := s.profileRepo.GetOrCreateByUserID(txCtx, u.ID); err != nil {
			return fmt.Errorf("%w: Register - failed to create profile: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			s.logger.Warn("Register: username %q already taken", req.Username)
		} else {
			s.logger.Error("Register: transaction failed: %v", err)
		}
		return nil, err
	}

	token, err := s.tokens.Generate(u.ID)
	if err != nil {
		s.logger.Error("Register: failed to issue token for user=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: Register - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%d", u.ID)
	return &models.AuthResponse{
		Token: token,
		User:  *slotModels.FromDomainUser(u),
	}, nil
}

// Login аутентифицирует пользователя по имени и паролю
// Неизвестное имя и неверный пароль неразличимы для вызывающего
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: username=%q", req.Username)

	u, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username %q", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get user %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - failed to get user: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", u.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", u.ID)
	return &models.AuthResponse{
		Token: token,
		User:  *slotModels.FromDomainUser(u),
	}, nil
}

// validateRegisterRequest валидирует данные регистрации
func validateRegisterRequest(req *models.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(username) > domain.MaxUsernameLength {
		return fmt.Errorf("%w: username must be at most %d characters", ErrInvalidInput, domain.MaxUsernameLength)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if len(req.FirstName) > domain.MaxNameLength || len(req.LastName) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}
