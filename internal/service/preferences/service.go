package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	userRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TimeslotService/internal/service/preferences/models"
)

// Service сервис для работы с предпочтениями пользователя
type Service struct {
	profileRepo  ProfileRepository
	categoryRepo CategoryRepository
	userRepo     UserRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса предпочтений
func NewService(
	profileRepo ProfileRepository,
	categoryRepo CategoryRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		profileRepo:  profileRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает профиль пользователя с набором интересующих категорий
// Профиль создается лениво, если его еще нет
func (s *Service) Get(ctx context.Context, userID int64) (*models.ProfileResponse, error) {
	s.logger.Info("GetPreferences: user=%d", userID)

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetPreferences: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetPreferences: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - failed to get user: %v", ErrInternal, err)
	}

	profile, err := s.profileRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetPreferences: failed to get profile for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - failed to get profile: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(u, profile), nil
}

// Update целиком заменяет набор интересующих категорий пользователя
//
// Валидация строгая: каждый идентификатор обязан ссылаться на существующую
// категорию, неизвестные идентификаторы отклоняются с ErrInvalidCategory,
// а не отбрасываются. Дубликаты схлопываются (набор, а не список)
func (s *Service) Update(ctx context.Context, userID int64, req *models.UpdatePreferencesRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdatePreferences: user=%d, categories=%v", userID, req.InterestedCategoryIDs)

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdatePreferences: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdatePreferences: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Update - failed to get user: %v", ErrInternal, err)
	}

	categoryIDs := dedupe(req.InterestedCategoryIDs)

	// Проверяем целостность ссылок до записи
	resolved, err := s.categoryRepo.GetByIDs(ctx, categoryIDs)
	if err != nil {
		s.logger.Error("UpdatePreferences: failed to resolve categories: %v", err)
		return nil, fmt.Errorf("%w: Update - failed to resolve categories: %v", ErrInternal, err)
	}
	if len(resolved) != len(categoryIDs) {
		s.logger.Warn("UpdatePreferences: unknown category ids in %v for user=%d", categoryIDs, userID)
		return nil, fmt.Errorf("%w: unknown category id", ErrInvalidCategory)
	}

	var profile *domain.UserProfile

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		profile, err = s.profileRepo.GetOrCreateByUserID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: Update - failed to get profile: %v", ErrInternal, err)
		}

		if err := s.profileRepo.ReplaceCategories(txCtx, profile.ID, categoryIDs); err != nil {
			return fmt.Errorf("%w: Update - failed to replace categories: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("UpdatePreferences: transaction failed for user=%d: %v", userID, err)
		return nil, err
	}

	profile.InterestedCategories = make([]domain.Category, 0, len(resolved))
	for _, c := range resolved {
		profile.InterestedCategories = append(profile.InterestedCategories, *c)
	}

	s.logger.Info("UpdatePreferences: successfully updated preferences for user=%d (%d categories)",
		userID, len(resolved))
	return models.FromDomainProfile(u, profile), nil
}

// dedupe убирает дубликаты, сохраняя порядок первого вхождения
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
