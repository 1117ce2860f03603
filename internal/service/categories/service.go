package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/category"
	"github.com/m04kA/SMC-TimeslotService/internal/service/categories/models"
)

// Service сервис для работы с категориями
// Чтение доступно любому аутентифицированному пользователю,
// создание и удаление - административные операции
type Service struct {
	categoryRepo CategoryRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса категорий
func NewService(categoryRepo CategoryRepository, logger Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List возвращает все категории
func (s *Service) List(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCategories: returning %d categories", len(categories))
	return models.FromDomainCategoryList(categories), nil
}

// Create создает новую категорию
func (s *Service) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)

	s.logger.Info("CreateCategory: name=%q", name)

	if name == "" {
		s.logger.Warn("CreateCategory: empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCategoryNameLen {
		s.logger.Warn("CreateCategory: name too long (%d chars)", len(name))
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxCategoryNameLen)
	}

	created, err := s.categoryRepo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrDuplicateName) {
			s.logger.Warn("CreateCategory: name %q already exists", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("CreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: successfully created category id=%d", created.ID)
	return models.FromDomainCategory(created), nil
}

// Delete удаляет категорию вместе с её слотами (каскад на уровне БД)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteCategory: deleting category id=%d", id)

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("DeleteCategory: category id=%d not found", id)
			return ErrCategoryNotFound
		}
		s.logger.Error("DeleteCategory: repository error for category id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCategory: successfully deleted category id=%d", id)
	return nil
}
