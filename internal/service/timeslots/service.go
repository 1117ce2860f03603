package timeslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/category"
	slotRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
)

// Service сервис административного управления слотами
type Service struct {
	slotRepo     SlotRepository
	categoryRepo CategoryRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	categoryRepo CategoryRepository,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create создает новый слот
// Категория должна существовать, интервал обязан удовлетворять
// start_time < end_time
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: category=%d, start=%s, end=%s",
		req.CategoryID, req.StartTime, req.EndTime)

	if !req.StartTime.Before(req.EndTime) {
		s.logger.Warn("CreateSlot: invalid time range: start=%s, end=%s", req.StartTime, req.EndTime)
		return nil, ErrInvalidTimeRange
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("CreateSlot: category id=%d not found", req.CategoryID)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("CreateSlot: failed to get category id=%d: %v", req.CategoryID, err)
		return nil, fmt.Errorf("%w: Create - failed to get category: %v", ErrInternal, err)
	}

	slot := &domain.TimeSlot{
		Category:  *category,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("CreateSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: successfully created slot id=%d", created.ID)
	return models.FromDomainSlot(created, nil), nil
}

// Delete удаляет слот
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSlot: successfully deleted slot id=%d", id)
	return nil
}
