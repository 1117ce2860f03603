package unbook_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/timeslot"
)

// UseCase use case снятия брони со слота
type UseCase struct {
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case снятия брони
// Снять бронь может только её текущий владелец, и только пока слот
// не начался. Запись условная (booked_by = user) по той же схеме, что
// и бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.TimeSlot, error) {
	uc.logger.Info("UnbookSlot: slot=%d, user=%d", req.SlotID, req.UserID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UnbookSlot: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.TimeSlot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("UnbookSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("UnbookSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// Проверка владельца идет первой: для свободного слота и для чужой
		// брони ответ одинаковый
		if !slot.IsBookedBy(req.UserID) {
			uc.logger.Warn("UnbookSlot: slot id=%d is not booked by user=%d", req.SlotID, req.UserID)
			return ErrNotOwner
		}

		if slot.IsPast(now) {
			uc.logger.Warn("UnbookSlot: slot id=%d starts in the past (%s)", req.SlotID, slot.StartTime)
			return ErrPastSlot
		}

		unbooked, err := uc.slotRepo.Unbook(txCtx, req.SlotID, req.UserID)
		if err != nil {
			uc.logger.Error("UnbookSlot: failed to unbook slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to unbook slot: %v", ErrInternal, err)
		}
		if !unbooked {
			uc.logger.Warn("UnbookSlot: slot id=%d ownership changed concurrently", req.SlotID)
			return ErrNotOwner
		}

		result, err = uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			uc.logger.Error("UnbookSlot: failed to reload slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to reload slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UnbookSlot: successfully unbooked slot id=%d for user=%d", req.SlotID, req.UserID)
	return result, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	return nil
}
