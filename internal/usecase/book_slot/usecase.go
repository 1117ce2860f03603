package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/timeslot"
)

// UseCase use case бронирования слота
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

// Execute выполняет use case бронирования слота
//
// Проверка "слот свободен" и запись владельца выполняются как единый
// атомарный переход: строка слота блокируется (FOR UPDATE) в сериализуемой
// транзакции, а сама запись условная (booked_by IS NULL). Из двух
// конкурентных бронирований одного слота выигрывает ровно одно, второе
// получает ErrAlreadyBooked
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.TimeSlot, error) {
	uc.logger.Info("BookSlot: slot=%d, user=%d", req.SlotID, req.UserID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.TimeSlot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Читаем слот с блокировкой строки
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("BookSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("BookSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// Порядок проверок фиксирован: занятость, прошедшее время, конфликт
		if slot.IsBooked() {
			uc.logger.Warn("BookSlot: slot id=%d already booked by user=%d", req.SlotID, slot.BookedBy.ID)
			return ErrAlreadyBooked
		}

		if slot.IsPast(now) {
			uc.logger.Warn("BookSlot: slot id=%d starts in the past (%s)", req.SlotID, slot.StartTime)
			return ErrPastSlot
		}

		hasOverlap, err := uc.slotRepo.HasUserOverlap(txCtx, req.UserID, slot.StartTime, slot.EndTime)
		if err != nil {
			uc.logger.Error("BookSlot: failed to check overlap for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}
		if hasOverlap {
			uc.logger.Warn("BookSlot: user=%d has a booking overlapping slot id=%d", req.UserID, req.SlotID)
			return ErrConflictingBooking
		}

		// Условная запись: booked_by выставляется только если слот все еще свободен
		booked, err := uc.slotRepo.Book(txCtx, req.SlotID, req.UserID)
		if err != nil {
			uc.logger.Error("BookSlot: failed to book slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
		}
		if !booked {
			// Конкурентная бронь успела записаться между проверкой и обновлением
			uc.logger.Warn("BookSlot: slot id=%d taken by a concurrent booking", req.SlotID)
			return ErrAlreadyBooked
		}

		// Перечитываем слот, чтобы вернуть проекцию с владельцем брони
		result, err = uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			uc.logger.Error("BookSlot: failed to reload slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to reload slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully booked slot id=%d for user=%d", req.SlotID, req.UserID)
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
