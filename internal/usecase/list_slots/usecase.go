package list_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// UseCase use case получения списка слотов с фильтрацией
// Выборка read-only: состояние слотов никогда не меняется
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute возвращает слоты по фильтру, отсортированные по времени начала
// Фильтр собирается из query-параметров на уровне handler: некорректные
// значения там отбрасываются, сюда приходит уже очищенный фильтр
func (uc *UseCase) Execute(ctx context.Context, req *Request) ([]*domain.TimeSlot, error) {
	if req.Filter.WeekStart != nil {
		uc.logger.Info("ListSlots: week_start=%s, categories=%v",
			req.Filter.WeekStart.Format(domain.DateFormat), req.Filter.CategoryIDs)
	} else {
		uc.logger.Info("ListSlots: no date filter, categories=%v", req.Filter.CategoryIDs)
	}

	slots, err := uc.slotRepo.List(ctx, req.Filter)
	if err != nil {
		uc.logger.Error("ListSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	uc.logger.Info("ListSlots: returning %d slots", len(slots))
	return slots, nil
}
