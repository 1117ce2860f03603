package list_slots

import (
	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// Request модель запроса списка слотов
// Поля фильтра опциональны: отсутствующий фильтр означает "все слоты"
type Request struct {
	Filter domain.SlotFilter
}
