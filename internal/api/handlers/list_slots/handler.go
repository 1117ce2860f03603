package list_slots

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	"github.com/m04kA/SMC-TimeslotService/internal/api/middleware"
	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	slotModels "github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
	listSlots "github.com/m04kA/SMC-TimeslotService/internal/usecase/list_slots"
	"github.com/m04kA/SMC-TimeslotService/pkg/ptr"
)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots
// Query params: start_date (опционально, YYYY-MM-DD, начало недельного окна),
// category_id / category_id[] (опционально, повторяемые)
//
// Парсинг фильтров мягкий: некорректная дата отключает фильтр по дате,
// нечисловые ID категорий отбрасываются. Запрос списка никогда не падает
// из-за плохих значений фильтра
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.SlotFilter{
		WeekStart:   parseWeekStart(query, h.logger),
		CategoryIDs: parseCategoryIDs(query, h.logger),
	}

	result, err := h.useCase.Execute(r.Context(), &listSlots.Request{Filter: filter})
	if err != nil {
		h.logger.Error("GET /timeslots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	var viewerID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		viewerID = ptr.Ptr(id)
	}

	response := slotModels.SlotListResponse{
		Slots: slotModels.FromDomainSlotList(result, viewerID),
	}

	h.logger.Info("GET /timeslots - Slots retrieved successfully: count=%d", len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// parseWeekStart читает start_date, возвращает nil при отсутствии
// или некорректном формате
func parseWeekStart(query url.Values, logger Logger) *time.Time {
	dateStr := query.Get("start_date")
	if dateStr == "" {
		return nil
	}

	weekStart, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		logger.Warn("GET /timeslots - Ignoring invalid start_date %q: %v", dateStr, err)
		return nil
	}

	return &weekStart
}

// parseCategoryIDs собирает все значения category_id и category_id[],
// отбрасывая нечисловые
func parseCategoryIDs(query url.Values, logger Logger) []int64 {
	raw := append(query["category_id"], query["category_id[]"]...)

	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			logger.Warn("GET /timeslots - Ignoring invalid category_id %q", v)
			continue
		}
		ids = append(ids, id)
	}

	return ids
}
