package timeslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/category"
	slotRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
)

type mockSlotRepo struct {
	createFn func(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockSlotRepo) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	return m.createFn(ctx, slot)
}

func (m *mockSlotRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockCategoryRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Category, error)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return m.getByIDFn(ctx, id)
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func TestCreate_Success(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	slots := &mockSlotRepo{
		createFn: func(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
			created := *slot
			created.ID = 7
			return &created, nil
		},
	}
	categories := &mockCategoryRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "consultation"}, nil
		},
	}

	svc := NewService(slots, categories, &nopLogger{})

	result, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		CategoryID: 1,
		StartTime:  start,
		EndTime:    end,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, "consultation", result.Category.Name)
	assert.False(t, result.IsBooked)
}

func TestCreate_InvalidTimeRange(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	svc := NewService(&mockSlotRepo{}, &mockCategoryRepo{}, &nopLogger{})

	// Конец раньше начала
	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		CategoryID: 1,
		StartTime:  start,
		EndTime:    start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Нулевая длительность тоже отклоняется
	_, err = svc.Create(context.Background(), &models.CreateSlotRequest{
		CategoryID: 1,
		StartTime:  start,
		EndTime:    start,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreate_CategoryNotFound(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	categories := &mockCategoryRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Category, error) {
			return nil, categoryRepo.ErrCategoryNotFound
		},
	}

	svc := NewService(&mockSlotRepo{}, categories, &nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		CategoryID: 99,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	slots := &mockSlotRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return slotRepo.ErrSlotNotFound
		},
	}

	svc := NewService(slots, &mockCategoryRepo{}, &nopLogger{})

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}
