package list_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

type mockSlotRepo struct {
	listFn func(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error)
}

func (m *mockSlotRepo) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
	return m.listFn(ctx, filter)
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_PassesFilterThrough(t *testing.T) {
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	var gotFilter domain.SlotFilter
	repo := &mockSlotRepo{
		listFn: func(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
			gotFilter = filter
			return []*domain.TimeSlot{
				{ID: 1, Category: domain.Category{ID: 1, Name: "consultation"}},
				{ID: 2, Category: domain.Category{ID: 2, Name: "training"}},
			}, nil
		},
	}

	uc := NewUseCase(repo, &nopLogger{})

	slots, err := uc.Execute(context.Background(), &Request{
		Filter: domain.SlotFilter{
			WeekStart:   &weekStart,
			CategoryIDs: []int64{1, 2},
		},
	})

	require.NoError(t, err)
	assert.Len(t, slots, 2)
	require.NotNil(t, gotFilter.WeekStart)
	assert.True(t, gotFilter.WeekStart.Equal(weekStart))
	assert.Equal(t, []int64{1, 2}, gotFilter.CategoryIDs)
}

func TestExecute_EmptyResult(t *testing.T) {
	repo := &mockSlotRepo{
		listFn: func(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
			return nil, nil
		},
	}

	uc := NewUseCase(repo, &nopLogger{})

	slots, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockSlotRepo{
		listFn: func(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewUseCase(repo, &nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInternal)
}
