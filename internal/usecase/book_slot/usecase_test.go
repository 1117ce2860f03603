package book_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/timeslot"
)

type mockSlotRepo struct {
	getByIDFn        func(ctx context.Context, id int64) (*domain.TimeSlot, error)
	bookFn           func(ctx context.Context, slotID, userID int64) (bool, error)
	hasUserOverlapFn func(ctx context.Context, userID int64, start, end time.Time) (bool, error)
}

func (m *mockSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSlotRepo) Book(ctx context.Context, slotID, userID int64) (bool, error) {
	return m.bookFn(ctx, slotID, userID)
}

func (m *mockSlotRepo) HasUserOverlap(ctx context.Context, userID int64, start, end time.Time) (bool, error) {
	return m.hasUserOverlapFn(ctx, userID, start, end)
}

// mockTxManager выполняет fn без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *mockSlotRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, &mockTxManager{}, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func freeSlot(id int64, start, end time.Time) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:        id,
		Category:  domain.Category{ID: 1, Name: "consultation"},
		StartTime: start,
		EndTime:   end,
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)
	end := start.Add(time.Hour)

	booked := false
	repo := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			slot := freeSlot(42, start, end)
			if booked {
				slot.BookedBy = &domain.User{ID: 7, Username: "alice"}
			}
			return slot, nil
		},
		bookFn: func(ctx context.Context, slotID, userID int64) (bool, error) {
			booked = true
			return true, nil
		},
		hasUserOverlapFn: func(ctx context.Context, userID int64, start, end time.Time) (bool, error) {
			return false, nil
		},
	}

	uc := newTestUseCase(repo, now)

	result, err := uc.Execute(context.Background(), &Request{SlotID: 42, UserID: 7})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(42), result.ID)
	require.NotNil(t, result.BookedBy)
	assert.Equal(t, int64(7), result.BookedBy.ID)
}

func TestExecute_SlotNotFound(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	repo := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return nil, slotRepo.ErrSlotNotFound
		},
	}

	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 99, UserID: 7})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_AlreadyBooked(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	repo := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			slot := freeSlot(42, start, start.Add(time.Hour))
			slot.BookedBy = &domain.User{ID: 3, Username: "bob"}
			return slot, nil
		},
	}

	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 42, UserID: 7})

	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_AlreadyBooked_EvenWhenPast(t *testing.T) {
	// Занятость проверяется раньше прошедшего времени: для занятого слота
	// в прошлом ответ "уже забронирован"
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	start := now.Add(-2 * time.Hour)

	repo := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			slot := freeSlot(42, start, start.Add(time.Hour))
			slot.BookedBy = &domain.User{ID: 3, Username: "bob"}
			return slot, nil
		},
	}

	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 42, UserID: 7})

	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_PastSlot(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	start := now.Add(-time.Minute)

	repo := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return freeSlot(42, start, start.Add(time.Hour)), nil
		},
	}

	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 42, UserID: 7})

	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestExecute_ConflictingBooking(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	repo := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return freeSlot(42, start, start.Add(time.Hour)), nil
		},
		hasUserOverlapFn: func(ctx context.Context, userID int64, start, end time.Time) (bool, error) {
			return true, nil
		},
	}

	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 42, UserID: 7})

	assert.ErrorIs(t, err, ErrConflictingBooking)
}

func TestExecute_ConcurrentBookingLoses(t *testing.T) {
	// Условная запись вернула false: слот заняли между чтением и обновлением
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	repo := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return freeSlot(42, start, start.Add(time.Hour)), nil
		},
		bookFn: func(ctx context.Context, slotID, userID int64) (bool, error) {
			return false, nil
		},
		hasUserOverlapFn: func(ctx context.Context, userID int64, start, end time.Time) (bool, error) {
			return false, nil
		},
	}

	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 42, UserID: 7})

	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockSlotRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{SlotID: 0, UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SlotID: 42, UserID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
