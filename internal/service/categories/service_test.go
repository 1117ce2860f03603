package categories

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/category"
	"github.com/m04kA/SMC-TimeslotService/internal/service/categories/models"
)

type mockCategoryRepo struct {
	listFn   func(ctx context.Context) ([]*domain.Category, error)
	createFn func(ctx context.Context, name string) (*domain.Category, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	return m.listFn(ctx)
}

func (m *mockCategoryRepo) Create(ctx context.Context, name string) (*domain.Category, error) {
	return m.createFn(ctx, name)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func TestList(t *testing.T) {
	repo := &mockCategoryRepo{
		listFn: func(ctx context.Context) ([]*domain.Category, error) {
			return []*domain.Category{
				{ID: 1, Name: "consultation"},
				{ID: 2, Name: "training"},
			}, nil
		},
	}

	svc := NewService(repo, &nopLogger{})

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Categories, 2)
	assert.Equal(t, "consultation", result.Categories[0].Name)
}

func TestCreate_Success(t *testing.T) {
	repo := &mockCategoryRepo{
		createFn: func(ctx context.Context, name string) (*domain.Category, error) {
			return &domain.Category{ID: 10, Name: name}, nil
		},
	}

	svc := NewService(repo, &nopLogger{})

	result, err := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "  workshop  "})

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.ID)
	// Имя нормализуется перед записью
	assert.Equal(t, "workshop", result.Name)
}

func TestCreate_EmptyName(t *testing.T) {
	svc := NewService(&mockCategoryRepo{}, &nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "   "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_NameTooLong(t *testing.T) {
	svc := NewService(&mockCategoryRepo{}, &nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCategoryRequest{
		Name: strings.Repeat("a", 101),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := &mockCategoryRepo{
		createFn: func(ctx context.Context, name string) (*domain.Category, error) {
			return nil, categoryRepo.ErrDuplicateName
		},
	}

	svc := NewService(repo, &nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "consultation"})

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockCategoryRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return categoryRepo.ErrCategoryNotFound
		},
	}

	svc := NewService(repo, &nopLogger{})

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
