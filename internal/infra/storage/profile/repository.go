package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	"github.com/m04kA/SMC-TimeslotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeslotService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профилями пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreateByUserID возвращает профиль пользователя, создавая его при
// отсутствии
// Профиль создается хуком при регистрации, но потребители не полагаются
// на это: ON CONFLICT DO NOTHING делает создание идемпотентным и безопасным
// при конкурентных вызовах
func (r *Repository) GetOrCreateByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertQuery, insertArgs, err := psqlbuilder.Insert("user_profiles").
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateByUserID - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateByUserID - execute insert: %v", ErrExecQuery, err)
	}

	selectQuery, selectArgs, err := psqlbuilder.Select("id", "user_id").
		From("user_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.UserProfile
	err = executor.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&p.ID, &p.UserID)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateByUserID - scan profile: %v", ErrScanRow, err)
	}

	cats, err := r.ListCategories(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.InterestedCategories = cats

	return &p, nil
}

// ListCategories возвращает интересующие категории профиля
func (r *Repository) ListCategories(ctx context.Context, profileID int64) ([]domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("c.id", "c.name").
		From("user_profile_categories upc").
		Join("categories c ON c.id = upc.category_id").
		Where(squirrel.Eq{"upc.profile_id": profileID}).
		OrderBy("c.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// ReplaceCategories целиком заменяет набор интересующих категорий профиля
// Вызывается внутри транзакции, чтобы удаление и вставка были атомарны
func (r *Repository) ReplaceCategories(ctx context.Context, profileID int64, categoryIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("user_profile_categories").
		Where(squirrel.Eq{"profile_id": profileID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceCategories - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceCategories - execute delete: %v", ErrExecQuery, err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("user_profile_categories").
		Columns("profile_id", "category_id")
	for _, catID := range categoryIDs {
		insertBuilder = insertBuilder.Values(profileID, catID)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceCategories - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceCategories - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
