package timeslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	"github.com/m04kA/SMC-TimeslotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeslotService/pkg/psqlbuilder"
)

// slotColumns колонки выборки слота вместе с категорией и владельцем брони
var slotColumns = []string{
	"ts.id",
	"ts.start_time",
	"ts.end_time",
	"ts.created_at",
	"ts.updated_at",
	"c.id",
	"c.name",
	"u.id",
	"u.username",
	"u.first_name",
	"u.last_name",
}

// Repository репозиторий для работы с временными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает слоты по фильтру, отсортированные по времени начала
//
// Фильтрация:
// - WeekStart задан: только слоты с start_time в [WeekStart, WeekStart + 7 дней)
// - CategoryIDs не пуст: только слоты указанных категорий
// Пустой фильтр возвращает все слоты
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots ts").
		Join("categories c ON c.id = ts.category_id").
		LeftJoin("users u ON u.id = ts.booked_by")

	// Недельное окно: слот попадает в выборку по времени НАЧАЛА
	if filter.WeekStart != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"ts.start_time": *filter.WeekStart}).
			Where(squirrel.Lt{"ts.start_time": filter.WeekEnd()})
	}

	if len(filter.CategoryIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"ts.category_id": filter.CategoryIDs})
	}

	query, args, err := selectBuilder.OrderBy("ts.start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByID получает слот по ID вместе с категорией и владельцем брони
// Внутри транзакции строка слота блокируется (FOR UPDATE OF ts) -
// это точка сериализации для конкурентных бронирований одного слота
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots ts").
		Join("categories c ON c.id = ts.category_id").
		LeftJoin("users u ON u.id = ts.booked_by").
		Where(squirrel.Eq{"ts.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF ts")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// Book выставляет владельца брони условным обновлением
// Запись выполняется только если слот свободен (booked_by IS NULL):
// из двух конкурентных бронирований выигрывает ровно одно
// Возвращает true, если бронь записана
func (r *Repository) Book(ctx context.Context, slotID, userID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("booked_by", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Eq{"booked_by": nil}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Book - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Book - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Book - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// Unbook снимает бронь условным обновлением
// Запись выполняется только если бронь принадлежит указанному пользователю
// Возвращает true, если бронь снята
func (r *Repository) Unbook(ctx context.Context, slotID, userID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("booked_by", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Eq{"booked_by": userID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Unbook - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Unbook - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Unbook - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// HasUserOverlap проверяет, держит ли пользователь бронь, пересекающуюся
// с интервалом [start, end)
// Пересечение считается по строгим неравенствам: existing.start < end AND
// existing.end > start, граничащие интервалы конфликтом не являются
func (r *Repository) HasUserOverlap(ctx context.Context, userID int64, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("time_slots").
		Where(squirrel.Eq{"booked_by": userID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasUserOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasUserOverlap - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// Create создает новый слот (административная операция)
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("category_id", "start_time", "end_time").
		Values(slot.Category.ID, slot.StartTime, slot.EndTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// Delete удаляет слот (административная операция)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSlot сканирует одну строку выборки слота
func (r *Repository) scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime
	var bookerID sql.NullInt64
	var bookerUsername, bookerFirstName, bookerLastName sql.NullString

	err := row.Scan(
		&slot.ID,
		&slot.StartTime,
		&slot.EndTime,
		&createdAt,
		&updatedAt,
		&slot.Category.ID,
		&slot.Category.Name,
		&bookerID,
		&bookerUsername,
		&bookerFirstName,
		&bookerLastName,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	if bookerID.Valid {
		slot.BookedBy = &domain.User{
			ID:        bookerID.Int64,
			Username:  bookerUsername.String,
			FirstName: bookerFirstName.String,
			LastName:  bookerLastName.String,
		}
	}

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		slot, err := r.scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
