package domain

import "time"

// TimeSlot represents a bookable time interval tied to a category
type TimeSlot struct {
	ID        int64
	Category  Category
	StartTime time.Time
	EndTime   time.Time

	// BookedBy владелец бронирования, nil = слот свободен
	BookedBy *User

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked returns true if the slot is currently booked
func (s *TimeSlot) IsBooked() bool {
	return s.BookedBy != nil
}

// IsBookedBy returns true if the slot is booked by the given user
func (s *TimeSlot) IsBookedBy(userID int64) bool {
	return s.BookedBy != nil && s.BookedBy.ID == userID
}

// IsPast returns true if the slot starts before the given moment
func (s *TimeSlot) IsPast(now time.Time) bool {
	return s.StartTime.Before(now)
}

// Overlaps проверяет реальное пересечение интервалов двух слотов
// Используются строгие неравенства: граничащие слоты (конец одного равен
// началу другого) пересечением не считаются
func (s *TimeSlot) Overlaps(other *TimeSlot) bool {
	return s.StartTime.Before(other.EndTime) && s.EndTime.After(other.StartTime)
}

// SlotFilter фильтр для выборки слотов
// Нулевые значения означают отсутствие соответствующего фильтра
type SlotFilter struct {
	WeekStart   *time.Time // Начало недельного окна (опционально)
	CategoryIDs []int64    // Фильтр по категориям (опционально, пустой = все категории)
}

// WeekEnd возвращает конец недельного окна [WeekStart, WeekStart + 7 дней)
// Паникует при nil WeekStart, вызывающий обязан проверить фильтр
func (f *SlotFilter) WeekEnd() time.Time {
	return f.WeekStart.AddDate(0, 0, DaysInWeek)
}
