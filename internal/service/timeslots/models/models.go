package models

import (
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// Request модели

// CreateSlotRequest запрос на создание слота (административная операция)
type CreateSlotRequest struct {
	CategoryID int64     `json:"categoryId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// Response модели

// CategoryResponse проекция категории
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserResponse публичная проекция пользователя
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SlotResponse проекция временного слота
// BookedByUser показывает, принадлежит ли бронь текущему пользователю;
// для неаутентифицированного вызывающего всегда false
type SlotResponse struct {
	ID           int64            `json:"id"`
	Category     CategoryResponse `json:"category"`
	StartTime    string           `json:"start_time"` // RFC 3339
	EndTime      string           `json:"end_time"`   // RFC 3339
	BookedBy     *UserResponse    `json:"booked_by"`
	IsBooked     bool             `json:"is_booked"`
	BookedByUser bool             `json:"booked_by_user"`
}

// SlotListResponse список проекций слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainCategory конвертирует domain категорию в DTO
func FromDomainCategory(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

// FromDomainUser конвертирует domain пользователя в публичное DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// FromDomainSlot конвертирует domain слот в DTO
// viewerID - ID аутентифицированного пользователя, nil для анонимного
func FromDomainSlot(s *domain.TimeSlot, viewerID *int64) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:           s.ID,
		Category:     FromDomainCategory(&s.Category),
		StartTime:    s.StartTime.Format(time.RFC3339),
		EndTime:      s.EndTime.Format(time.RFC3339),
		BookedBy:     FromDomainUser(s.BookedBy),
		IsBooked:     s.IsBooked(),
		BookedByUser: viewerID != nil && s.IsBookedBy(*viewerID),
	}
}

// FromDomainSlotList конвертирует список domain слотов в DTO
func FromDomainSlotList(slots []*domain.TimeSlot, viewerID *int64) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		if resp := FromDomainSlot(s, viewerID); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
