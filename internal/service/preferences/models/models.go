package models

import (
	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	slotModels "github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
)

// UpdatePreferencesRequest запрос на полную замену набора интересующих категорий
type UpdatePreferencesRequest struct {
	InterestedCategoryIDs []int64 `json:"interested_category_ids"`
}

// ProfileResponse проекция профиля пользователя
type ProfileResponse struct {
	User                 slotModels.UserResponse       `json:"user"`
	InterestedCategories []slotModels.CategoryResponse `json:"interested_categories"`
}

// FromDomainProfile конвертирует domain профиль и пользователя в DTO
func FromDomainProfile(u *domain.User, p *domain.UserProfile) *ProfileResponse {
	categories := make([]slotModels.CategoryResponse, 0, len(p.InterestedCategories))
	for i := range p.InterestedCategories {
		categories = append(categories, slotModels.FromDomainCategory(&p.InterestedCategories[i]))
	}

	return &ProfileResponse{
		User:                 *slotModels.FromDomainUser(u),
		InterestedCategories: categories,
	}
}
