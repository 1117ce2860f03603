package models

import "github.com/m04kA/SMC-TimeslotService/internal/domain"

// CreateCategoryRequest запрос на создание категории
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse проекция категории
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse список категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainCategory конвертирует domain модель в DTO
func FromDomainCategory(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

// FromDomainCategoryList конвертирует список domain моделей в DTO
func FromDomainCategoryList(categories []*domain.Category) *CategoryListResponse {
	resp := &CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, c := range categories {
		if catResp := FromDomainCategory(c); catResp != nil {
			resp.Categories = append(resp.Categories, *catResp)
		}
	}
	return resp
}
