package models

import "github.com/m04kA/SMC-SalonScheduler/internal/domain"

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	IsPopular   bool     `json:"isPopular"`
}

// UpdateServiceRequest запрос на обновление услуги.
// Поля-указатели: nil означает "поле не менять"; переданное значение
// (включая пустую строку) заменяет существующее.
type UpdateServiceRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *string   `json:"price,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	IsPopular   *bool     `json:"isPopular,omitempty"`
}

// CreateCategoryRequest запрос на создание категории
type CreateCategoryRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UpdateCategoryRequest запрос на обновление категории.
// NewID позволяет переименовать идентификатор; ссылки услуг на старый id
// при этом не обновляются (известный пробел ссылочной целостности).
type UpdateCategoryRequest struct {
	Name  string `json:"name,omitempty"`
	NewID string `json:"newId,omitempty"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
	IsPopular   bool     `json:"isPopular"`
	Features    []string `json:"features"`
}

// CategoryResponse ответ с данными категории
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogResponse совместный ответ: услуги вместе с категориями
type CatalogResponse struct {
	Services   []ServiceResponse  `json:"services"`
	Categories []CategoryResponse `json:"categories"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	resp := &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Icon:        s.Icon,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Category:    s.Category,
		IsPopular:   s.IsPopular,
		Features:    s.Features,
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}

	return resp
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []domain.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(services))
	for i := range services {
		resp = append(resp, *FromDomainService(&services[i]))
	}
	return resp
}

// FromDomainCategory конвертирует domain модель в DTO
func FromDomainCategory(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name}
}

// FromDomainCategoryList конвертирует список категорий в DTO
func FromDomainCategoryList(categories []domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, *FromDomainCategory(&categories[i]))
	}
	return resp
}
