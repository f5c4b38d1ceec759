package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

// Service сервис каталога: CRUD над услугами и категориями.
// Кросс-сущностных инвариантов нет, кроме уникальности идентификаторов;
// ссылки услуг на категории не проверяются.
type Service struct {
	manager      InstanceManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(manager InstanceManager, logger Logger) *Service {
	return &Service{
		manager:      manager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListCatalog возвращает услуги вместе с категориями одним ответом
func (s *Service) ListCatalog(ctx context.Context, instanceID string) (*models.CatalogResponse, error) {
	var result *models.CatalogResponse
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		result = &models.CatalogResponse{
			Services:   models.FromDomainServiceList(inst.Services),
			Categories: models.FromDomainCategoryList(inst.Categories),
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ListCatalog: instance=%s: %v", instanceID, err)
		return nil, fmt.Errorf("%w: ListCatalog: %v", ErrInternal, err)
	}

	return result, nil
}

// CreateService создает услугу. Имя, цена, длительность и категория
// обязательны; идентификатор берется из текущего времени в миллисекундах.
func (s *Service) CreateService(ctx context.Context, instanceID string, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if req.Name == "" || req.Price == "" || req.Duration == "" || req.Category == "" {
		s.logger.Warn("CreateService: missing required fields for instance=%s", instanceID)
		return nil, fmt.Errorf("%w: missing required service fields", ErrInvalidInput)
	}

	features := req.Features
	if features == nil {
		features = []string{}
	}
	icon := req.Icon
	if icon == "" {
		icon = domain.DefaultServiceIcon
	}

	var result *models.ServiceResponse
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		service := domain.Service{
			ID:          s.timeProvider.Now().UnixMilli(),
			Name:        req.Name,
			Icon:        icon,
			Description: req.Description,
			Price:       req.Price,
			Duration:    req.Duration,
			Category:    req.Category,
			IsPopular:   req.IsPopular,
			Features:    features,
		}
		inst.Services = append(inst.Services, service)
		result = models.FromDomainService(&service)
		return nil
	})
	if err != nil {
		s.logger.Error("CreateService: instance=%s: %v", instanceID, err)
		return nil, fmt.Errorf("%w: CreateService: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service id=%d created in instance=%s", result.ID, instanceID)
	return result, nil
}

// UpdateService заменяет только переданные поля, сохраняя остальные
func (s *Service) UpdateService(ctx context.Context, instanceID string, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	var result *models.ServiceResponse
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		idx := inst.FindService(id)
		if idx < 0 {
			return ErrServiceNotFound
		}

		service := &inst.Services[idx]
		if req.Name != nil {
			service.Name = *req.Name
		}
		if req.Description != nil {
			service.Description = *req.Description
		}
		if req.Price != nil {
			service.Price = *req.Price
		}
		if req.Duration != nil {
			service.Duration = *req.Duration
		}
		if req.Category != nil {
			service.Category = *req.Category
		}
		if req.Features != nil {
			service.Features = *req.Features
		}
		if req.Icon != nil {
			service.Icon = *req.Icon
		}
		if req.IsPopular != nil {
			service.IsPopular = *req.IsPopular
		}

		result = models.FromDomainService(service)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found in instance=%s", id, instanceID)
			return nil, err
		}
		s.logger.Error("UpdateService: instance=%s id=%d: %v", instanceID, id, err)
		return nil, fmt.Errorf("%w: UpdateService: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: service id=%d updated in instance=%s", id, instanceID)
	return result, nil
}

// DeleteService удаляет услугу по идентификатору
func (s *Service) DeleteService(ctx context.Context, instanceID string, id int64) error {
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		initial := len(inst.Services)
		kept := inst.Services[:0]
		for _, svc := range inst.Services {
			if svc.ID != id {
				kept = append(kept, svc)
			}
		}
		inst.Services = kept

		if len(inst.Services) == initial {
			return ErrServiceNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found in instance=%s", id, instanceID)
			return err
		}
		s.logger.Error("DeleteService: instance=%s id=%d: %v", instanceID, id, err)
		return fmt.Errorf("%w: DeleteService: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: service id=%d deleted from instance=%s", id, instanceID)
	return nil
}

// ListCategories возвращает все категории инстанса
func (s *Service) ListCategories(ctx context.Context, instanceID string) ([]models.CategoryResponse, error) {
	var result []models.CategoryResponse
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		result = models.FromDomainCategoryList(inst.Categories)
		return nil
	})
	if err != nil {
		s.logger.Error("ListCategories: instance=%s: %v", instanceID, err)
		return nil, fmt.Errorf("%w: ListCategories: %v", ErrInternal, err)
	}

	return result, nil
}

// CreateCategory создает категорию; дубликат идентификатора отклоняется
func (s *Service) CreateCategory(ctx context.Context, instanceID string, req *models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	if req.ID == "" || req.Name == "" {
		s.logger.Warn("CreateCategory: missing id or name for instance=%s", instanceID)
		return nil, fmt.Errorf("%w: id and name are required", ErrInvalidInput)
	}

	var result *models.CategoryResponse
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		if inst.FindCategory(req.ID) >= 0 {
			return ErrCategoryExists
		}

		category := domain.Category{ID: req.ID, Name: req.Name}
		inst.Categories = append(inst.Categories, category)
		result = models.FromDomainCategory(&category)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCategoryExists) {
			s.logger.Warn("CreateCategory: category id=%s already exists in instance=%s", req.ID, instanceID)
			return nil, err
		}
		s.logger.Error("CreateCategory: instance=%s id=%s: %v", instanceID, req.ID, err)
		return nil, fmt.Errorf("%w: CreateCategory: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: category id=%s created in instance=%s", req.ID, instanceID)
	return result, nil
}

// UpdateCategory обновляет имя категории и позволяет сменить её
// идентификатор. Новый идентификатор проверяется на коллизию, но услуги,
// ссылающиеся на старый, не обновляются.
func (s *Service) UpdateCategory(ctx context.Context, instanceID, id string, req *models.UpdateCategoryRequest) (*models.CategoryResponse, error) {
	var result *models.CategoryResponse
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		idx := inst.FindCategory(id)
		if idx < 0 {
			return ErrCategoryNotFound
		}

		if req.NewID != "" && req.NewID != id && inst.FindCategory(req.NewID) >= 0 {
			return ErrCategoryExists
		}

		category := &inst.Categories[idx]
		if req.NewID != "" {
			category.ID = req.NewID
		}
		if req.Name != "" {
			category.Name = req.Name
		}

		result = models.FromDomainCategory(category)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			s.logger.Warn("UpdateCategory: category id=%s not found in instance=%s", id, instanceID)
			return nil, err
		case errors.Is(err, ErrCategoryExists):
			s.logger.Warn("UpdateCategory: new category id=%s already exists in instance=%s", req.NewID, instanceID)
			return nil, err
		default:
			s.logger.Error("UpdateCategory: instance=%s id=%s: %v", instanceID, id, err)
			return nil, fmt.Errorf("%w: UpdateCategory: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateCategory: category id=%s updated in instance=%s", id, instanceID)
	return result, nil
}

// DeleteCategory удаляет категорию. Ссылочная целостность не
// проверяется: услуги могут остаться со ссылкой на несуществующую
// категорию.
func (s *Service) DeleteCategory(ctx context.Context, instanceID, id string) error {
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		initial := len(inst.Categories)
		kept := inst.Categories[:0]
		for _, c := range inst.Categories {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		inst.Categories = kept

		if len(inst.Categories) == initial {
			return ErrCategoryNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			s.logger.Warn("DeleteCategory: category id=%s not found in instance=%s", id, instanceID)
			return err
		}
		s.logger.Error("DeleteCategory: instance=%s id=%s: %v", instanceID, id, err)
		return fmt.Errorf("%w: DeleteCategory: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCategory: category id=%s deleted from instance=%s", id, instanceID)
	return nil
}
