package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonScheduler/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeManager struct {
	inst  *domain.Instance
	saves int
}

func (m *fakeManager) View(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error {
	return fn(m.inst)
}

func (m *fakeManager) Do(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error {
	if err := fn(m.inst); err != nil {
		return err
	}
	m.saves++
	return nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

func newTestService(inst *domain.Instance) (*Service, *fakeManager) {
	mgr := &fakeManager{inst: inst}
	svc := NewService(mgr, nopLogger{})
	svc.timeProvider = &fixedTime{t: time.UnixMilli(1700000000000)}
	return svc, mgr
}

func TestListCatalog_CombinedPayload(t *testing.T) {
	inst := &domain.Instance{
		Categories: domain.DefaultCategories(),
		Services:   domain.DefaultServices(),
	}
	svc, _ := newTestService(inst)

	result, err := svc.ListCatalog(context.Background(), "salon-1")
	require.NoError(t, err)

	assert.Len(t, result.Services, 3)
	assert.Len(t, result.Categories, 3)
}

func TestCreateService_Defaults(t *testing.T) {
	inst := &domain.Instance{Services: []domain.Service{}}
	svc, mgr := newTestService(inst)

	result, err := svc.CreateService(context.Background(), "salon-1", &models.CreateServiceRequest{
		Name:     "Nail Art",
		Price:    "$40",
		Duration: "30 min",
		Category: "special",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000000), result.ID)
	assert.Equal(t, domain.DefaultServiceIcon, result.Icon)
	assert.Equal(t, []string{}, result.Features)
	assert.Equal(t, 1, mgr.saves)
}

func TestCreateService_RequiresFields(t *testing.T) {
	svc, mgr := newTestService(&domain.Instance{})

	_, err := svc.CreateService(context.Background(), "salon-1", &models.CreateServiceRequest{
		Name: "Nail Art",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, mgr.saves)
}

func TestUpdateService_ReplacesOnlyProvidedFields(t *testing.T) {
	inst := &domain.Instance{Services: []domain.Service{
		{ID: 1, Name: "Manicure", Price: "$30", Description: "Classic"},
	}}
	svc, _ := newTestService(inst)

	result, err := svc.UpdateService(context.Background(), "salon-1", 1, &models.UpdateServiceRequest{
		Price: ptr.Ptr("$35"),
		// Переданная пустая строка заменяет значение, в отличие от записей
		Description: ptr.Ptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Manicure", result.Name)
	assert.Equal(t, "$35", result.Price)
	assert.Equal(t, "", result.Description)
}

func TestUpdateService_NotFound(t *testing.T) {
	svc, _ := newTestService(&domain.Instance{})

	_, err := svc.UpdateService(context.Background(), "salon-1", 99, &models.UpdateServiceRequest{})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteService(t *testing.T) {
	inst := &domain.Instance{Services: []domain.Service{{ID: 1, Name: "Manicure"}}}
	svc, _ := newTestService(inst)

	require.NoError(t, svc.DeleteService(context.Background(), "salon-1", 1))
	assert.Empty(t, inst.Services)

	err := svc.DeleteService(context.Background(), "salon-1", 1)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateCategory_RejectsDuplicate(t *testing.T) {
	inst := &domain.Instance{Categories: []domain.Category{{ID: "basic", Name: "Basic"}}}
	svc, mgr := newTestService(inst)

	_, err := svc.CreateCategory(context.Background(), "salon-1", &models.CreateCategoryRequest{
		ID: "basic", Name: "Another",
	})
	assert.ErrorIs(t, err, ErrCategoryExists)
	assert.Len(t, inst.Categories, 1)
	assert.Equal(t, 0, mgr.saves)
}

func TestUpdateCategory_RenameDoesNotCascade(t *testing.T) {
	inst := &domain.Instance{
		Categories: []domain.Category{{ID: "basic", Name: "Basic"}},
		Services:   []domain.Service{{ID: 1, Name: "Manicure", Category: "basic"}},
	}
	svc, _ := newTestService(inst)

	result, err := svc.UpdateCategory(context.Background(), "salon-1", "basic", &models.UpdateCategoryRequest{
		NewID: "essentials",
		Name:  "Essentials",
	})
	require.NoError(t, err)

	assert.Equal(t, "essentials", result.ID)
	assert.Equal(t, "Essentials", result.Name)

	// Услуги продолжают ссылаться на старый идентификатор
	assert.Equal(t, "basic", inst.Services[0].Category)
}

func TestUpdateCategory_NewIDCollision(t *testing.T) {
	inst := &domain.Instance{Categories: []domain.Category{
		{ID: "basic", Name: "Basic"},
		{ID: "premium", Name: "Premium"},
	}}
	svc, _ := newTestService(inst)

	_, err := svc.UpdateCategory(context.Background(), "salon-1", "basic", &models.UpdateCategoryRequest{
		NewID: "premium",
	})
	assert.ErrorIs(t, err, ErrCategoryExists)
}

func TestUpdateCategory_EmptyNameIgnored(t *testing.T) {
	inst := &domain.Instance{Categories: []domain.Category{{ID: "basic", Name: "Basic"}}}
	svc, _ := newTestService(inst)

	result, err := svc.UpdateCategory(context.Background(), "salon-1", "basic", &models.UpdateCategoryRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Basic", result.Name)
}

func TestDeleteCategory_NoReferentialGuard(t *testing.T) {
	inst := &domain.Instance{
		Categories: []domain.Category{{ID: "basic", Name: "Basic"}},
		Services:   []domain.Service{{ID: 1, Name: "Manicure", Category: "basic"}},
	}
	svc, _ := newTestService(inst)

	require.NoError(t, svc.DeleteCategory(context.Background(), "salon-1", "basic"))
	assert.Empty(t, inst.Categories)
	// Услуга остается со ссылкой на несуществующую категорию
	assert.Equal(t, "basic", inst.Services[0].Category)

	err := svc.DeleteCategory(context.Background(), "salon-1", "basic")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
