package instances

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// memStore документное хранилище в памяти
type memStore struct {
	doc     *domain.Document
	saves   int
	saveErr error
}

func (s *memStore) Load(ctx context.Context) (*domain.Document, error) {
	return s.doc, nil
}

func (s *memStore) Save(ctx context.Context, doc *domain.Document) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.doc = doc
	s.saves++
	return nil
}

func newMemStore() *memStore {
	return &memStore{doc: &domain.Document{Instances: map[string]*domain.Instance{}}}
}

func TestView_LazilyCreatesUnknownInstance(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store, "admin", nopLogger{})

	err := mgr.View(context.Background(), "new-salon", func(inst *domain.Instance) error {
		assert.Equal(t, "admin's Scheduler", inst.Name)
		require.Len(t, inst.Admins, 1)
		assert.Equal(t, domain.DefaultAdminPassword, inst.Admins[0].Password)
		assert.Len(t, inst.Categories, 3)
		assert.Len(t, inst.Services, 3)
		return nil
	})
	require.NoError(t, err)

	// Ленивое создание сохраняется сразу, даже при чтении
	assert.Equal(t, 1, store.saves)
	assert.Contains(t, store.doc.Instances, "new-salon")
}

func TestView_BackfillsLegacyCatalog(t *testing.T) {
	store := newMemStore()
	store.doc.Instances["legacy"] = &domain.Instance{
		Name:         "Legacy",
		Coupons:      []domain.Coupon{},
		Appointments: []domain.Appointment{},
		Availability: map[string]*domain.DayAvailability{},
	}
	mgr := NewManager(store, "admin", nopLogger{})

	err := mgr.View(context.Background(), "legacy", func(inst *domain.Instance) error {
		assert.Len(t, inst.Categories, 3)
		assert.Len(t, inst.Services, 3)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)
}

func TestDo_PersistsMutation(t *testing.T) {
	store := newMemStore()
	store.doc.Instances["salon-1"] = domain.NewInstance("admin")
	mgr := NewManager(store, "admin", nopLogger{})

	err := mgr.Do(context.Background(), "salon-1", func(inst *domain.Instance) error {
		inst.Coupons = append(inst.Coupons, domain.Coupon{Code: "SAVE10", UsesLeft: 5})
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.saves)
	assert.Len(t, store.doc.Instances["salon-1"].Coupons, 1)
}

func TestDo_FnErrorSkipsSave(t *testing.T) {
	store := newMemStore()
	store.doc.Instances["salon-1"] = domain.NewInstance("admin")
	mgr := NewManager(store, "admin", nopLogger{})

	wantErr := errors.New("boom")
	err := mgr.Do(context.Background(), "salon-1", func(inst *domain.Instance) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 0, store.saves)
}

func TestDo_SaveFailureWrapped(t *testing.T) {
	store := newMemStore()
	store.doc.Instances["salon-1"] = domain.NewInstance("admin")
	store.saveErr = errors.New("disk full")
	mgr := NewManager(store, "admin", nopLogger{})

	err := mgr.Do(context.Background(), "salon-1", func(inst *domain.Instance) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrSave)
}

func TestDo_ConcurrentMutationsAreSerialized(t *testing.T) {
	store := newMemStore()
	store.doc.Instances["salon-1"] = domain.NewInstance("admin")
	store.doc.Instances["salon-1"].Coupons = []domain.Coupon{
		{Code: "SAVE10", UsesLeft: 0, ExpiresAt: "2025-12-31"},
	}
	mgr := NewManager(store, "admin", nopLogger{})

	const workers = 50
	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_ = mgr.Do(context.Background(), "salon-1", func(inst *domain.Instance) error {
				inst.Coupons[0].UsesLeft++
				return nil
			})
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}

	// Без сериализации часть инкрементов терялась бы
	assert.Equal(t, workers, store.doc.Instances["salon-1"].Coupons[0].UsesLeft)
}
