package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
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

func TestListDates(t *testing.T) {
	inst := &domain.Instance{Availability: map[string]*domain.DayAvailability{
		"2025-10-20": {IsAvailable: true, Slots: map[string]bool{"10:00": true, "11:00": false}},
	}}
	svc := NewService(&fakeManager{inst: inst}, nopLogger{})

	result, err := svc.ListDates(context.Background(), "salon-1")
	require.NoError(t, err)

	day := result["2025-10-20"]
	assert.True(t, day.IsAvailable)
	// Календарь отдается как есть, включая закрытые слоты
	assert.Equal(t, map[string]bool{"10:00": true, "11:00": false}, day.AvailableSlots)
}

func TestListOpenSlots(t *testing.T) {
	inst := &domain.Instance{Availability: map[string]*domain.DayAvailability{
		"2025-10-20": {IsAvailable: true, Slots: map[string]bool{"14:00": true, "10:00": true, "11:00": false}},
	}}
	svc := NewService(&fakeManager{inst: inst}, nopLogger{})

	slots, err := svc.ListOpenSlots(context.Background(), "salon-1", "2025-10-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "14:00"}, slots)

	empty, err := svc.ListOpenSlots(context.Background(), "salon-1", "2099-01-01")
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAddSlot(t *testing.T) {
	inst := &domain.Instance{Availability: map[string]*domain.DayAvailability{}}
	mgr := &fakeManager{inst: inst}
	svc := NewService(mgr, nopLogger{})

	result, err := svc.AddSlot(context.Background(), "salon-1", "2025-10-20", "10:00")
	require.NoError(t, err)

	assert.Equal(t, "2025-10-20", result.Date)
	assert.Equal(t, "10:00", result.Time)
	assert.True(t, inst.Availability["2025-10-20"].Slots["10:00"])
	assert.Equal(t, 1, mgr.saves)
}

func TestAddSlot_RequiresDateAndTime(t *testing.T) {
	svc := NewService(&fakeManager{inst: &domain.Instance{}}, nopLogger{})

	_, err := svc.AddSlot(context.Background(), "salon-1", "", "10:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddSlot(context.Background(), "salon-1", "2025-10-20", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
