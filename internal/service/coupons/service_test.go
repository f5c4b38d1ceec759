package coupons

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/coupons/models"
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

func newTestService(inst *domain.Instance, now string) (*Service, *fakeManager) {
	mgr := &fakeManager{inst: inst}
	svc := NewService(mgr, nopLogger{})
	ts, _ := time.Parse(domain.DateFormat, now)
	svc.timeProvider = &fixedTime{t: ts}
	return svc, mgr
}

func TestListPublic_FiltersInactive(t *testing.T) {
	inst := &domain.Instance{Coupons: []domain.Coupon{
		{Code: "LIVE", Discount: 15, UsesLeft: 3, ExpiresAt: "2025-12-31"},
		{Code: "DEAD", Discount: 20, UsesLeft: 0, ExpiresAt: "2025-12-31"},
		{Code: "OLD", Discount: 25, UsesLeft: 3, ExpiresAt: "2024-01-01"},
	}}
	svc, _ := newTestService(inst, "2025-06-01")

	result, err := svc.ListPublic(context.Background(), "salon-1")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "LIVE", result[0].Code)
}

func TestCreate_RequiresAllFields(t *testing.T) {
	svc, mgr := newTestService(&domain.Instance{}, "2025-06-01")

	_, err := svc.Create(context.Background(), "salon-1", &models.CreateCouponRequest{
		Code: "SAVE10", Discount: 10, UsesLeft: 0, ExpiresAt: "2025-12-31",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, mgr.saves)
}

func TestCreate_RejectsDuplicateCode(t *testing.T) {
	inst := &domain.Instance{Coupons: []domain.Coupon{
		{Code: "SAVE10", Discount: 10, UsesLeft: 5, ExpiresAt: "2025-12-31"},
	}}
	svc, mgr := newTestService(inst, "2025-06-01")

	_, err := svc.Create(context.Background(), "salon-1", &models.CreateCouponRequest{
		Code: "SAVE10", Discount: 20, UsesLeft: 3, ExpiresAt: "2026-12-31",
	})
	assert.ErrorIs(t, err, ErrCouponExists)
	assert.Len(t, inst.Coupons, 1)
	assert.Equal(t, 0, mgr.saves)
}

func TestCreate_NewCouponOutOfRotation(t *testing.T) {
	inst := &domain.Instance{Coupons: []domain.Coupon{}}
	svc, mgr := newTestService(inst, "2025-06-01")

	result, err := svc.Create(context.Background(), "salon-1", &models.CreateCouponRequest{
		Code: "WELCOME", Discount: 15, UsesLeft: 10, ExpiresAt: "2026-12-31",
	})
	require.NoError(t, err)

	assert.False(t, result.InRotation)
	assert.Equal(t, 1, mgr.saves)
	require.Len(t, inst.Coupons, 1)
}

func TestUpdate_RejectsNegativeUses(t *testing.T) {
	inst := &domain.Instance{Coupons: []domain.Coupon{
		{Code: "SAVE10", Discount: 10, UsesLeft: 5, ExpiresAt: "2025-12-31"},
	}}
	svc, mgr := newTestService(inst, "2025-06-01")

	_, err := svc.Update(context.Background(), "salon-1", "SAVE10", &models.UpdateCouponRequest{
		UsesLeft: ptr.Ptr(-1),
	})
	assert.ErrorIs(t, err, ErrNegativeUses)
	assert.Equal(t, 5, inst.Coupons[0].UsesLeft)
	assert.Equal(t, 0, mgr.saves)
}

func TestUpdate_PatchesFields(t *testing.T) {
	inst := &domain.Instance{Coupons: []domain.Coupon{
		{Code: "SAVE10", Discount: 10, UsesLeft: 5, ExpiresAt: "2025-12-31"},
	}}
	svc, _ := newTestService(inst, "2025-06-01")

	result, err := svc.Update(context.Background(), "salon-1", "SAVE10", &models.UpdateCouponRequest{
		UsesLeft:   ptr.Ptr(0),
		InRotation: ptr.Ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.UsesLeft)
	assert.True(t, result.InRotation)
	assert.Equal(t, "2025-12-31", result.ExpiresAt)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService(&domain.Instance{}, "2025-06-01")

	_, err := svc.Update(context.Background(), "salon-1", "NOPE", &models.UpdateCouponRequest{})
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestDelete_Idempotent(t *testing.T) {
	inst := &domain.Instance{Coupons: []domain.Coupon{
		{Code: "SAVE10", Discount: 10, UsesLeft: 5, ExpiresAt: "2025-12-31"},
	}}
	svc, mgr := newTestService(inst, "2025-06-01")

	require.NoError(t, svc.Delete(context.Background(), "salon-1", "SAVE10"))
	assert.Empty(t, inst.Coupons)

	// Повторное удаление - не ошибка
	require.NoError(t, svc.Delete(context.Background(), "salon-1", "SAVE10"))
	assert.Equal(t, 2, mgr.saves)
}

func TestStats(t *testing.T) {
	inst := &domain.Instance{
		Coupons: []domain.Coupon{
			{Code: "LIVE", Discount: 10, UsesLeft: 5, ExpiresAt: "2025-12-31"},
			{Code: "DEAD", Discount: 10, UsesLeft: 0, ExpiresAt: "2025-12-31"},
		},
		Appointments: []domain.Appointment{
			{ID: 1, CouponCode: "LIVE"},
			{ID: 2, AwardedCoupon: &domain.CouponGrant{Code: "LIVE"}},
			{ID: 3, CouponCode: "LIVE", AwardedCoupon: &domain.CouponGrant{Code: "DEAD"}},
			{ID: 4},
		},
	}
	svc, _ := newTestService(inst, "2025-06-01")

	stats, err := svc.Stats(context.Background(), "salon-1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCouponTypes)
	assert.Equal(t, 2, stats.CouponsRedeemed)
	assert.Equal(t, 2, stats.CouponsAwarded)
	assert.Equal(t, 1, stats.ActiveCouponTypes)
}
