package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeManager выполняет fn на одном инстансе в памяти и считает записи
type fakeManager struct {
	inst  *domain.Instance
	saves int
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

type fixedPicker struct{ n int }

func (f *fixedPicker) Intn(n int) int { return f.n % n }

func parseDate(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return ts
}

func newTestUseCase(t *testing.T, inst *domain.Instance, now string) (*UseCase, *fakeManager) {
	t.Helper()
	mgr := &fakeManager{inst: inst}
	uc := NewUseCase(mgr, nopLogger{})
	uc.timeProvider = &fixedTime{t: parseDate(t, now)}
	uc.randomPicker = &fixedPicker{}
	return uc, mgr
}

func testInstance() *domain.Instance {
	return &domain.Instance{
		Coupons:      []domain.Coupon{},
		Appointments: []domain.Appointment{},
		Availability: map[string]*domain.DayAvailability{
			"2025-10-20": {IsAvailable: true, Slots: map[string]bool{"10:00": true, "11:00": true}},
		},
	}
}

func TestExecute_CreatesAppointmentAndClosesSlot(t *testing.T) {
	inst := testInstance()
	uc, mgr := newTestUseCase(t, inst, "2025-06-01")

	resp, err := uc.Execute(context.Background(), &Request{
		InstanceID:      "salon-1",
		Date:            "2025-10-20",
		Time:            "10:00",
		ClientName:      "Alice",
		Phone:           "+1234567",
		IsAdminCreation: true,
	})
	require.NoError(t, err)

	assert.Equal(t, parseDate(t, "2025-06-01").UnixMilli(), resp.ID)
	assert.Equal(t, []string{}, resp.Notes)
	assert.Nil(t, resp.AwardedCoupon)

	require.Len(t, inst.Appointments, 1)
	assert.False(t, inst.Availability["2025-10-20"].Slots["10:00"])
	assert.True(t, inst.Availability["2025-10-20"].Slots["11:00"])
	assert.Equal(t, 1, mgr.saves)
}

func TestExecute_ValidationFailure(t *testing.T) {
	uc, mgr := newTestUseCase(t, testInstance(), "2025-06-01")

	_, err := uc.Execute(context.Background(), &Request{
		InstanceID: "salon-1",
		Date:       "2025-10-20",
		Time:       "10:00",
		ClientName: "Alice",
		// телефон отсутствует
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, mgr.saves)
}

func TestExecute_RedeemsCoupon(t *testing.T) {
	inst := testInstance()
	inst.Coupons = []domain.Coupon{
		{Code: "SAVE10", Discount: 10, UsesLeft: 2, ExpiresAt: "2025-12-31"},
	}
	uc, _ := newTestUseCase(t, inst, "2025-06-01")

	resp, err := uc.Execute(context.Background(), &Request{
		InstanceID:      "salon-1",
		Date:            "2025-10-20",
		Time:            "10:00",
		ClientName:      "Alice",
		Phone:           "+1234567",
		CouponCode:      "SAVE10",
		IsAdminCreation: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "SAVE10", resp.CouponCode)
	assert.Equal(t, 1, inst.Coupons[0].UsesLeft)
}

func TestExecute_CouponFailureAbortsEverything(t *testing.T) {
	inst := testInstance()
	inst.Coupons = []domain.Coupon{
		{Code: "DEAD", Discount: 10, UsesLeft: 0, ExpiresAt: "2025-12-31"},
	}
	uc, mgr := newTestUseCase(t, inst, "2025-06-01")

	cases := []struct {
		code    string
		wantErr error
	}{
		{"NOPE", ErrCouponNotFound},
		{"DEAD", ErrCouponExhausted},
	}
	for _, tc := range cases {
		_, err := uc.Execute(context.Background(), &Request{
			InstanceID: "salon-1",
			Date:       "2025-10-20",
			Time:       "10:00",
			ClientName: "Alice",
			Phone:      "+1234567",
			CouponCode: tc.code,
		})
		assert.ErrorIs(t, err, tc.wantErr)
	}

	// Ни записи, ни закрытого слота, ни сохранения
	assert.Empty(t, inst.Appointments)
	assert.True(t, inst.Availability["2025-10-20"].Slots["10:00"])
	assert.Equal(t, 0, mgr.saves)
}

func TestExecute_ExpiredCouponRejected(t *testing.T) {
	inst := testInstance()
	inst.Coupons = []domain.Coupon{
		{Code: "OLD", Discount: 10, UsesLeft: 5, ExpiresAt: "2024-01-01"},
	}
	uc, _ := newTestUseCase(t, inst, "2025-06-01")

	_, err := uc.Execute(context.Background(), &Request{
		InstanceID: "salon-1",
		Date:       "2025-10-20",
		Time:       "10:00",
		ClientName: "Alice",
		Phone:      "+1234567",
		CouponCode: "OLD",
	})
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestExecute_ClientCreationAwardsRotationCoupon(t *testing.T) {
	inst := testInstance()
	inst.Coupons = []domain.Coupon{
		{Code: "OUT", Discount: 5, UsesLeft: 3, ExpiresAt: "2025-12-31", InRotation: false},
		{Code: "WHEEL", Discount: 20, UsesLeft: 3, ExpiresAt: "2025-12-31", InRotation: true},
	}
	uc, _ := newTestUseCase(t, inst, "2025-06-01")

	resp, err := uc.Execute(context.Background(), &Request{
		InstanceID: "salon-1",
		Date:       "2025-10-20",
		Time:       "10:00",
		ClientName: "Alice",
		Phone:      "+1234567",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.AwardedCoupon)
	assert.Equal(t, "WHEEL", resp.AwardedCoupon.Code)
	assert.Equal(t, 20, resp.AwardedCoupon.Discount)

	// Награда - снимок: счетчик выбранного купона не уменьшается
	assert.Equal(t, 3, inst.Coupons[1].UsesLeft)
}

func TestExecute_AdminCreationSkipsAward(t *testing.T) {
	inst := testInstance()
	inst.Coupons = []domain.Coupon{
		{Code: "WHEEL", Discount: 20, UsesLeft: 3, ExpiresAt: "2025-12-31", InRotation: true},
	}
	uc, _ := newTestUseCase(t, inst, "2025-06-01")

	resp, err := uc.Execute(context.Background(), &Request{
		InstanceID:      "salon-1",
		Date:            "2025-10-20",
		Time:            "10:00",
		ClientName:      "Alice",
		Phone:           "+1234567",
		IsAdminCreation: true,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.AwardedCoupon)
}

func TestExecute_DoubleBookingStillSucceeds(t *testing.T) {
	// Проверка доступности рекомендательная: вторая запись на тот же слот
	// проходит, хотя слот уже закрыт. Фиксируем известный пробел.
	inst := testInstance()
	uc, _ := newTestUseCase(t, inst, "2025-06-01")

	req := &Request{
		InstanceID:      "salon-1",
		Date:            "2025-10-20",
		Time:            "10:00",
		ClientName:      "Alice",
		Phone:           "+1234567",
		IsAdminCreation: true,
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second := *req
	second.ClientName = "Bob"
	_, err = uc.Execute(context.Background(), &second)
	require.NoError(t, err)

	assert.Len(t, inst.Appointments, 2)
}

func TestExecute_UnknownSlotStillSucceeds(t *testing.T) {
	inst := testInstance()
	uc, _ := newTestUseCase(t, inst, "2025-06-01")

	_, err := uc.Execute(context.Background(), &Request{
		InstanceID:      "salon-1",
		Date:            "2099-01-01",
		Time:            "23:00",
		ClientName:      "Alice",
		Phone:           "+1234567",
		IsAdminCreation: true,
	})
	require.NoError(t, err)

	require.Len(t, inst.Appointments, 1)
	assert.NotContains(t, inst.Availability, "2099-01-01")
}
