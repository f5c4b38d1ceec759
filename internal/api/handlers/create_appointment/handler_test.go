package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	gotReq *createAppointment.Request
	resp   *createAppointment.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/instances/{instanceId}/appointments", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, r *mux.Router, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/instances/salon-1/appointments", bytes.NewReader(raw))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:         1700000000000,
		Date:       "2025-10-20",
		Time:       "10:00",
		ClientName: "Alice",
		Phone:      "+1",
		Notes:      []string{},
	}}
	rec := doRequest(t, newTestRouter(uc), CreateAppointmentRequest{
		Date: "2025-10-20", Time: "10:00", ClientName: "Alice", Phone: "+1",
	}, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1700000000000), resp.ID)
	assert.Equal(t, []string{}, resp.Notes)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "salon-1", uc.gotReq.InstanceID)
	assert.False(t, uc.gotReq.IsAdminCreation)
}

func TestHandle_AdminHeadersMarkAdminCreation(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{ID: 1, Notes: []string{}}}
	rec := doRequest(t, newTestRouter(uc), CreateAppointmentRequest{
		Date: "2025-10-20", Time: "10:00", ClientName: "Alice", Phone: "+1",
	}, map[string]string{
		middleware.HeaderAuthUser: "admin",
		middleware.HeaderAuthRole: middleware.RoleAdmin,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, uc.gotReq.IsAdminCreation)
}

func TestHandle_CouponErrorsMapToBadRequest(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", createAppointment.ErrCouponNotFound},
		{"expired", createAppointment.ErrCouponExpired},
		{"exhausted", createAppointment.ErrCouponExhausted},
		{"validation", createAppointment.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.err}
			rec := doRequest(t, newTestRouter(uc), CreateAppointmentRequest{
				Date: "2025-10-20", Time: "10:00", ClientName: "Alice", Phone: "+1", CouponCode: "SAVE10",
			}, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrInternal}
	rec := doRequest(t, newTestRouter(uc), CreateAppointmentRequest{
		Date: "2025-10-20", Time: "10:00", ClientName: "Alice", Phone: "+1",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/instances/{instanceId}/appointments", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/instances/salon-1/appointments",
		bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}
