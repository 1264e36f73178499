package create_appointment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/directory/fixtures"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	createAppointment "github.com/m04kA/SMC-SalonCalendar/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/metrics"
)

func newTestHandler() (*Handler, *appointmentRepo.Store) {
	store := appointmentRepo.NewStore()
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	uc := createAppointment.NewUseCase(store, fixtures.NewDemoDirectory(), m, logger.NewNop())
	return NewHandler(uc, logger.NewNop()), store
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	h, store := newTestHandler()

	w := post(h, `{
		"date": "2024-03-15",
		"startTime": "10:00",
		"professionalId": "1",
		"clients": [{"clientId": "1", "isGuest": false}],
		"services": [{"serviceId": "1", "deposit": {"type": "fixed", "amount": 200}}],
		"notes": "Primera visita"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, "Primera visita", *resp.Notes)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, 1, store.Count())
}

func TestHandle_CatalogDepositsAndWarnings(t *testing.T) {
	h, _ := newTestHandler()

	w := post(h, `{
		"date": "2024-03-15",
		"startTime": "9:30",
		"professionalId": "7",
		"clients": [{"clientId": "2"}],
		"services": [{"serviceId": "3"}],
		"useCatalogDeposits": true
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "09:30", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.Services[0].Deposit)
	assert.Equal(t, 200.0, resp.Services[0].Deposit.Amount)
	assert.Equal(t, []string{"professional id=7 not found"}, resp.Warnings)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "malformed json", body: `{"date":`, message: msgInvalidRequestBody},
		{name: "bad date", body: `{"date":"15/03/2024","startTime":"10:00"}`, message: msgInvalidDate},
		{name: "bad time", body: `{"date":"2024-03-15","startTime":"10h"}`, message: msgInvalidTime},
		{name: "missing date", body: `{"startTime":"10:00","clients":[{"clientId":"1"}],"services":[{"serviceId":"1"}]}`, message: msgDateRequired},
		{name: "missing time", body: `{"date":"2024-03-15","clients":[{"clientId":"1"}],"services":[{"serviceId":"1"}]}`, message: msgStartTimeRequired},
		{name: "no clients", body: `{"date":"2024-03-15","startTime":"10:00","services":[{"serviceId":"1"}]}`, message: msgNoClients},
		{name: "no services", body: `{"date":"2024-03-15","startTime":"10:00","clients":[{"clientId":"1"}]}`, message: msgNoServices},
		{
			name:    "bad deposit",
			body:    `{"date":"2024-03-15","startTime":"10:00","clients":[{"clientId":"1"}],"services":[{"serviceId":"2","deposit":{"type":"percentage","amount":101}}]}`,
			message: msgInvalidDeposit,
		},
		{
			name:    "negative extra charge",
			body:    `{"date":"2024-03-15","startTime":"10:00","clients":[{"clientId":"1"}],"services":[{"serviceId":"1"}],"extraCharge":{"description":"x","amount":-10}}`,
			message: msgInvalidExtraCharge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestHandler()
			w := post(h, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
			assert.Zero(t, store.Count())
		})
	}
}
