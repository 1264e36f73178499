package list_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-SalonCalendar/internal/directory/fixtures"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/selection"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/metrics"
)

var testDay = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Handler, *selection.Registry) {
	t.Helper()

	store := appointmentRepo.NewStore()
	ctx := context.Background()
	_, err := store.Add(ctx, domain.AppointmentInput{
		Date:           testDay,
		StartTime:      "10:00",
		ProfessionalID: "1",
		Clients:        []domain.ClientRef{{ClientID: "1"}},
		Services:       []domain.ServiceLine{{ServiceID: "1"}},
	})
	require.NoError(t, err)
	_, err = store.Add(ctx, domain.AppointmentInput{
		Date:           testDay.AddDate(0, 0, 1),
		StartTime:      "14:30",
		ProfessionalID: "2",
		Clients:        []domain.ClientRef{{ClientID: "2"}},
		Services:       []domain.ServiceLine{{ServiceID: "3"}},
	})
	require.NoError(t, err)

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	service := appointments.NewService(store, fixtures.NewDemoDirectory(), m, logger.NewNop())
	sessions := selection.NewRegistry()
	return NewHandler(service, sessions, logger.NewNop()), sessions
}

func list(t *testing.T, h *Handler, target, sessionID string) *models.AppointmentListResponse {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, target, nil)
	r = r.WithContext(middleware.WithSessionID(r.Context(), sessionID))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AppointmentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp
}

func TestHandle_Filters(t *testing.T) {
	h, _ := setup(t)

	assert.Equal(t, 2, list(t, h, "/api/v1/appointments", "s1").Total)
	assert.Equal(t, 1, list(t, h, "/api/v1/appointments?search=ondas", "s1").Total)
	assert.Equal(t, 1, list(t, h, "/api/v1/appointments?date=2024-03-15", "s1").Total)
	assert.Equal(t, 0, list(t, h, "/api/v1/appointments?search=ondas&date=2024-03-15", "s1").Total)
}

func TestHandle_SessionSearchTerm(t *testing.T) {
	h, sessions := setup(t)
	sessions.Session("s1").SetSearchTerm("Isabella")

	resp := list(t, h, "/api/v1/appointments", "s1")
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "10:00", resp.Appointments[0].StartTime)

	// явный параметр важнее поиска сессии, даже пустой
	assert.Equal(t, 2, list(t, h, "/api/v1/appointments?search=", "s1").Total)

	// другая сессия не видит чужой поиск
	assert.Equal(t, 2, list(t, h, "/api/v1/appointments", "s2").Total)
}

func TestHandle_BadRequest(t *testing.T) {
	h, _ := setup(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=15-03-2024", nil)
	w := httptest.NewRecorder()
	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidDate)
}
