package get_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/directory/fixtures"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/metrics"
)

func TestHandle(t *testing.T) {
	store := appointmentRepo.NewStore()
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	h := NewHandler(appointments.NewService(store, fixtures.NewDemoDirectory(), m, logger.NewNop()), logger.NewNop())

	created, err := store.Add(context.Background(), domain.AppointmentInput{
		Date:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		ProfessionalID: "1",
		Clients:        []domain.ClientRef{{ClientID: "1"}},
		Services:       []domain.ServiceLine{{ServiceID: "1"}},
	})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+string(created.ID), nil)
		r = mux.SetURLVars(r, map[string]string{"appointmentId": string(created.ID)})
		w := httptest.NewRecorder()

		h.Handle(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.AppointmentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(created.ID), resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("not found", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/missing", nil)
		r = mux.SetURLVars(r, map[string]string{"appointmentId": "missing"})
		w := httptest.NewRecorder()

		h.Handle(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), msgNotFound)
	})
}
