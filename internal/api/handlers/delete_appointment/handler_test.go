package delete_appointment

import (
	"context"
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
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/metrics"
)

func del(h *Handler, id string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+id, nil)
	r = mux.SetURLVars(r, map[string]string{"appointmentId": id})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

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

	w := del(h, string(created.ID))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, 0, store.Count())

	w = del(h, string(created.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), msgNotFound)
}
