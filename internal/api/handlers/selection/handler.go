package selection

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
	selectionService "github.com/m04kA/SMC-SalonCalendar/internal/service/selection"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgMissingAppointmentID = "falta el ID de la cita"
	msgNotFound             = "cita no encontrada"
	msgSearchTooLong        = "el término de búsqueda es demasiado largo"
	msgNothingSelected      = "no hay citas seleccionadas"
)

// Handler обслуживает состояние выбора и поиска дашборда.
// Все методы работают с состоянием сессии из заголовка X-Session-ID.
type Handler struct {
	sessions     SessionRegistry
	appointments AppointmentService
	logger       Logger
}

func NewHandler(sessions SessionRegistry, appointments AppointmentService, logger Logger) *Handler {
	return &Handler{
		sessions:     sessions,
		appointments: appointments,
		logger:       logger,
	}
}

func (h *Handler) state(r *http.Request) (string, *selectionService.State) {
	sessionID, _ := middleware.GetSessionID(r.Context())
	return sessionID, h.sessions.Session(sessionID)
}

// GetState GET /api/v1/selection
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	_, state := h.state(r)
	handlers.RespondJSON(w, http.StatusOK, state.Snapshot())
}

// ToggleMode POST /api/v1/selection/mode
func (h *Handler) ToggleMode(w http.ResponseWriter, r *http.Request) {
	sessionID, state := h.state(r)
	enabled := state.ToggleSelectionMode()

	h.logger.Info("POST /selection/mode - Selection mode toggled: session=%s, enabled=%t", sessionID, enabled)
	handlers.RespondJSON(w, http.StatusOK, state.Snapshot())
}

// ToggleAppointment POST /api/v1/selection/appointments/{appointmentId}
// Выбрать можно только существующую запись, снять выбор можно с любой.
func (h *Handler) ToggleAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("POST /selection/appointments/{id} - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	id := domain.AppointmentID(appointmentID)
	sessionID, state := h.state(r)

	if !state.IsSelected(id) {
		if _, err := h.appointments.GetByID(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, appointments.ErrAppointmentNotFound):
				h.logger.Warn("POST /selection/appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
				handlers.RespondNotFound(w, msgNotFound)

			default:
				h.logger.Error("POST /selection/appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v", appointmentID, err)
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	selected := state.ToggleAppointment(id)

	h.logger.Info("POST /selection/appointments/{id} - Selection toggled: session=%s, appointment_id=%s, selected=%t",
		sessionID, appointmentID, selected)
	handlers.RespondJSON(w, http.StatusOK, ToggleAppointmentResponse{
		AppointmentID: appointmentID,
		Selected:      selected,
		Snapshot:      state.Snapshot(),
	})
}

// Clear DELETE /api/v1/selection
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID, state := h.state(r)
	state.Clear()

	h.logger.Info("DELETE /selection - Selection cleared: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, state.Snapshot())
}

// SetSearch PUT /api/v1/selection/search
func (h *Handler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req SetSearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /selection/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if utf8.RuneCountInString(req.SearchTerm) > domain.MaxSearchTermLength {
		h.logger.Warn("PUT /selection/search - Search term too long: length=%d", utf8.RuneCountInString(req.SearchTerm))
		handlers.RespondBadRequest(w, msgSearchTooLong)
		return
	}

	sessionID, state := h.state(r)
	state.SetSearchTerm(req.SearchTerm)

	h.logger.Info("PUT /selection/search - Search term updated: session=%s, term=%q", sessionID, state.SearchTerm())
	handlers.RespondJSON(w, http.StatusOK, state.Snapshot())
}

// DeleteSelected DELETE /api/v1/selection/appointments
// Удаляет выбранные записи и очищает выбор.
func (h *Handler) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	sessionID, state := h.state(r)

	ids := state.SelectedIDs()
	if len(ids) == 0 {
		h.logger.Warn("DELETE /selection/appointments - Nothing selected: session=%s", sessionID)
		handlers.RespondBadRequest(w, msgNothingSelected)
		return
	}

	result, err := h.appointments.DeleteMany(r.Context(), ids)
	if err != nil {
		h.logger.Error("DELETE /selection/appointments - Failed to delete appointments: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	state.Clear()

	h.logger.Info("DELETE /selection/appointments - Selected appointments deleted: session=%s, requested=%d, deleted=%d",
		sessionID, len(ids), result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, DeleteSelectedResponse{
		Requested: len(ids),
		Deleted:   result.Deleted,
		Snapshot:  state.Snapshot(),
	})
}
