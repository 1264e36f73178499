package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-SalonCalendar/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgDateRequired       = "La fecha es obligatoria"
	msgStartTimeRequired  = "La hora de inicio es obligatoria"
	msgNoClients          = "Debes seleccionar un cliente"
	msgNoServices         = "Debes seleccionar al menos un servicio"
	msgInvalidDeposit     = "depósito inválido: tipo fixed o percentage, monto no negativo, porcentaje hasta 100"
	msgInvalidExtraCharge = "cargo extra inválido"
	msgNotesTooLong       = "las notas son demasiado largas"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, models.ErrInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrDateRequired):
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, createAppointment.ErrInvalidStartTime):
			handlers.RespondBadRequest(w, msgStartTimeRequired)

		case errors.Is(err, createAppointment.ErrNoClients):
			handlers.RespondBadRequest(w, msgNoClients)

		case errors.Is(err, createAppointment.ErrNoServices):
			handlers.RespondBadRequest(w, msgNoServices)

		case errors.Is(err, createAppointment.ErrInvalidDeposit):
			handlers.RespondBadRequest(w, msgInvalidDeposit)

		case errors.Is(err, createAppointment.ErrInvalidExtraCharge):
			handlers.RespondBadRequest(w, msgInvalidExtraCharge)

		case errors.Is(err, createAppointment.ErrNotesTooLong):
			handlers.RespondBadRequest(w, msgNotesTooLong)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: error=%v", err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /appointments - Validation failed: %v", err)
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, status=%s",
		result.Appointment.ID, result.Appointment.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
