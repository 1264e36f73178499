package get_payment_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	getPaymentSummary "github.com/m04kA/SMC-SalonCalendar/internal/usecase/get_payment_summary"
)

const (
	msgMissingAppointmentID = "falta el ID de la cita"
	msgNotFound             = "cita no encontrada"
	msgInvalidTip           = "la propina debe ser un número no negativo"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/payment-summary?tip=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("GET /appointments/{id}/payment-summary - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	req := &getPaymentSummary.Request{AppointmentID: domain.AppointmentID(appointmentID)}
	if tipStr := r.URL.Query().Get("tip"); tipStr != "" {
		tip, err := strconv.ParseFloat(tipStr, 64)
		if err != nil {
			h.logger.Warn("GET /appointments/{id}/payment-summary - Invalid tip: tip=%s", tipStr)
			handlers.RespondBadRequest(w, msgInvalidTip)
			return
		}
		req.Tip = tip
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getPaymentSummary.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id}/payment-summary - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getPaymentSummary.ErrInvalidTip):
			h.logger.Warn("GET /appointments/{id}/payment-summary - Invalid tip: appointment_id=%s, tip=%v", appointmentID, req.Tip)
			handlers.RespondBadRequest(w, msgInvalidTip)

		default:
			h.logger.Error("GET /appointments/{id}/payment-summary - Failed to build summary: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id}/payment-summary - Summary built: appointment_id=%s, total=%.2f", appointmentID, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
