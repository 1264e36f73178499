package create_appointment

import (
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-SalonCalendar/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date               string                  `json:"date"`      // "2025-10-15"
	StartTime          string                  `json:"startTime"` // "10:00"
	ProfessionalID     string                  `json:"professionalId"`
	Clients            []models.ClientRefDTO   `json:"clients"`
	Services           []models.ServiceLineDTO `json:"services"`
	Notes              *string                 `json:"notes,omitempty"`
	ExtraCharge        *models.ExtraChargeDTO  `json:"extraCharge,omitempty"`
	UseCatalogDeposits bool                    `json:"useCatalogDeposits,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	*models.AppointmentResponse
	Warnings []string `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени).
// Пустые дата и время остаются нулевыми, их отсутствие проверяет use case.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		ProfessionalID:     domain.ProfessionalID(r.ProfessionalID),
		Clients:            models.ToDomainClients(r.Clients),
		Services:           models.ToDomainServices(r.Services),
		Notes:              r.Notes,
		ExtraCharge:        r.ExtraCharge.ToDomain(),
		UseCatalogDeposits: r.UseCatalogDeposits,
	}

	if strings.TrimSpace(r.Date) != "" {
		date, err := models.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if strings.TrimSpace(r.StartTime) != "" {
		start, err := models.ParseStartTime(r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = start
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		AppointmentResponse: models.FromDomainAppointment(resp.Appointment),
		Warnings:            resp.Warnings,
	}
}
