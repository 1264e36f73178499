package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidTime возвращается при некорректном времени начала
	ErrInvalidTime = errors.New("invalid appointment start time")
)

// Общие модели запроса и ответа

// ClientRefDTO клиент записи
type ClientRefDTO struct {
	ClientID string `json:"clientId"`
	IsGuest  bool   `json:"isGuest"`
}

// DepositDTO депозит услуги
type DepositDTO struct {
	Type   string  `json:"type"`   // "fixed" | "percentage"
	Amount float64 `json:"amount"` // сумма или процент
}

// ServiceLineDTO услуга записи
type ServiceLineDTO struct {
	ServiceID string      `json:"serviceId"`
	Deposit   *DepositDTO `json:"deposit,omitempty"`
}

// ExtraChargeDTO дополнительная плата
type ExtraChargeDTO struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Request модели

// UpdateAppointmentRequest частичное обновление записи, nil поля не меняются
type UpdateAppointmentRequest struct {
	Date           *string           `json:"date,omitempty"`      // "2025-10-15"
	StartTime      *string           `json:"startTime,omitempty"` // "10:00"
	ProfessionalID *string           `json:"professionalId,omitempty"`
	Clients        *[]ClientRefDTO   `json:"clients,omitempty"`
	Services       *[]ServiceLineDTO `json:"services,omitempty"`
	Notes          *string           `json:"notes,omitempty"`
	ExtraCharge    *ExtraChargeDTO   `json:"extraCharge,omitempty"`
	Status         *string           `json:"status,omitempty"`
}

// ToDomainPatch конвертирует запрос в domain патч (с парсингом даты и времени)
func (r *UpdateAppointmentRequest) ToDomainPatch() (domain.AppointmentPatch, error) {
	var patch domain.AppointmentPatch

	if r.Date != nil {
		date, err := ParseDate(*r.Date)
		if err != nil {
			return patch, err
		}
		patch.Date = &date
	}

	if r.StartTime != nil {
		start, err := ParseStartTime(*r.StartTime)
		if err != nil {
			return patch, err
		}
		patch.StartTime = &start
	}

	if r.ProfessionalID != nil {
		id := domain.ProfessionalID(*r.ProfessionalID)
		patch.ProfessionalID = &id
	}

	if r.Clients != nil {
		clients := ToDomainClients(*r.Clients)
		patch.Clients = &clients
	}

	if r.Services != nil {
		services := ToDomainServices(*r.Services)
		patch.Services = &services
	}

	patch.Notes = r.Notes
	patch.ExtraCharge = r.ExtraCharge.ToDomain()

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}

	return patch, nil
}

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return domain.NormalizeDate(date), nil
}

// ParseStartTime разбирает время HH:MM
func ParseStartTime(value string) (types.TimeString, error) {
	start, err := types.NewTimeStringFromString(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return start, nil
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus
func ToDomainStatus(value string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(value)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
	return status, nil
}

// ToDomainClients конвертирует клиентов запроса
func ToDomainClients(dtos []ClientRefDTO) []domain.ClientRef {
	clients := make([]domain.ClientRef, len(dtos))
	for i, c := range dtos {
		clients[i] = domain.ClientRef{ClientID: domain.ClientID(c.ClientID), IsGuest: c.IsGuest}
	}
	return clients
}

// ToDomainServices конвертирует услуги запроса
func ToDomainServices(dtos []ServiceLineDTO) []domain.ServiceLine {
	services := make([]domain.ServiceLine, len(dtos))
	for i, s := range dtos {
		services[i] = domain.ServiceLine{ServiceID: domain.ServiceID(s.ServiceID)}
		if s.Deposit != nil {
			services[i].Deposit = &domain.Deposit{
				Type:   domain.DepositType(strings.ToLower(s.Deposit.Type)),
				Amount: s.Deposit.Amount,
			}
		}
	}
	return services
}

// ToDomain конвертирует дополнительную плату, nil остается nil
func (e *ExtraChargeDTO) ToDomain() *domain.ExtraCharge {
	if e == nil {
		return nil
	}
	return &domain.ExtraCharge{Description: e.Description, Amount: e.Amount}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID             string           `json:"id"`
	Date           string           `json:"date"`      // "2025-10-15"
	StartTime      string           `json:"startTime"` // "10:00"
	ProfessionalID string           `json:"professionalId"`
	Clients        []ClientRefDTO   `json:"clients"`
	Services       []ServiceLineDTO `json:"services"`
	Notes          *string          `json:"notes,omitempty"`
	ExtraCharge    *ExtraChargeDTO  `json:"extraCharge,omitempty"`
	Status         string           `json:"status"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// DeleteManyResponse результат пакетного удаления
type DeleteManyResponse struct {
	Deleted int `json:"deleted"`
}

// FromDomainAppointment конвертирует domain.Appointment в AppointmentResponse
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:             string(a.ID),
		Date:           a.Date.Format(domain.DateFormat),
		StartTime:      a.StartTime.String(),
		ProfessionalID: string(a.ProfessionalID),
		Clients:        make([]ClientRefDTO, len(a.Clients)),
		Services:       make([]ServiceLineDTO, len(a.Services)),
		Notes:          a.Notes,
		Status:         string(a.Status),
	}

	for i, c := range a.Clients {
		resp.Clients[i] = ClientRefDTO{ClientID: string(c.ClientID), IsGuest: c.IsGuest}
	}

	for i, s := range a.Services {
		resp.Services[i] = ServiceLineDTO{ServiceID: string(s.ServiceID)}
		if s.Deposit != nil {
			resp.Services[i].Deposit = &DepositDTO{Type: string(s.Deposit.Type), Amount: s.Deposit.Amount}
		}
	}

	if a.ExtraCharge != nil {
		resp.ExtraCharge = &ExtraChargeDTO{Description: a.ExtraCharge.Description, Amount: a.ExtraCharge.Amount}
	}

	return resp
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]*AppointmentResponse, len(appointments))
	for i, a := range appointments {
		items[i] = FromDomainAppointment(a)
	}

	return &AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}
}
