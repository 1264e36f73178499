package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// AppointmentID opaque identifier of an appointment
type AppointmentID string

// ClientID identifier of a client in the client directory
type ClientID string

// ProfessionalID identifier of a team member
type ProfessionalID string

// ServiceID identifier of a catalog service
type ServiceID string

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true for one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// DepositType kind of deposit attached to a service line
type DepositType string

const (
	DepositFixed      DepositType = "fixed"
	DepositPercentage DepositType = "percentage"
)

// IsValid returns true for fixed or percentage
func (t DepositType) IsValid() bool {
	return t == DepositFixed || t == DepositPercentage
}

// Deposit partial prepayment for a service: fixed amount or percentage of the service price
type Deposit struct {
	Type   DepositType
	Amount float64
}

// IsPositive returns true if the deposit actually requires money
func (d *Deposit) IsPositive() bool {
	return d != nil && d.Amount > 0
}

// AmountFor returns the deposit amount in money for a service with the given price
func (d *Deposit) AmountFor(price float64) float64 {
	if d == nil {
		return 0
	}
	if d.Type == DepositPercentage {
		return price * d.Amount / 100
	}
	return d.Amount
}

// ClientRef reference to a client attending the appointment
type ClientRef struct {
	ClientID ClientID
	IsGuest  bool
}

// ServiceLine one booked service with an optional deposit
type ServiceLine struct {
	ServiceID ServiceID
	Deposit   *Deposit
}

// ExtraCharge additional charge added to the appointment bill
type ExtraCharge struct {
	Description string
	Amount      float64
}

// Appointment a booking of one or more services with one or more clients under one professional
type Appointment struct {
	ID             AppointmentID
	Date           time.Time // календарный день, 00:00 UTC
	StartTime      types.TimeString
	ProfessionalID ProfessionalID
	Clients        []ClientRef   // первый элемент - основной клиент
	Services       []ServiceLine // первый элемент - основная услуга
	Notes          *string
	ExtraCharge    *ExtraCharge
	Status         AppointmentStatus
}

// PrimaryClient returns the first client or false if the list is empty
func (a *Appointment) PrimaryClient() (ClientRef, bool) {
	if len(a.Clients) == 0 {
		return ClientRef{}, false
	}
	return a.Clients[0], true
}

// PrimaryService returns the first service line or false if the list is empty
func (a *Appointment) PrimaryService() (ServiceLine, bool) {
	if len(a.Services) == 0 {
		return ServiceLine{}, false
	}
	return a.Services[0], true
}

// OccursOn returns true if the appointment is on the same calendar day as date
func (a *Appointment) OccursOn(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Clone returns a deep copy so callers cannot mutate store-owned data
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}

	c := *a
	c.Clients = append([]ClientRef(nil), a.Clients...)
	c.Services = make([]ServiceLine, len(a.Services))
	for i, s := range a.Services {
		c.Services[i] = ServiceLine{ServiceID: s.ServiceID}
		if s.Deposit != nil {
			d := *s.Deposit
			c.Services[i].Deposit = &d
		}
	}
	if a.Notes != nil {
		n := *a.Notes
		c.Notes = &n
	}
	if a.ExtraCharge != nil {
		e := *a.ExtraCharge
		c.ExtraCharge = &e
	}
	return &c
}

// AppointmentInput data required to create an appointment (everything except id and status)
type AppointmentInput struct {
	Date           time.Time
	StartTime      types.TimeString
	ProfessionalID ProfessionalID
	Clients        []ClientRef
	Services       []ServiceLine
	Notes          *string
	ExtraCharge    *ExtraCharge
}

// AppointmentPatch partial update; nil fields are left unchanged.
// Status is never recomputed from services on update, only set explicitly.
type AppointmentPatch struct {
	Date           *time.Time
	StartTime      *types.TimeString
	ProfessionalID *ProfessionalID
	Clients        *[]ClientRef
	Services       *[]ServiceLine
	Notes          *string
	ExtraCharge    *ExtraCharge
	Status         *AppointmentStatus
}

// IsEmpty returns true if the patch changes nothing
func (p *AppointmentPatch) IsEmpty() bool {
	return p.Date == nil && p.StartTime == nil && p.ProfessionalID == nil &&
		p.Clients == nil && p.Services == nil && p.Notes == nil &&
		p.ExtraCharge == nil && p.Status == nil
}

// DeriveStatus returns confirmed if any service carries a positive deposit, pending otherwise
func DeriveStatus(services []ServiceLine) AppointmentStatus {
	for _, s := range services {
		if s.Deposit.IsPositive() {
			return StatusConfirmed
		}
	}
	return StatusPending
}

// InputFromAppointment strips id and status, used by duplicate
func InputFromAppointment(a *Appointment) AppointmentInput {
	c := a.Clone()
	return AppointmentInput{
		Date:           c.Date,
		StartTime:      c.StartTime,
		ProfessionalID: c.ProfessionalID,
		Clients:        c.Clients,
		Services:       c.Services,
		Notes:          c.Notes,
		ExtraCharge:    c.ExtraCharge,
	}
}

// NormalizeDate truncates a time to the calendar day in UTC
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
