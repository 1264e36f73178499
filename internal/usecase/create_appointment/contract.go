package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// AppointmentRepository интерфейс хранилища записей
type AppointmentRepository interface {
	Add(ctx context.Context, input domain.AppointmentInput) (*domain.Appointment, error)
	Count() int
}

// Directory справочники клиентов, команды и услуг
type Directory interface {
	LookupClient(id domain.ClientID) (domain.Client, bool)
	LookupProfessional(id domain.ProfessionalID) (domain.Professional, bool)
	LookupService(id domain.ServiceID) (domain.Service, bool)
}

// Metrics метрики операций над записями
type Metrics interface {
	SetAppointmentsStored(count int)
	IncAppointmentOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
