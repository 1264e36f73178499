package appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// AppointmentRepository интерфейс хранилища записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id domain.AppointmentID) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	Count() int
	Update(ctx context.Context, id domain.AppointmentID, patch domain.AppointmentPatch) (*domain.Appointment, error)
	Delete(ctx context.Context, id domain.AppointmentID) error
	DeleteMany(ctx context.Context, ids []domain.AppointmentID) (int, error)
	Duplicate(ctx context.Context, id domain.AppointmentID) (*domain.Appointment, error)
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
