package get_payment_summary

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// AppointmentRepository интерфейс хранилища записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id domain.AppointmentID) (*domain.Appointment, error)
}

// ServiceCatalog каталог услуг с ценами
type ServiceCatalog interface {
	LookupService(id domain.ServiceID) (domain.Service, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
