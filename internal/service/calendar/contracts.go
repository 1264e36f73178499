package calendar

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// AppointmentSearcher источник записей с фильтрацией по подстроке
type AppointmentSearcher interface {
	Search(ctx context.Context, term string) ([]*domain.Appointment, error)
}

// Directory справочники для отображения записей
type Directory interface {
	LookupClient(id domain.ClientID) (domain.Client, bool)
	LookupProfessional(id domain.ProfessionalID) (domain.Professional, bool)
	LookupService(id domain.ServiceID) (domain.Service, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
