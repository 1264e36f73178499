package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/selection"
)

type AppointmentService interface {
	List(ctx context.Context, filter appointments.ListFilter) (*models.AppointmentListResponse, error)
}

// SessionRegistry отдает состояние дашборда для сессии
type SessionRegistry interface {
	Session(sessionID string) *selection.State
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
