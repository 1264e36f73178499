package delete_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

type AppointmentService interface {
	Delete(ctx context.Context, id domain.AppointmentID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
