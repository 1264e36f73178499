package duplicate_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
)

type AppointmentService interface {
	Duplicate(ctx context.Context, id domain.AppointmentID) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
