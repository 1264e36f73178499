package selection

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	selectionService "github.com/m04kA/SMC-SalonCalendar/internal/service/selection"
)

// SessionRegistry отдает состояние дашборда для сессии
type SessionRegistry interface {
	Session(sessionID string) *selectionService.State
}

type AppointmentService interface {
	GetByID(ctx context.Context, id domain.AppointmentID) (*models.AppointmentResponse, error)
	DeleteMany(ctx context.Context, ids []domain.AppointmentID) (*models.DeleteManyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
