package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/calendar"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/selection"
)

type CalendarService interface {
	Render(ctx context.Context, view calendar.View, req calendar.Request) (interface{}, error)
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
