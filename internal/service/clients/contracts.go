package clients

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// ClientRepository интерфейс постоянного хранилища клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id domain.ClientID) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
}

// ClientDirectory справочник клиентов в памяти, из которого читает календарь
type ClientDirectory interface {
	LookupClient(id domain.ClientID) (domain.Client, bool)
	PutClient(client domain.Client)
	Clients() []domain.Client
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
