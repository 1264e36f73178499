package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// Request входные данные для создания записи
type Request struct {
	Date           time.Time
	StartTime      types.TimeString
	ProfessionalID domain.ProfessionalID
	Clients        []domain.ClientRef
	Services       []domain.ServiceLine
	Notes          *string
	ExtraCharge    *domain.ExtraCharge

	// UseCatalogDeposits проставляет услугам без депозита депозит из каталога,
	// если каталог его требует
	UseCatalogDeposits bool
}

// Response результат создания записи
type Response struct {
	Appointment *domain.Appointment
	// Warnings ссылки, не найденные в справочниках; запись при этом создается
	Warnings []string
}
