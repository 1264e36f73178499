package create_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// UseCase use case для создания записи
type UseCase struct {
	repo      AppointmentRepository
	directory Directory
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo AppointmentRepository,
	directory Directory,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case создания записи.
// Статус выводит хранилище: confirmed, если хотя бы у одной услуги есть депозит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, professional=%s, clients=%d, services=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.ProfessionalID, len(req.Clients), len(req.Services))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.metrics.IncAppointmentOperation("create", "invalid")
		return nil, err
	}

	// 2. Депозиты из каталога
	services := req.Services
	if req.UseCatalogDeposits {
		services = uc.applyCatalogDeposits(services)
	}

	// 3. Неразрешенные ссылки не блокируют создание
	warnings := uc.unresolvedReferences(req)
	for _, w := range warnings {
		uc.logger.Warn("CreateAppointment: %s", w)
	}

	// 4. Сохраняем
	created, err := uc.repo.Add(ctx, domain.AppointmentInput{
		Date:           req.Date,
		StartTime:      req.StartTime,
		ProfessionalID: req.ProfessionalID,
		Clients:        req.Clients,
		Services:       services,
		Notes:          req.Notes,
		ExtraCharge:    req.ExtraCharge,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to add appointment: %v", err)
		uc.metrics.IncAppointmentOperation("create", "error")
		return nil, fmt.Errorf("%w: failed to add appointment: %v", ErrInternal, err)
	}

	uc.metrics.IncAppointmentOperation("create", "success")
	uc.metrics.SetAppointmentsStored(uc.repo.Count())

	uc.logger.Info("CreateAppointment: appointment id=%s created with status=%s", created.ID, created.Status)
	return &Response{Appointment: created, Warnings: warnings}, nil
}

func (uc *UseCase) applyCatalogDeposits(lines []domain.ServiceLine) []domain.ServiceLine {
	result := make([]domain.ServiceLine, len(lines))
	for i, line := range lines {
		result[i] = line
		if line.Deposit != nil {
			continue
		}
		if svc, ok := uc.directory.LookupService(line.ServiceID); ok {
			result[i].Deposit = svc.DefaultDeposit()
		}
	}
	return result
}

func (uc *UseCase) unresolvedReferences(req *Request) []string {
	warnings := make([]string, 0)

	if req.ProfessionalID != "" {
		if _, ok := uc.directory.LookupProfessional(req.ProfessionalID); !ok {
			warnings = append(warnings, fmt.Sprintf("professional id=%s not found", req.ProfessionalID))
		}
	}

	for _, c := range req.Clients {
		if _, ok := uc.directory.LookupClient(c.ClientID); !ok {
			warnings = append(warnings, fmt.Sprintf("client id=%s not found", c.ClientID))
		}
	}

	for _, s := range req.Services {
		if _, ok := uc.directory.LookupService(s.ServiceID); !ok {
			warnings = append(warnings, fmt.Sprintf("service id=%s not found", s.ServiceID))
		}
	}

	return warnings
}
