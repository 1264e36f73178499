package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
)

// Результаты операций для метрик
const (
	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
	resultError    = "error"
)

// ListFilter фильтр списка записей
type ListFilter struct {
	Search string     // подстрока поиска, пустая - без фильтра
	Date   *time.Time // календарный день, nil - все дни
}

// Service сервис для работы с записями календаря
type Service struct {
	repo      AppointmentRepository
	directory Directory
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	repo AppointmentRepository,
	directory Directory,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id domain.AppointmentID) (*models.AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List возвращает записи с фильтрацией по подстроке и дню
func (s *Service) List(ctx context.Context, filter ListFilter) (*models.AppointmentListResponse, error) {
	appointments, err := s.Search(ctx, filter.Search)
	if err != nil {
		return nil, err
	}

	if filter.Date != nil {
		appointments = onDate(appointments, *filter.Date)
	}

	s.logger.Info("List: found %d appointments, search=%q", len(appointments), filter.Search)
	return models.FromDomainAppointmentList(appointments), nil
}

// Search возвращает domain записи, отфильтрованные по подстроке
func (s *Service) Search(ctx context.Context, term string) ([]*domain.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return Filter(appointments, term, s.directory), nil
}

// Update частично обновляет запись. Статус не пересчитывается из депозитов,
// меняется только если передан явно.
func (s *Service) Update(ctx context.Context, id domain.AppointmentID, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: invalid request for appointment id=%s: %v", id, err)
		s.metrics.IncAppointmentOperation("update", resultInvalid)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if patch.IsEmpty() {
		s.metrics.IncAppointmentOperation("update", resultInvalid)
		return nil, ErrEmptyPatch
	}

	if err := validatePatch(patch); err != nil {
		s.logger.Warn("Update: validation failed for appointment id=%s: %v", id, err)
		s.metrics.IncAppointmentOperation("update", resultInvalid)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%s not found", id)
			s.metrics.IncAppointmentOperation("update", resultNotFound)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%s: %v", id, err)
		s.metrics.IncAppointmentOperation("update", resultError)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncAppointmentOperation("update", resultSuccess)
	s.logger.Info("Update: appointment id=%s updated, status=%s", id, updated.Status)
	return models.FromDomainAppointment(updated), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id domain.AppointmentID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			s.metrics.IncAppointmentOperation("delete", resultNotFound)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		s.metrics.IncAppointmentOperation("delete", resultError)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncAppointmentOperation("delete", resultSuccess)
	s.metrics.SetAppointmentsStored(s.repo.Count())
	s.logger.Info("Delete: appointment id=%s deleted", id)
	return nil
}

// DeleteMany удаляет несколько записей, отсутствующие ID пропускаются
func (s *Service) DeleteMany(ctx context.Context, ids []domain.AppointmentID) (*models.DeleteManyResponse, error) {
	deleted, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		s.logger.Error("DeleteMany: repository error: %v", err)
		s.metrics.IncAppointmentOperation("delete_many", resultError)
		return nil, fmt.Errorf("%w: DeleteMany - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncAppointmentOperation("delete_many", resultSuccess)
	s.metrics.SetAppointmentsStored(s.repo.Count())
	s.logger.Info("DeleteMany: deleted %d of %d requested appointments", deleted, len(ids))
	return &models.DeleteManyResponse{Deleted: deleted}, nil
}

// Duplicate создает копию записи с новым ID. Статус копии выводится заново.
func (s *Service) Duplicate(ctx context.Context, id domain.AppointmentID) (*models.AppointmentResponse, error) {
	copied, err := s.repo.Duplicate(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Duplicate: appointment id=%s not found", id)
			s.metrics.IncAppointmentOperation("duplicate", resultNotFound)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Duplicate: repository error for appointment id=%s: %v", id, err)
		s.metrics.IncAppointmentOperation("duplicate", resultError)
		return nil, fmt.Errorf("%w: Duplicate - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncAppointmentOperation("duplicate", resultSuccess)
	s.metrics.SetAppointmentsStored(s.repo.Count())
	s.logger.Info("Duplicate: appointment id=%s copied to id=%s, status=%s", id, copied.ID, copied.Status)
	return models.FromDomainAppointment(copied), nil
}

func onDate(appointments []*domain.Appointment, date time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.OccursOn(date) {
			result = append(result, a)
		}
	}
	return result
}

func validatePatch(patch domain.AppointmentPatch) error {
	if patch.Clients != nil {
		if err := domain.ValidateClients(*patch.Clients); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if patch.Services != nil {
		if err := domain.ValidateServices(*patch.Services); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if err := domain.ValidateNotes(patch.Notes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := patch.ExtraCharge.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
