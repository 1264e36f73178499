package appointment

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// Store единственный владелец списка записей календаря.
// Все мутации сериализуются мьютексом, наружу отдаются только копии.
type Store struct {
	mu           sync.RWMutex
	appointments []*domain.Appointment
	index        map[domain.AppointmentID]int
	newID        IDGenerator
}

// NewStore создает пустое хранилище
func NewStore(opts ...Option) *Store {
	s := &Store{
		index: make(map[domain.AppointmentID]int),
		newID: UUIDGenerator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset заменяет содержимое хранилища переданными записями (жизненный цикл init/reset).
// Статусы и ID берутся как есть.
func (s *Store) Reset(ctx context.Context, seed ...*domain.Appointment) error {
	appointments := make([]*domain.Appointment, 0, len(seed))
	index := make(map[domain.AppointmentID]int, len(seed))

	for _, a := range seed {
		if _, exists := index[a.ID]; exists {
			return fmt.Errorf("%w: Reset - id=%s", ErrDuplicateID, a.ID)
		}
		index[a.ID] = len(appointments)
		appointments = append(appointments, a.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = appointments
	s.index = index
	return nil
}

// Add создает запись: выпускает новый ID и выводит статус из депозитов.
// Валидация входных данных - ответственность вызывающего.
func (s *Store) Add(ctx context.Context, input domain.AppointmentInput) (*domain.Appointment, error) {
	created := &domain.Appointment{
		Date:           domain.NormalizeDate(input.Date),
		StartTime:      input.StartTime,
		ProfessionalID: input.ProfessionalID,
		Clients:        input.Clients,
		Services:       input.Services,
		Notes:          input.Notes,
		ExtraCharge:    input.ExtraCharge,
		Status:         domain.DeriveStatus(input.Services),
	}
	// отвязываемся от слайсов вызывающего
	created = created.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.AppointmentID(s.newID())
	for {
		if _, exists := s.index[id]; !exists {
			break
		}
		id = domain.AppointmentID(s.newID())
	}
	created.ID = id

	s.index[id] = len(s.appointments)
	s.appointments = append(s.appointments, created)

	return created.Clone(), nil
}

// GetByID возвращает копию записи
func (s *Store) GetByID(ctx context.Context, id domain.AppointmentID) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return s.appointments[i].Clone(), nil
}

// List возвращает снимок всех записей в порядке создания
func (s *Store) List(ctx context.Context) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Appointment, len(s.appointments))
	for i, a := range s.appointments {
		result[i] = a.Clone()
	}
	return result, nil
}

// Count возвращает количество записей
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.appointments)
}

// Update заменяет только переданные поля. Статус не пересчитывается.
func (s *Store) Update(ctx context.Context, id domain.AppointmentID, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	updated := s.appointments[i].Clone()
	applyPatch(updated, patch)
	// патч мог сослаться на слайсы вызывающего
	updated = updated.Clone()

	s.appointments[i] = updated
	return updated.Clone(), nil
}

// Delete удаляет запись
func (s *Store) Delete(ctx context.Context, id domain.AppointmentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return ErrAppointmentNotFound
	}

	s.removeLocked(map[domain.AppointmentID]struct{}{id: {}})
	return nil
}

// DeleteMany удаляет несколько записей, отсутствующие ID пропускаются.
// Возвращает количество удаленных записей.
func (s *Store) DeleteMany(ctx context.Context, ids []domain.AppointmentID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	toDelete := make(map[domain.AppointmentID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			toDelete[id] = struct{}{}
		}
	}
	if len(toDelete) == 0 {
		return 0, nil
	}

	s.removeLocked(toDelete)
	return len(toDelete), nil
}

// Duplicate копирует запись без ID и создает её через Add, поэтому статус
// копии выводится заново из депозитов, а не копируется.
func (s *Store) Duplicate(ctx context.Context, id domain.AppointmentID) (*domain.Appointment, error) {
	source, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Add(ctx, domain.InputFromAppointment(source))
}

// removeLocked удаляет записи и перестраивает индекс. Вызывать под s.mu.Lock
func (s *Store) removeLocked(ids map[domain.AppointmentID]struct{}) {
	kept := s.appointments[:0]
	for _, a := range s.appointments {
		if _, drop := ids[a.ID]; drop {
			continue
		}
		kept = append(kept, a)
	}
	// зануляем хвост, чтобы не держать ссылки
	for i := len(kept); i < len(s.appointments); i++ {
		s.appointments[i] = nil
	}
	s.appointments = kept

	s.index = make(map[domain.AppointmentID]int, len(kept))
	for i, a := range kept {
		s.index[a.ID] = i
	}
}

func applyPatch(a *domain.Appointment, patch domain.AppointmentPatch) {
	if patch.Date != nil {
		a.Date = domain.NormalizeDate(*patch.Date)
	}
	if patch.StartTime != nil {
		a.StartTime = *patch.StartTime
	}
	if patch.ProfessionalID != nil {
		a.ProfessionalID = *patch.ProfessionalID
	}
	if patch.Clients != nil {
		a.Clients = *patch.Clients
	}
	if patch.Services != nil {
		a.Services = *patch.Services
	}
	if patch.Notes != nil {
		a.Notes = patch.Notes
	}
	if patch.ExtraCharge != nil {
		a.ExtraCharge = patch.ExtraCharge
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
}
