package selection

import (
	"slices"
	"sync"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// Snapshot копия состояния выбора и поиска
type Snapshot struct {
	IsSelectionMode bool                   `json:"isSelectionMode"`
	SelectedIDs     []domain.AppointmentID `json:"selectedIds"`
	SearchTerm      string                 `json:"searchTerm"`
}

// State режим выбора, выбранные записи (упорядоченное множество) и строка поиска одной сессии
type State struct {
	mu            sync.Mutex
	selectionMode bool
	selected      []domain.AppointmentID
	searchTerm    string
}

// NewState создает пустое состояние
func NewState() *State {
	return &State{}
}

// ToggleSelectionMode переключает режим выбора и возвращает новое значение.
// Выход из режима всегда очищает выбранные записи.
func (s *State) ToggleSelectionMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectionMode = !s.selectionMode
	if !s.selectionMode {
		s.selected = nil
	}
	return s.selectionMode
}

// ToggleAppointment добавляет запись в выбор или убирает её оттуда.
// Возвращает true, если запись теперь выбрана.
func (s *State) ToggleAppointment(id domain.AppointmentID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
		return false
	}
	s.selected = append(s.selected, id)
	return true
}

// IsSelected проверяет, выбрана ли запись
func (s *State) IsSelected(id domain.AppointmentID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Contains(s.selected, id)
}

// Clear очищает выбор и выходит из режима выбора
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	s.selectionMode = false
}

// SetSearchTerm задает строку поиска
func (s *State) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchTerm = term
}

// SearchTerm возвращает текущую строку поиска
func (s *State) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.searchTerm
}

// SelectedIDs возвращает выбранные записи в порядке выбора
func (s *State) SelectedIDs() []domain.AppointmentID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.selected)
}

// Snapshot возвращает копию состояния
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := slices.Clone(s.selected)
	if selected == nil {
		selected = []domain.AppointmentID{}
	}

	return Snapshot{
		IsSelectionMode: s.selectionMode,
		SelectedIDs:     selected,
		SearchTerm:      s.searchTerm,
	}
}
