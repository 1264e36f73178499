package selection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

func TestState_ToggleSelectionMode(t *testing.T) {
	s := NewState()

	assert.True(t, s.ToggleSelectionMode())
	assert.Empty(t, s.SelectedIDs())

	s.ToggleAppointment("a")
	s.ToggleAppointment("b")

	// выход из режима очищает выбор
	assert.False(t, s.ToggleSelectionMode())
	assert.Empty(t, s.SelectedIDs())

	// вход в режим сохраняет пустое множество
	assert.True(t, s.ToggleSelectionMode())
	assert.Empty(t, s.SelectedIDs())
}

func TestState_ToggleAppointmentKeepsOrder(t *testing.T) {
	s := NewState()

	assert.True(t, s.ToggleAppointment("a"))
	assert.True(t, s.ToggleAppointment("b"))
	assert.True(t, s.ToggleAppointment("c"))
	assert.False(t, s.ToggleAppointment("b"))
	assert.True(t, s.ToggleAppointment("b"))

	assert.Equal(t, []domain.AppointmentID{"a", "c", "b"}, s.SelectedIDs())
	assert.True(t, s.IsSelected("c"))
	assert.False(t, s.IsSelected("z"))
}

func TestState_ClearLeavesSelectionMode(t *testing.T) {
	s := NewState()
	s.ToggleSelectionMode()
	s.ToggleAppointment("a")
	s.SetSearchTerm("ondas")

	s.Clear()

	snapshot := s.Snapshot()
	assert.False(t, snapshot.IsSelectionMode)
	assert.Equal(t, []domain.AppointmentID{}, snapshot.SelectedIDs)
	// поиск не сбрасывается
	assert.Equal(t, "ondas", snapshot.SearchTerm)
}

func TestState_SnapshotIsCopy(t *testing.T) {
	s := NewState()
	s.ToggleAppointment("a")

	snapshot := s.Snapshot()
	snapshot.SelectedIDs[0] = "mutated"

	assert.Equal(t, []domain.AppointmentID{"a"}, s.SelectedIDs())
}

func TestRegistry_Sessions(t *testing.T) {
	r := NewRegistry()

	first := r.Session("default")
	first.SetSearchTerm("Isabella")

	assert.Same(t, first, r.Session("default"))
	assert.Empty(t, r.Session("other").SearchTerm())
	assert.Equal(t, 2, r.Len())

	r.Reset()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Session("default").SearchTerm())
}

func TestRegistry_ConcurrentSessions(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Session("shared").ToggleAppointment("x")
		}()
	}
	wg.Wait()

	require.Equal(t, 1, r.Len())
	// 50 переключений возвращают запись в исходное состояние
	assert.False(t, r.Session("shared").IsSelected("x"))
}
