package selection

import "sync"

// Registry хранит состояние выбора для каждой сессии, создает его лениво
type Registry struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewRegistry создает пустой реестр сессий
func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*State)}
}

// Session возвращает состояние сессии, создавая его при первом обращении
func (r *Registry) Session(sessionID string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[sessionID]
	if !ok {
		state = NewState()
		r.states[sessionID] = state
	}
	return state
}

// Len количество известных сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.states)
}

// Reset забывает все сессии
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states = make(map[string]*State)
}
