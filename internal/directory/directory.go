package directory

import (
	"sync"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// Directory in-memory справочники клиентов, специалистов и услуг.
// Реализует lookup-интерфейсы, которые потребляют поиск и календарь.
type Directory struct {
	mu sync.RWMutex

	clients      map[domain.ClientID]domain.Client
	clientOrder  []domain.ClientID
	team         map[domain.ProfessionalID]domain.Professional
	teamOrder    []domain.ProfessionalID
	catalog      map[domain.ServiceID]domain.Service
	catalogOrder []domain.ServiceID
}

// New создает пустой справочник
func New() *Directory {
	return &Directory{
		clients: make(map[domain.ClientID]domain.Client),
		team:    make(map[domain.ProfessionalID]domain.Professional),
		catalog: make(map[domain.ServiceID]domain.Service),
	}
}

// LookupClient ищет клиента по ID
func (d *Directory) LookupClient(id domain.ClientID) (domain.Client, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.clients[id]
	return c, ok
}

// LookupProfessional ищет специалиста по ID
func (d *Directory) LookupProfessional(id domain.ProfessionalID) (domain.Professional, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.team[id]
	return p, ok
}

// LookupService ищет услугу каталога по ID
func (d *Directory) LookupService(id domain.ServiceID) (domain.Service, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.catalog[id]
	return s, ok
}

// PutClient добавляет или заменяет клиента
func (d *Directory) PutClient(c domain.Client) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.clients[c.ID]; !exists {
		d.clientOrder = append(d.clientOrder, c.ID)
	}
	d.clients[c.ID] = c
}

// PutProfessional добавляет или заменяет специалиста
func (d *Directory) PutProfessional(p domain.Professional) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.team[p.ID]; !exists {
		d.teamOrder = append(d.teamOrder, p.ID)
	}
	d.team[p.ID] = p
}

// PutService добавляет или заменяет услугу
func (d *Directory) PutService(s domain.Service) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.catalog[s.ID]; !exists {
		d.catalogOrder = append(d.catalogOrder, s.ID)
	}
	d.catalog[s.ID] = s
}

// Clients возвращает клиентов в порядке добавления
func (d *Directory) Clients() []domain.Client {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]domain.Client, 0, len(d.clientOrder))
	for _, id := range d.clientOrder {
		result = append(result, d.clients[id])
	}
	return result
}

// Professionals возвращает специалистов в порядке добавления
func (d *Directory) Professionals() []domain.Professional {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]domain.Professional, 0, len(d.teamOrder))
	for _, id := range d.teamOrder {
		result = append(result, d.team[id])
	}
	return result
}

// Services возвращает услуги каталога в порядке добавления
func (d *Directory) Services() []domain.Service {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]domain.Service, 0, len(d.catalogOrder))
	for _, id := range d.catalogOrder {
		result = append(result, d.catalog[id])
	}
	return result
}
