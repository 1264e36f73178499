package directory

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// Seed начальные данные справочников и демонстрационные записи (seed.toml)
type Seed struct {
	Clients       []SeedClient       `toml:"clients"`
	Professionals []SeedProfessional `toml:"professionals"`
	Services      []SeedService      `toml:"services"`
	Appointments  []SeedAppointment  `toml:"appointments"`
}

type SeedClient struct {
	ID             string `toml:"id"`
	FirstName      string `toml:"first_name"`
	LastName       string `toml:"last_name"`
	Email          string `toml:"email"`
	Phone          string `toml:"phone"`
	CountryCode    string `toml:"country_code"`
	MembershipType string `toml:"membership_type"`
	Image          string `toml:"image"`
}

type SeedProfessional struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Position      string `toml:"position"`
	Email         string `toml:"email"`
	CalendarColor string `toml:"calendar_color"`
	Status        string `toml:"status"`
}

type SeedService struct {
	ID       string       `toml:"id"`
	Name     string       `toml:"name"`
	Duration string       `toml:"duration"`
	Price    float64      `toml:"price"`
	Category string       `toml:"category"`
	Status   string       `toml:"status"`
	Deposit  *SeedDeposit `toml:"deposit"`
}

type SeedDeposit struct {
	Required bool    `toml:"required"`
	Type     string  `toml:"type"`
	Amount   float64 `toml:"amount"`
}

// SeedAppointment демонстрационная запись; дата задается смещением в днях от текущей
type SeedAppointment struct {
	ID             string        `toml:"id"`
	DayOffset      int           `toml:"day_offset"`
	StartTime      string        `toml:"start_time"`
	ProfessionalID string        `toml:"professional_id"`
	ClientIDs      []string      `toml:"client_ids"`
	Services       []SeedService `toml:"services"`
	Notes          string        `toml:"notes"`
	Status         string        `toml:"status"`
}

// LoadSeed читает seed-файл
func LoadSeed(path string) (*Seed, error) {
	var seed Seed
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidSeed, path, err)
	}
	return &seed, nil
}

// ParseSeed разбирает seed из строки (используется в тестах)
func ParseSeed(data string) (*Seed, error) {
	var seed Seed
	if _, err := toml.Decode(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidSeed, err)
	}
	return &seed, nil
}

// Apply загружает справочники из seed в Directory
func (s *Seed) Apply(d *Directory) error {
	for _, c := range s.Clients {
		if c.ID == "" {
			return fmt.Errorf("%w: client without id", ErrInvalidSeed)
		}
		client := domain.Client{
			ID:             domain.ClientID(c.ID),
			FirstName:      c.FirstName,
			LastName:       c.LastName,
			Email:          c.Email,
			Phone:          c.Phone,
			CountryCode:    c.CountryCode,
			MembershipType: c.MembershipType,
			Status:         domain.ClientStatusActive,
		}
		if c.Image != "" {
			image := c.Image
			client.Image = &image
		}
		d.PutClient(client)
	}

	for _, p := range s.Professionals {
		if p.ID == "" {
			return fmt.Errorf("%w: professional without id", ErrInvalidSeed)
		}
		status := p.Status
		if status == "" {
			status = domain.ProfessionalStatusActive
		}
		d.PutProfessional(domain.Professional{
			ID:            domain.ProfessionalID(p.ID),
			Name:          p.Name,
			Position:      p.Position,
			Email:         p.Email,
			CalendarColor: p.CalendarColor,
			Status:        status,
		})
	}

	for _, svc := range s.Services {
		if svc.ID == "" {
			return fmt.Errorf("%w: service without id", ErrInvalidSeed)
		}
		if _, err := types.ParseDuration(svc.Duration); err != nil {
			return fmt.Errorf("%w: service %s: %v", ErrInvalidSeed, svc.ID, err)
		}
		service := domain.Service{
			ID:       domain.ServiceID(svc.ID),
			Name:     svc.Name,
			Duration: svc.Duration,
			Price:    svc.Price,
			Category: svc.Category,
			Status:   svc.Status,
		}
		if svc.Deposit != nil {
			depositType := domain.DepositType(svc.Deposit.Type)
			if !depositType.IsValid() {
				return fmt.Errorf("%w: service %s: unknown deposit type %q", ErrInvalidSeed, svc.ID, svc.Deposit.Type)
			}
			service.Deposit = domain.CatalogDeposit{
				Required: svc.Deposit.Required,
				Type:     depositType,
				Amount:   svc.Deposit.Amount,
			}
		}
		d.PutService(service)
	}

	return nil
}

// BuildAppointments превращает демонстрационные записи в готовые записи календаря.
// Статус берется из seed как есть, если задан; иначе выводится из депозитов.
func (s *Seed) BuildAppointments(today time.Time) ([]*domain.Appointment, error) {
	base := domain.NormalizeDate(today)
	result := make([]*domain.Appointment, 0, len(s.Appointments))

	for _, a := range s.Appointments {
		startTime, err := types.NewTimeStringFromString(a.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment %s: %v", ErrInvalidSeed, a.ID, err)
		}

		appointment := &domain.Appointment{
			ID:             domain.AppointmentID(a.ID),
			Date:           base.AddDate(0, 0, a.DayOffset),
			StartTime:      startTime,
			ProfessionalID: domain.ProfessionalID(a.ProfessionalID),
		}

		for _, clientID := range a.ClientIDs {
			appointment.Clients = append(appointment.Clients, domain.ClientRef{ClientID: domain.ClientID(clientID)})
		}

		for _, svc := range a.Services {
			line := domain.ServiceLine{ServiceID: domain.ServiceID(svc.ID)}
			if svc.Deposit != nil {
				line.Deposit = &domain.Deposit{
					Type:   domain.DepositType(svc.Deposit.Type),
					Amount: svc.Deposit.Amount,
				}
			}
			appointment.Services = append(appointment.Services, line)
		}

		if a.Notes != "" {
			notes := a.Notes
			appointment.Notes = &notes
		}

		status := domain.AppointmentStatus(a.Status)
		switch {
		case a.Status == "":
			appointment.Status = domain.DeriveStatus(appointment.Services)
		case status.IsValid():
			appointment.Status = status
		default:
			return nil, fmt.Errorf("%w: appointment %s: unknown status %q", ErrInvalidSeed, a.ID, a.Status)
		}

		result = append(result, appointment)
	}

	return result, nil
}
