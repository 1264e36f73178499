package domain

import "strings"

// Client record of the client directory
type Client struct {
	ID             ClientID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CountryCode    string
	BirthDate      *string
	Origin         *string
	RelatedClient  *string
	Country        *string
	MembershipType string
	Status         string
	Image          *string
}

// DisplayName returns "FirstName LastName"
func (c *Client) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Professional team member who attends appointments
type Professional struct {
	ID            ProfessionalID
	Name          string
	Position      string
	Email         string
	CalendarColor string
	Status        string
}

// CatalogDeposit deposit policy of a catalog service
type CatalogDeposit struct {
	Required bool
	Type     DepositType
	Amount   float64
}

// Service catalog entry
type Service struct {
	ID       ServiceID
	Name     string
	Duration string // человекочитаемая длительность, например "1hr y 30 min"
	Price    float64
	Category string
	Deposit  CatalogDeposit
	Status   string
}

// DefaultDeposit returns the deposit a new service line gets when the catalog requires one
func (s *Service) DefaultDeposit() *Deposit {
	if !s.Deposit.Required {
		return nil
	}
	return &Deposit{Type: s.Deposit.Type, Amount: s.Deposit.Amount}
}
