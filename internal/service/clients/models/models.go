package models

import (
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CountryCode    string  `json:"countryCode"`
	BirthDate      *string `json:"birthDate,omitempty"` // "1990-05-17"
	Origin         *string `json:"origin,omitempty"`
	RelatedClient  *string `json:"relatedClient,omitempty"`
	Country        *string `json:"country,omitempty"`
	MembershipType string  `json:"membershipType,omitempty"`
	Status         string  `json:"status,omitempty"`
	Image          *string `json:"image,omitempty"`
}

// ToDomain конвертирует запрос в domain.Client с дефолтами статуса и членства
func (r *CreateClientRequest) ToDomain() *domain.Client {
	c := &domain.Client{
		FirstName:      strings.TrimSpace(r.FirstName),
		LastName:       strings.TrimSpace(r.LastName),
		Email:          strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:          strings.TrimSpace(r.Phone),
		CountryCode:    strings.TrimSpace(r.CountryCode),
		BirthDate:      r.BirthDate,
		Origin:         r.Origin,
		RelatedClient:  r.RelatedClient,
		Country:        r.Country,
		MembershipType: r.MembershipType,
		Status:         r.Status,
		Image:          r.Image,
	}

	if c.MembershipType == "" {
		c.MembershipType = domain.DefaultMembershipType
	}
	if c.Status == "" {
		c.Status = domain.ClientStatusActive
	}

	return c
}

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CountryCode    string  `json:"countryCode"`
	BirthDate      *string `json:"birthDate,omitempty"`
	Origin         *string `json:"origin,omitempty"`
	RelatedClient  *string `json:"relatedClient,omitempty"`
	Country        *string `json:"country,omitempty"`
	MembershipType string  `json:"membershipType"`
	Status         string  `json:"status"`
	Image          *string `json:"image,omitempty"`
}

// ClientListResponse список клиентов
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int               `json:"total"`
}

// FromDomainClient конвертирует domain.Client в ClientResponse
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:             string(c.ID),
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		FullName:       c.DisplayName(),
		Email:          c.Email,
		Phone:          c.Phone,
		CountryCode:    c.CountryCode,
		BirthDate:      c.BirthDate,
		Origin:         c.Origin,
		RelatedClient:  c.RelatedClient,
		Country:        c.Country,
		MembershipType: c.MembershipType,
		Status:         c.Status,
		Image:          c.Image,
	}
}

// FromDomainClientList конвертирует список клиентов
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	items := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		items[i] = FromDomainClient(c)
	}
	return &ClientListResponse{Clients: items, Total: len(items)}
}
