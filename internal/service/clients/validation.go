package clients

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

func validateClient(c *domain.Client) error {
	if c.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if c.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if c.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, c.Email)
	}
	if c.BirthDate != nil {
		if _, err := time.Parse(domain.DateFormat, *c.BirthDate); err != nil {
			return fmt.Errorf("%w: birthDate must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return nil
}
