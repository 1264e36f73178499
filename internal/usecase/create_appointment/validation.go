package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// validateRequest проверяет данные до записи в хранилище; само хранилище их не валидирует
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return ErrDateRequired
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidStartTime)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	if err := domain.ValidateClients(req.Clients); err != nil {
		return fmt.Errorf("%w: %v", ErrNoClients, err)
	}

	if len(req.Services) == 0 {
		return ErrNoServices
	}
	if err := domain.ValidateServices(req.Services); err != nil {
		if errors.Is(err, domain.ErrInvalidDeposit) {
			return fmt.Errorf("%w: %v", ErrInvalidDeposit, err)
		}
		return fmt.Errorf("%w: %v", ErrNoServices, err)
	}

	if err := req.ExtraCharge.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExtraCharge, err)
	}

	if err := domain.ValidateNotes(req.Notes); err != nil {
		return fmt.Errorf("%w: %v", ErrNotesTooLong, err)
	}

	return nil
}
