package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidDeposit некорректный депозит услуги
	ErrInvalidDeposit = errors.New("domain: invalid deposit")

	// ErrInvalidExtraCharge некорректная дополнительная плата
	ErrInvalidExtraCharge = errors.New("domain: invalid extra charge")

	// ErrNotesTooLong заметки превышают допустимую длину
	ErrNotesTooLong = errors.New("domain: notes too long")

	// ErrNoClients у записи нет клиентов
	ErrNoClients = errors.New("domain: at least one client required")

	// ErrNoServices у записи нет услуг
	ErrNoServices = errors.New("domain: at least one service required")
)

// Validate checks deposit type and amount bounds
func (d *Deposit) Validate() error {
	if d == nil {
		return nil
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidDeposit, d.Type)
	}
	if d.Amount < 0 {
		return fmt.Errorf("%w: negative amount %.2f", ErrInvalidDeposit, d.Amount)
	}
	if d.Type == DepositPercentage && d.Amount > MaxPercentageDeposit {
		return fmt.Errorf("%w: percentage %.2f exceeds %d", ErrInvalidDeposit, d.Amount, MaxPercentageDeposit)
	}
	return nil
}

// Validate checks the extra charge amount and description length
func (e *ExtraCharge) Validate() error {
	if e == nil {
		return nil
	}
	if e.Amount < 0 {
		return fmt.Errorf("%w: negative amount %.2f", ErrInvalidExtraCharge, e.Amount)
	}
	if utf8.RuneCountInString(e.Description) > MaxExtraChargeDescription {
		return fmt.Errorf("%w: description longer than %d", ErrInvalidExtraCharge, MaxExtraChargeDescription)
	}
	return nil
}

// ValidateClients requires at least one client with a non-empty id
func ValidateClients(clients []ClientRef) error {
	if len(clients) == 0 {
		return ErrNoClients
	}
	for i, c := range clients {
		if c.ClientID == "" {
			return fmt.Errorf("%w: empty client id at position %d", ErrNoClients, i)
		}
	}
	return nil
}

// ValidateServices requires at least one service line, each with an id and a valid deposit
func ValidateServices(services []ServiceLine) error {
	if len(services) == 0 {
		return ErrNoServices
	}
	for i, s := range services {
		if s.ServiceID == "" {
			return fmt.Errorf("%w: empty service id at position %d", ErrNoServices, i)
		}
		if err := s.Deposit.Validate(); err != nil {
			return fmt.Errorf("service %s: %w", s.ServiceID, err)
		}
	}
	return nil
}

// ValidateNotes limits notes length in characters
func ValidateNotes(notes *string) error {
	if notes == nil {
		return nil
	}
	if utf8.RuneCountInString(*notes) > MaxNotesLength {
		return fmt.Errorf("%w: more than %d characters", ErrNotesTooLong, MaxNotesLength)
	}
	return nil
}
