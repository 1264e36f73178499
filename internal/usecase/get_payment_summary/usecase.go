package get_payment_summary

import (
	"context"
	"errors"
	"fmt"
	"math"

	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
)

// UseCase use case расчета итога к оплате по записи
type UseCase struct {
	repo    AppointmentRepository
	catalog ServiceCatalog
	taxRate float64
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo AppointmentRepository, catalog ServiceCatalog, taxRate float64, logger Logger) *UseCase {
	return &UseCase{
		repo:    repo,
		catalog: catalog,
		taxRate: taxRate,
		logger:  logger,
	}
}

// Execute считает итог:
//
//	subtotal = сумма цен услуг + дополнительная плата
//	deposit  = фиксированные депозиты + цена*процент/100
//	tax      = (subtotal - deposit - discount) * taxRate
//	total    = subtotal - deposit - discount + tax + tip
//
// Услуга, не найденная в каталоге, стоит 0.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Tip < 0 || math.IsNaN(req.Tip) || math.IsInf(req.Tip, 0) {
		uc.logger.Warn("GetPaymentSummary: invalid tip=%v for appointment id=%s", req.Tip, req.AppointmentID)
		return nil, ErrInvalidTip
	}

	appointment, err := uc.repo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("GetPaymentSummary: appointment id=%s not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("GetPaymentSummary: failed to get appointment id=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	resp := &Response{
		AppointmentID: string(appointment.ID),
		Lines:         make([]Line, 0, len(appointment.Services)),
		TaxRate:       uc.taxRate,
		Tip:           req.Tip,
	}

	var subtotal, deposit float64
	for _, line := range appointment.Services {
		l := Line{ServiceID: string(line.ServiceID)}
		if svc, ok := uc.catalog.LookupService(line.ServiceID); ok {
			l.Name = svc.Name
			l.Price = svc.Price
		} else {
			uc.logger.Warn("GetPaymentSummary: service id=%s not found, priced as 0", line.ServiceID)
		}
		l.Deposit = line.Deposit.AmountFor(l.Price)

		subtotal += l.Price
		deposit += l.Deposit
		resp.Lines = append(resp.Lines, l)
	}

	if appointment.ExtraCharge != nil {
		resp.ExtraCharge = appointment.ExtraCharge.Amount
		subtotal += appointment.ExtraCharge.Amount
	}

	// скидки пока не поддерживаются
	discount := 0.0
	tax := (subtotal - deposit - discount) * uc.taxRate
	total := subtotal - deposit - discount + tax + req.Tip

	resp.Subtotal = roundCents(subtotal)
	resp.Deposit = roundCents(deposit)
	resp.Discount = roundCents(discount)
	resp.Tax = roundCents(tax)
	resp.Total = roundCents(total)

	uc.logger.Info("GetPaymentSummary: appointment id=%s, subtotal=%.2f, total=%.2f",
		appointment.ID, resp.Subtotal, resp.Total)
	return resp, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
