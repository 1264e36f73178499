package get_payment_summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/directory/fixtures"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

func seededUseCase(t *testing.T, appointments ...*domain.Appointment) *UseCase {
	t.Helper()

	store := appointmentRepo.NewStore()
	require.NoError(t, store.Reset(context.Background(), appointments...))
	return NewUseCase(store, fixtures.NewDemoDirectory(), domain.DefaultTaxRate, logger.NewNop())
}

func appointmentWith(id string, services []domain.ServiceLine, extra *domain.ExtraCharge) *domain.Appointment {
	return &domain.Appointment{
		ID:          domain.AppointmentID(id),
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Clients:     []domain.ClientRef{{ClientID: "1"}},
		Services:    services,
		ExtraCharge: extra,
	}
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		appointment  *domain.Appointment
		tip          float64
		wantSubtotal float64
		wantDeposit  float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name: "fixed deposit",
			appointment: appointmentWith("fixed", []domain.ServiceLine{
				{ServiceID: "1", Deposit: &domain.Deposit{Type: domain.DepositFixed, Amount: 200}},
			}, nil),
			// (800 - 200) * 0.16 = 96
			wantSubtotal: 800, wantDeposit: 200, wantTax: 96, wantTotal: 696,
		},
		{
			name: "percentage deposit with tip",
			appointment: appointmentWith("pct", []domain.ServiceLine{
				{ServiceID: "2", Deposit: &domain.Deposit{Type: domain.DepositPercentage, Amount: 10}},
			}, nil),
			tip: 50,
			// 1000 - 100 = 900, tax 144
			wantSubtotal: 1000, wantDeposit: 100, wantTax: 144, wantTotal: 1094,
		},
		{
			name: "several services and extra charge",
			appointment: appointmentWith("multi", []domain.ServiceLine{
				{ServiceID: "1", Deposit: &domain.Deposit{Type: domain.DepositFixed, Amount: 200}},
				{ServiceID: "3"},
			}, &domain.ExtraCharge{Description: "Pestañas", Amount: 150}),
			// 800 + 800 + 150 = 1750; 1550 * 0.16 = 248
			wantSubtotal: 1750, wantDeposit: 200, wantTax: 248, wantTotal: 1798,
		},
		{
			name: "unknown service priced as zero",
			appointment: appointmentWith("unknown", []domain.ServiceLine{
				{ServiceID: "404", Deposit: &domain.Deposit{Type: domain.DepositPercentage, Amount: 50}},
			}, nil),
			wantSubtotal: 0, wantDeposit: 0, wantTax: 0, wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := seededUseCase(t, tt.appointment)

			resp, err := uc.Execute(context.Background(), &Request{AppointmentID: tt.appointment.ID, Tip: tt.tip})
			require.NoError(t, err)

			assert.InDelta(t, tt.wantSubtotal, resp.Subtotal, 0.001)
			assert.InDelta(t, tt.wantDeposit, resp.Deposit, 0.001)
			assert.InDelta(t, tt.wantTax, resp.Tax, 0.001)
			assert.InDelta(t, tt.wantTotal, resp.Total, 0.001)
			assert.Zero(t, resp.Discount)
			assert.Equal(t, tt.tip, resp.Tip)
			assert.Equal(t, domain.DefaultTaxRate, resp.TaxRate)
			assert.Len(t, resp.Lines, len(tt.appointment.Services))
		})
	}
}

func TestUseCase_Lines(t *testing.T) {
	uc := seededUseCase(t, appointmentWith("a", []domain.ServiceLine{
		{ServiceID: "2", Deposit: &domain.Deposit{Type: domain.DepositPercentage, Amount: 10}},
	}, nil))

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: "a"})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, Line{ServiceID: "2", Name: "Social", Price: 1000, Deposit: 100}, resp.Lines[0])
}

func TestUseCase_Errors(t *testing.T) {
	uc := seededUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: "missing"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = uc.Execute(context.Background(), &Request{AppointmentID: "missing", Tip: -1})
	assert.ErrorIs(t, err, ErrInvalidTip)
}
