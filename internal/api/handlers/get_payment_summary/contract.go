package get_payment_summary

import (
	"context"

	getPaymentSummary "github.com/m04kA/SMC-SalonCalendar/internal/usecase/get_payment_summary"
)

type UseCase interface {
	Execute(ctx context.Context, req *getPaymentSummary.Request) (*getPaymentSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
