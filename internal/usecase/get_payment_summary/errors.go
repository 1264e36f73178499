package get_payment_summary

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("get_payment_summary: appointment not found")

	// ErrInvalidTip возвращается при отрицательных чаевых
	ErrInvalidTip = errors.New("get_payment_summary: tip must not be negative")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_payment_summary: internal error")
)
