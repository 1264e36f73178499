package calendar

import "errors"

var (
	// ErrUnknownView возвращается для неизвестного вида календаря
	ErrUnknownView = errors.New("calendar: unknown view")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
