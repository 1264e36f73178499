package directory

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("directory: client not found")

	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("directory: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("directory: service not found")

	// ErrInvalidSeed возвращается при некорректном файле начальных данных
	ErrInvalidSeed = errors.New("directory: invalid seed")
)
