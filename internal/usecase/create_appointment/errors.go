package create_appointment

import "errors"

var (
	// ErrDateRequired возвращается, когда не указана дата
	ErrDateRequired = errors.New("create_appointment: date is required")

	// ErrInvalidStartTime возвращается при пустом или некорректном времени начала
	ErrInvalidStartTime = errors.New("create_appointment: invalid start time")

	// ErrNoClients возвращается, когда не выбран ни один клиент
	ErrNoClients = errors.New("create_appointment: at least one client required")

	// ErrNoServices возвращается, когда не выбрана ни одна услуга
	ErrNoServices = errors.New("create_appointment: at least one service required")

	// ErrInvalidDeposit возвращается при некорректном депозите услуги
	ErrInvalidDeposit = errors.New("create_appointment: invalid deposit")

	// ErrInvalidExtraCharge возвращается при некорректной дополнительной плате
	ErrInvalidExtraCharge = errors.New("create_appointment: invalid extra charge")

	// ErrNotesTooLong возвращается, когда заметки слишком длинные
	ErrNotesTooLong = errors.New("create_appointment: notes too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
