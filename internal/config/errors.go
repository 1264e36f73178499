package config

import "errors"

var (
	// ErrReadConfig возвращается, когда файл конфигурации не читается или не разбирается
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при недопустимых значениях
	ErrInvalidConfig = errors.New("config: invalid value")
)
