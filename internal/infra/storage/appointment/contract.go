package appointment

import "github.com/google/uuid"

// IDGenerator выпускает новые идентификаторы записей
type IDGenerator func() string

// UUIDGenerator генератор по умолчанию (UUID v4)
func UUIDGenerator() string {
	return uuid.NewString()
}

// Option настройка хранилища
type Option func(*Store)

// WithIDGenerator подменяет генератор идентификаторов (для тестов)
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}
