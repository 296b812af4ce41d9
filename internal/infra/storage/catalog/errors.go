package catalog

import "errors"

var (
	// ErrEntryNotFound возвращается, когда тест или пакет не найден в каталоге
	ErrEntryNotFound = errors.New("catalog.repository: entry not found")

	// ErrUnknownType возвращается для неизвестного типа записи
	ErrUnknownType = errors.New("catalog.repository: unknown appointment type")
)
