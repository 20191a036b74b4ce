package pipeline

import "errors"

var (
	// ErrInvalidField - стадия вызвана с полем, которого нет в схеме записи
	ErrInvalidField = errors.New("invalid field")
	// ErrDuplicateID - идентификатор встречается в коллекции больше одного раза
	ErrDuplicateID = errors.New("duplicate record id")
	// ErrInvalidInstant - строку времени не удалось привести к моменту времени
	ErrInvalidInstant = errors.New("invalid instant")
)
