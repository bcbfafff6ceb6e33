package text

import "errors"

var (
	// ErrOutOfRange is returned when a position lies outside a list.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidOperation is returned for structural misuse, such as
	// unlinking a node that belongs to no list.
	ErrInvalidOperation = errors.New("invalid operation")
)
