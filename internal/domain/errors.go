package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicate       = errors.New("duplicate resource")
	ErrConflict        = errors.New("conflict with current state")
	ErrCorruptState    = errors.New("persisted state is corrupt")
	ErrInactiveEntity  = errors.New("entity is inactive")
	ErrNothingToInvoice = errors.New("no orders in the given period")
)
