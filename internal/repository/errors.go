package repository

import "errors"

var ErrNotFound = errors.New("not found")

// Constraint errors the store surfaces as typed codes. Implementations
// translate driver errors into these so usecases can map them to
// user-facing messages.
var (
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrUniqueViolation     = errors.New("unique violation")
)
