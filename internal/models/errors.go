package models

import "errors"

// Sentinel errors returned by repositories and services. Handlers map
// them onto HTTP statuses; wrap with fmt.Errorf("%w: ...") to add
// context without losing the classification.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)
