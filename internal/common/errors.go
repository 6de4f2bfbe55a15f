package common

import (
	"errors"
)

// Sentinel errors shared by every service. Handlers map these to HTTP
// status codes; services wrap them with context via fmt.Errorf("...: %w", err).
var (
	ErrInvalid      = errors.New("invalid argument")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
