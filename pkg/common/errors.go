package common

import "github.com/cockroachdb/errors"

var (
	ErrDuplicate          = errors.New("duplicate message")
	ErrCircuitOpen        = errors.New("circuit breaker is open")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrRateLimited        = errors.New("rate limited")
	ErrOperationTimeout   = errors.New("operation timeout")
	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrPersistence        = errors.New("persistence failed")
	ErrNotConnected       = errors.New("broker not connected")
	ErrAlreadyRegistered  = errors.New("already registered")
)

// IsTransient reports whether err is worth retrying against the same dependency.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrOperationTimeout)
}
