package errors

import (
	"errors"
	"fmt"
)

// Common error types for the login gateway
var (
	// Protocol violations (the browser's fault)
	ErrStateNotFound   = errors.New("unknown or already used state token")
	ErrMissingCallback = errors.New("missing code or state parameter")

	// Upstream failures (the provider's fault)
	ErrUpstream = errors.New("token exchange failed")

	// Configuration failures (our fault)
	ErrInvalidConfig = errors.New("invalid provider configuration")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
