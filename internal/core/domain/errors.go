package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Callers classify failures with errors.Is against these.
var (
	ErrDuplicateIdentity    = errors.New("duplicate identity")
	ErrDuplicateRecord      = errors.New("duplicate record")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAuthenticationFailed = errors.New("invalid username or password")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrForbidden            = errors.New("access forbidden")
	ErrSelfActionForbidden  = errors.New("self action forbidden")
	ErrNotFound             = errors.New("not found")
	ErrTooManyAttempts      = errors.New("too many failed login attempts")
)

// Token failures. All three surface as unauthenticated, but a forged token
// must never be reported as merely expired.
var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
)

// Error pairs a stable kind with a message that is safe to return to clients.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds an *Error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
