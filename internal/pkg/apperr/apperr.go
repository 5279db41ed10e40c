package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an application error into one of the domain failure
// categories. Each kind maps to exactly one HTTP status code.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInvalidInput
	KindConflict
	KindInsufficientFunds
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthorized(message string) *Error      { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error         { return New(KindForbidden, message) }
func NotFound(message string) *Error          { return New(KindNotFound, message) }
func InvalidInput(message string) *Error      { return New(KindInvalidInput, message) }
func Conflict(message string) *Error          { return New(KindConflict, message) }
func InsufficientFunds(message string) *Error { return New(KindInsufficientFunds, message) }

func Internal(err error) *Error {
	return Wrap(KindInternal, "internal error", err)
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// anything that is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// StatusCode maps an error to its HTTP status. The mapping is 1:1 with
// the failure taxonomy: 401/403/404/400/409, InsufficientFunds being a
// domain-specific conflict (409).
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidInput:
		return fiber.StatusBadRequest
	case KindConflict, KindInsufficientFunds:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to surface to clients. Internal
// errors are masked so driver details never leak beyond the log.
func PublicMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != KindInternal {
		return ae.Message
	}
	return "Something went wrong"
}
