package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Kind classifies failures for callers.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// InternalMessage is the only text an internal failure ever exposes.
const InternalMessage = "An unexpected error occurred"

// ForbiddenMessage does not tell a wrong PIN apart from a missing checkout.
const ForbiddenMessage = "PIN does not match an active checkout for this equipment"

// Error is a classified failure. Details carries extra fields for the caller
// (requested and available counts on a Conflict).
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// Cause lets errors.Cause from pkg/errors walk through.
func (e *Error) Cause() error { return e.cause }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(details map[string]any, format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...), Details: details}
}

// Forbidden always carries the generic message.
func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: ForbiddenMessage}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Internal wraps cause with a stack trace. The message stays server side.
func Internal(cause error, msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: errors.WithStack(cause)}
}

// As returns the classified error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err; unclassified errors are internal and a nil
// error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Status maps a kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Body renders the JSON payload for err. Internal errors are opaque.
func Body(err error) fiber.Map {
	e, ok := As(err)
	if !ok || e.Kind == KindInternal {
		return fiber.Map{"error": InternalMessage}
	}
	body := fiber.Map{"error": e.Message}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}

// Write sends err as a JSON response with the matching status.
func Write(c *fiber.Ctx, err error) error {
	return c.Status(Status(KindOf(err))).JSON(Body(err))
}
