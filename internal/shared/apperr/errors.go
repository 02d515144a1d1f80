// Package apperr defines the error taxonomy shared by every feature.
//
// Only errors built here carry a Kind. Infrastructure failures (database,
// network, signing) stay plain wrapped errors so the HTTP boundary can tell
// them apart and answer with 500.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// KindUnknown is reported for errors that were not built by this package.
	KindUnknown Kind = iota
	// KindValidation marks a malformed value object or a broken entity invariant.
	KindValidation
	// KindDomain marks a business rule violation such as a duplicate email.
	KindDomain
	// KindNotFound marks a missing entity.
	KindNotFound
	// KindUnauthorized marks bad credentials or a bad refresh token.
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDomain:
		return "domain"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Error is an application error with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	// Err is the masked cause, if any. It is never part of Error().
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Validation returns a KindValidation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// InvalidValue returns a validation error for a rejected value object input.
func InvalidValue(field string, value any, reason string) *Error {
	msg := fmt.Sprintf("Invalid %s: %v", field, value)
	if reason != "" {
		msg += ". " + reason
	}
	return Validation(msg)
}

// Domain returns a KindDomain error.
func Domain(msg string) *Error {
	return &Error{Kind: KindDomain, Message: msg}
}

// NotFound returns a KindNotFound error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// EntityNotFound returns "<entity> with id <id> not found".
func EntityNotFound(entity, id string) *Error {
	return NotFound(fmt.Sprintf("%s with id %s not found", entity, id))
}

// Unauthorized returns a KindUnauthorized error wrapping cause.
// cause may be nil.
func Unauthorized(msg string, cause error) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg, Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
