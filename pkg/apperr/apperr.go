package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the transport layer can map it to a status
// code without string matching.
type Kind string

const (
	KindNotFound                   Kind = "not_found"
	KindUnsupportedComponentType   Kind = "unsupported_component_type"
	KindUnsupportedCalculationType Kind = "unsupported_calculation_type"
	KindInvalidInput               Kind = "invalid_input"
)

// Error carries an error kind plus a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match on kind: errors.Is(err, &Error{Kind: KindNotFound}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an Error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from an error chain, or "" if the chain contains
// no *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
