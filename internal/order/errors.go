package order

import (
	"errors"
)

type Kind string

const (
	KindMissingField     Kind = "missing_field"
	KindMalformedItem    Kind = "malformed_item"
	KindNonPositiveTotal Kind = "non_positive_total"
	KindDecode           Kind = "decode_error"
	KindInternal         Kind = "internal"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrMalformedItem    = errors.New("malformed item")
	ErrNonPositiveTotal = errors.New("non-positive total")
	ErrDecode           = errors.New("decode error")
)

// Error is returned by parsing, calculation and validation. Message is the
// text shown to the user.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match an *Error against the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return e.Kind == KindMissingField
	case ErrMalformedItem:
		return e.Kind == KindMalformedItem
	case ErrNonPositiveTotal:
		return e.Kind == KindNonPositiveTotal
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func missingField(field, msg string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Message: msg}
}
