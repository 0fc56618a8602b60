package verb

import (
	"errors"
	"fmt"

	"safe-printf/internal/common"
	"safe-printf/primitive"
)

var (
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrInvalidSpecifier    = errors.New("invalid specifier")
	ErrDanglingSpecifier   = errors.New("dangling specifier")
	ErrArgumentCountExcess = errors.New("excess argument")
)

// ErrorKind classifies a matching failure.
type ErrorKind int

const (
	KindTypeMismatch ErrorKind = iota + 1
	KindInvalidSpecifier
	KindDanglingSpecifier
	KindArgumentCountExcess
)

// String returns a human-readable kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type-mismatch"
	case KindInvalidSpecifier:
		return "invalid-specifier"
	case KindDanglingSpecifier:
		return "dangling-specifier"
	case KindArgumentCountExcess:
		return "argument-count-excess"
	default:
		return common.UnknownStr
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindInvalidSpecifier:
		return ErrInvalidSpecifier
	case KindDanglingSpecifier:
		return ErrDanglingSpecifier
	case KindArgumentCountExcess:
		return ErrArgumentCountExcess
	default:
		return nil
	}
}

// Error describes the first mismatch found between a format and its arguments.
type Error struct {
	Kind ErrorKind
	// Pos is the byte offset of the offending '%' in the format, or the
	// format length when an argument is left without a verb.
	Pos int
	// ArgIndex is the zero-based index of the argument being matched.
	ArgIndex int
	// Verb is the conversion character, zero for an incomplete specifier.
	Verb     rune
	Expected primitive.Category
	Actual   primitive.Category
}

// Error implements the error interface.
func (e *Error) Error() string {
	var detail string

	switch e.Kind {
	case KindTypeMismatch:
		detail = fmt.Sprintf("%%%c at offset %d wants %s, argument %d is %s",
			e.Verb, e.Pos, e.Expected, e.ArgIndex, e.Actual)
	case KindInvalidSpecifier:
		detail = fmt.Sprintf("%%%c at offset %d is not a supported verb", e.Verb, e.Pos)
	case KindDanglingSpecifier:
		if e.Verb == 0 {
			detail = fmt.Sprintf("incomplete specifier at offset %d", e.Pos)
		} else {
			detail = fmt.Sprintf("%%%c at offset %d has no argument", e.Verb, e.Pos)
		}
	case KindArgumentCountExcess:
		detail = fmt.Sprintf("argument %d (%s) has no verb", e.ArgIndex, e.Actual)
	default:
		return "verb: " + common.UnknownStr
	}

	return e.Kind.sentinel().Error() + ": " + detail
}

// Unwrap exposes the sentinel for errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}
