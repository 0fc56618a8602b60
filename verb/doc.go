// Package verb pairs the conversion verbs of a printf-style format string
// with argument categories.
//
// The scan is a single left-to-right pass over the format with an explicit
// cursor. Each argument consumes the next verb; "%%" is a literal percent and
// consumes nothing. Flags, width and precision between '%' and the verb are
// skipped, '*' is not supported.
//
// Recognized verbs:
//   - d: integral
//   - f, g: floating point
//   - s: string-like
//
// The first inconsistency ends the scan and is returned as an *Error whose
// kind can be tested with errors.Is against ErrTypeMismatch,
// ErrInvalidSpecifier, ErrDanglingSpecifier and ErrArgumentCountExcess.
package verb
