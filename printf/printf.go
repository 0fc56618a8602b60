package printf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"safe-printf/primitive"
	"safe-printf/verb"
)

// Arg is a normalized argument. The zero Arg is unsupported and never
// matches a verb.
type Arg struct {
	value primitive.Value
}

// A normalizes v for use as a formatting argument.
func A[T primitive.Argument](v T) Arg {
	return Arg{value: primitive.Normalize(v)}
}

// Category returns the category a is checked against.
func (a Arg) Category() primitive.Category {
	return a.value.Category()
}

// Value returns the normalized value handed to fmt.
func (a Arg) Value() any {
	return a.value.Raw
}

// Config controls matching strictness.
type Config struct {
	// AllowExcess accepts arguments left over after the last verb. They are
	// dropped rather than printed as %!(EXTRA ...).
	AllowExcess bool
}

// DefaultConfig returns the strict configuration used by the package-level
// functions.
func DefaultConfig() Config {
	return Config{}
}

// Checker formats with a fixed Config. It holds no mutable state and is safe
// for concurrent use.
type Checker struct {
	opts verb.Options
}

// New creates a Checker.
func New(cfg Config) *Checker {
	return &Checker{
		opts: verb.Options{AllowExcess: cfg.AllowExcess},
	}
}

var std = New(DefaultConfig())

// Check reports whether args match the verbs of format.
func (c *Checker) Check(format string, args ...Arg) error {
	_, err := c.match(format, args)
	return err
}

// Fprintf checks args against format and, on success, formats them to w.
// It returns the number of bytes written. Nothing is written on a mismatch.
func (c *Checker) Fprintf(w io.Writer, format string, args ...Arg) (int, error) {
	values, err := c.match(format, args)
	if err != nil {
		return 0, err
	}

	return fmt.Fprintf(w, format, values...)
}

// Sprintf checks args against format and returns the formatted string.
func (c *Checker) Sprintf(format string, args ...Arg) (string, error) {
	var buf bytes.Buffer

	if _, err := c.Fprintf(&buf, format, args...); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Printf checks args against format and writes to standard output.
func (c *Checker) Printf(format string, args ...Arg) (int, error) {
	return c.Fprintf(os.Stdout, format, args...)
}

// match runs the verb matcher and returns the values to forward to fmt.
func (c *Checker) match(format string, args []Arg) ([]any, error) {
	categories := make([]primitive.Category, len(args))
	for i, arg := range args {
		categories[i] = arg.Category()
	}

	n, err := verb.Match(format, categories, c.opts)
	if err != nil {
		return nil, err
	}

	values := make([]any, n)
	for i := range values {
		values[i] = args[i].Value()
	}

	return values, nil
}

// Check reports whether args match the verbs of format.
func Check(format string, args ...Arg) error {
	return std.Check(format, args...)
}

// Fprintf checks args against format and, on success, formats them to w.
func Fprintf(w io.Writer, format string, args ...Arg) (int, error) {
	return std.Fprintf(w, format, args...)
}

// Sprintf checks args against format and returns the formatted string.
func Sprintf(format string, args ...Arg) (string, error) {
	return std.Sprintf(format, args...)
}

// Printf checks args against format and writes to standard output.
func Printf(format string, args ...Arg) (int, error) {
	return std.Printf(format, args...)
}
