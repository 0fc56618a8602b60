package printf

import (
	"bytes"
	"fmt"
	"io"

	"safe-printf/primitive"
)

// argsOf normalizes dynamically typed values. It stops at the first value
// outside the supported set.
func argsOf(values []any) ([]Arg, error) {
	args := make([]Arg, len(values))
	for i, v := range values {
		val, err := primitive.NormalizeAny(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}

		args[i] = Arg{value: val}
	}

	return args, nil
}

// CheckAny is Check for values only known as any.
func (c *Checker) CheckAny(format string, values ...any) error {
	args, err := argsOf(values)
	if err != nil {
		return err
	}

	return c.Check(format, args...)
}

// FprintfAny is Fprintf for values only known as any.
func (c *Checker) FprintfAny(w io.Writer, format string, values ...any) (int, error) {
	args, err := argsOf(values)
	if err != nil {
		return 0, err
	}

	return c.Fprintf(w, format, args...)
}

// SprintfAny is Sprintf for values only known as any.
func (c *Checker) SprintfAny(format string, values ...any) (string, error) {
	var buf bytes.Buffer

	if _, err := c.FprintfAny(&buf, format, values...); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// CheckAny is Check for values only known as any.
func CheckAny(format string, values ...any) error {
	return std.CheckAny(format, values...)
}

// FprintfAny is Fprintf for values only known as any.
func FprintfAny(w io.Writer, format string, values ...any) (int, error) {
	return std.FprintfAny(w, format, values...)
}

// SprintfAny is Sprintf for values only known as any.
func SprintfAny(format string, values ...any) (string, error) {
	return std.SprintfAny(format, values...)
}
