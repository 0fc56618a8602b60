// Package printf provides printf-style formatting whose arguments are checked
// against the format's verbs before anything is written.
//
// Arguments are wrapped with [A], which only accepts integers, floats,
// strings, byte slices and *string. Passing anything else does not compile:
//
//	printf.Sprintf("%s has %d items", printf.A(name), printf.A(len(items)))
//
// The format is then matched verb by verb against the argument categories and
// only a fully matching call reaches [fmt.Fprintf]. A mismatch returns an
// error from package verb (test it with errors.Is against verb.ErrTypeMismatch
// and friends) and produces no output.
//
// Supported verbs are %d, %f, %g, %s and the literal %%. Flags, width and
// precision are passed through to fmt unchanged.
//
// The *Any variants accept plain values for callers that only hold any; they
// report unsupported types at run time with primitive.ErrUnsupportedArgument.
package printf
