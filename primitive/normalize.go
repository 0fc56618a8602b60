package primitive

import (
	"errors"
	"fmt"
	"reflect"
)

// NilString is what a nil *string normalizes to.
const NilString = "<nil>"

var ErrUnsupportedArgument = errors.New("unsupported argument type")

// Argument is the closed set of types that can be normalized. Instantiating
// Normalize with a struct, a bool or a map does not compile.
type Argument interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~string | ~[]byte | *string
}

// Value is a normalized argument. Raw holds exactly what fmt expects for the
// verb matching Category: int64 or uint64, float32 or float64, string or []byte.
type Value struct {
	Kind KindEnum
	Raw  any
}

// Category returns the category Value is checked against.
func (v Value) Category() Category {
	return v.Kind.Category()
}

// Normalize widens v to its canonical representation.
func Normalize[T Argument](v T) Value {
	val, err := normalizeReflect(reflect.ValueOf(v))
	if err != nil {
		// Argument admits only kinds normalizeReflect knows about
		panic(err)
	}

	return val
}

// NormalizeAny is the dynamic form of Normalize for values only known as any.
// Types outside Argument yield ErrUnsupportedArgument.
func NormalizeAny(v any) (Value, error) {
	return normalizeReflect(reflect.ValueOf(v))
}

func normalizeReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Value{}, fmt.Errorf("%w: untyped nil", ErrUnsupportedArgument)
	}

	kind := FromReflectType(rv.Type())

	switch {
	case kind.IsSigned():
		return Value{Kind: kind, Raw: rv.Int()}, nil

	case kind.IsUnsigned():
		return Value{Kind: kind, Raw: rv.Uint()}, nil

	case kind == KindFloat32:
		// fmt prints float32 with float32 precision; float64(0.1f) would
		// print as 0.10000000149011612
		return Value{Kind: kind, Raw: float32(rv.Float())}, nil

	case kind.IsFloat():
		return Value{Kind: kind, Raw: rv.Float()}, nil

	case kind == KindString:
		return Value{Kind: kind, Raw: rv.String()}, nil

	case kind == KindBytes:
		// drop any named slice type so fmt sees a plain []byte
		var raw []byte
		if !rv.IsNil() {
			raw = rv.Bytes()
		}
		return Value{Kind: kind, Raw: raw}, nil

	case kind == KindStringPointer:
		if rv.IsNil() {
			return Value{Kind: kind, Raw: NilString}, nil
		}
		return Value{Kind: kind, Raw: rv.Elem().String()}, nil
	}

	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedArgument, rv.Type())
}
