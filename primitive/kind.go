package primitive

import (
	"go/types"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindString
	KindBytes         // []byte or any named type with []byte underlying
	KindStringPointer // *string, the only pointer treated as a character sequence

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

func (k KindEnum) IsText() bool {
	switch k {
	default:
		return false
	case KindString, KindBytes, KindStringPointer:
		return true
	}
}

// FromReflectType classifies rtype by its underlying kind, so named types
// (type Celsius float64, type UserID string) share the kind of their base type.
// Unsupported types yield the zero KindEnum.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uintptr:
		return KindUintptr
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.String:
		return KindString
	case reflect.Slice:
		if rtype.Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}
		return 0
	case reflect.Pointer:
		// only the exact *string, named string element types are not accepted
		if rtype.Elem() == reflect.TypeOf("") {
			return KindStringPointer
		}
		return 0
	}
}

// FromGoType is the go/types counterpart of FromReflectType. Untyped constants
// classify by their default type.
func FromGoType(t types.Type) KindEnum {
	if t == nil {
		return 0
	}

	switch ut := t.Underlying().(type) {
	case *types.Basic:
		return fromBasic(ut)

	case *types.Slice:
		if elem, ok := ut.Elem().Underlying().(*types.Basic); ok && elem.Kind() == types.Uint8 {
			return KindBytes
		}

	case *types.Pointer:
		if elem, ok := types.Unalias(ut.Elem()).(*types.Basic); ok && elem.Kind() == types.String {
			return KindStringPointer
		}
	}

	return 0
}

func fromBasic(b *types.Basic) KindEnum {
	switch b.Kind() {
	case types.Int, types.UntypedInt:
		return KindInt
	case types.Int8:
		return KindInt8
	case types.Int16:
		return KindInt16
	case types.Int32, types.UntypedRune:
		return KindInt32
	case types.Int64:
		return KindInt64
	case types.Uint:
		return KindUint
	case types.Uint8:
		return KindUint8
	case types.Uint16:
		return KindUint16
	case types.Uint32:
		return KindUint32
	case types.Uint64:
		return KindUint64
	case types.Uintptr:
		return KindUintptr
	case types.Float32:
		return KindFloat32
	case types.Float64, types.UntypedFloat:
		return KindFloat64
	case types.String, types.UntypedString:
		return KindString
	default:
		return 0
	}
}
