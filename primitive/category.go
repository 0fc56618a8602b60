package primitive

//go:generate go tool stringer -type=Category -trimprefix=Category -output=category_string.go

// Category is the semantic class a conversion verb expects and an argument
// provides. Two categories are compatible only when they are equal.
type Category int

const (
	CategoryUnsupported   Category = iota // no verb accepts it
	CategoryIntegral                      // signed and unsigned integers, widened to int64 / uint64
	CategoryFloatingPoint                 // float32 and float64, named types dropped
	CategoryStringLike                    // string, []byte, *string
)

// Category maps a kind to the category it is checked against.
func (k KindEnum) Category() Category {
	switch {
	case k.IsInteger():
		return CategoryIntegral
	case k.IsFloat():
		return CategoryFloatingPoint
	case k.IsText():
		return CategoryStringLike
	default:
		return CategoryUnsupported
	}
}
