package verb

import (
	"unicode/utf8"

	"safe-printf/primitive"
)

// Options tune how strictly arguments are paired with verbs.
type Options struct {
	// AllowExcess accepts more arguments than verbs; the extra arguments are
	// reported as unconsumed instead of failing the match.
	AllowExcess bool
}

// Specifier is a single argument-consuming conversion found in a format.
type Specifier struct {
	Pos      int // byte offset of '%'
	End      int // byte offset just past the verb
	Verb     rune
	Category primitive.Category
}

// String returns the specifier as written in the format, without flags.
func (s Specifier) String() string {
	return "%" + string(s.Verb)
}

// VerbCategory returns the category verb expects.
func VerbCategory(verb rune) (primitive.Category, bool) {
	switch verb {
	case 'd':
		return primitive.CategoryIntegral, true
	case 'f', 'g':
		return primitive.CategoryFloatingPoint, true
	case 's':
		return primitive.CategoryStringLike, true
	default:
		return primitive.CategoryUnsupported, false
	}
}

// Match checks args against the verbs of format, one verb per argument in
// order of appearance. It returns the number of arguments consumed, which is
// less than len(args) only when opts.AllowExcess is set.
func Match(format string, args []primitive.Category, opts Options) (int, error) {
	s := scanner{format: format}

	for i, actual := range args {
		spec, ok, err := s.next()
		if err != nil {
			err.ArgIndex = i
			err.Actual = actual
			return i, err
		}

		if !ok {
			if opts.AllowExcess {
				return i, nil
			}

			return i, &Error{
				Kind:     KindArgumentCountExcess,
				Pos:      len(format),
				ArgIndex: i,
				Actual:   actual,
			}
		}

		if spec.Category != actual {
			return i, &Error{
				Kind:     KindTypeMismatch,
				Pos:      spec.Pos,
				ArgIndex: i,
				Verb:     spec.Verb,
				Expected: spec.Category,
				Actual:   actual,
			}
		}
	}

	// arguments exhausted: whatever is left of the format may only hold
	// literal percents
	spec, ok, err := s.next()
	if err != nil {
		err.ArgIndex = len(args)
		return len(args), err
	}

	if ok {
		return len(args), &Error{
			Kind:     KindDanglingSpecifier,
			Pos:      spec.Pos,
			ArgIndex: len(args),
			Verb:     spec.Verb,
			Expected: spec.Category,
		}
	}

	return len(args), nil
}

// Parse lists the argument-consuming specifiers of format.
func Parse(format string) ([]Specifier, error) {
	var specs []Specifier

	s := scanner{format: format}
	for {
		spec, ok, err := s.next()
		if err != nil {
			err.ArgIndex = len(specs)
			return specs, err
		}

		if !ok {
			return specs, nil
		}

		specs = append(specs, spec)
	}
}

// scanner walks a format left to right, stopping at each verb.
type scanner struct {
	format string
	pos    int
}

// next advances past the next argument-consuming specifier. It reports false
// once the format is exhausted.
func (s *scanner) next() (Specifier, bool, *Error) {
	for s.pos < len(s.format) {
		if s.format[s.pos] != '%' {
			s.pos++
			continue
		}

		start := s.pos
		s.pos++

		if s.pos < len(s.format) && s.format[s.pos] == '%' {
			s.pos++
			continue
		}

		s.skipModifiers()

		if s.pos >= len(s.format) {
			return Specifier{}, false, &Error{Kind: KindDanglingSpecifier, Pos: start}
		}

		verb, size := utf8.DecodeRuneInString(s.format[s.pos:])
		s.pos += size

		category, ok := VerbCategory(verb)
		if !ok {
			return Specifier{}, false, &Error{Kind: KindInvalidSpecifier, Pos: start, Verb: verb}
		}

		return Specifier{Pos: start, End: s.pos, Verb: verb, Category: category}, true, nil
	}

	return Specifier{}, false, nil
}

// skipModifiers steps over flags, width and precision.
func (s *scanner) skipModifiers() {
	for s.pos < len(s.format) && isFlag(s.format[s.pos]) {
		s.pos++
	}

	s.skipDigits()

	if s.pos < len(s.format) && s.format[s.pos] == '.' {
		s.pos++
		s.skipDigits()
	}
}

func (s *scanner) skipDigits() {
	for s.pos < len(s.format) && '0' <= s.format[s.pos] && s.format[s.pos] <= '9' {
		s.pos++
	}
}

func isFlag(c byte) bool {
	switch c {
	case '+', '-', '#', ' ', '0':
		return true
	default:
		return false
	}
}
