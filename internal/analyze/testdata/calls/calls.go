// Package calls holds printf calls for the analyzer tests. Lines ending in a
// "want" comment list the diagnostic codes expected on that line.
package calls

import (
	"os"

	"safe-printf/printf"
)

type level int

type name string

const greeting = "hello %s, you are %d\n"

func Good(who string, n int, ratio float64, lvl level, raw []byte, ptr *string) {
	_, _ = printf.Sprintf("foo%sbar%d\n", printf.A(who), printf.A(n))
	_, _ = printf.Sprintf(greeting, printf.A(name(who)), printf.A(uint8(3)))
	_, _ = printf.Sprintf("%5.2f%% %g", printf.A(ratio), printf.A(float32(ratio)))
	_, _ = printf.Fprintf(os.Stderr, "%d %s %s", printf.A(lvl), printf.A(raw), printf.A(ptr))
	_, _ = printf.Printf("100%%\n")
	_ = printf.Check("%d", (printf.A(n)))

	checker := printf.New(printf.DefaultConfig())
	_ = checker.Check("%s", printf.A("x"))

	_ = printf.CheckAny("%d %s", 7, "seven")
}

func Bad(who string, n int, ratio float64) {
	_, _ = printf.Sprintf("%d%s%d", printf.A(who), printf.A("bar"), printf.A(3)) // want SP1001
	_ = printf.Check("%d", printf.A(ratio))                                      // want SP1001
	_ = printf.Check("%z", printf.A(n))                                          // want SP1002
	_ = printf.Check("%d%d", printf.A(n))                                        // want SP1003
	_ = printf.Check("%d", printf.A(n), printf.A(n))                             // want SP1004
	_ = printf.Check("%d %")                                                     // want SP1003

	checker := printf.New(printf.DefaultConfig())
	_, _ = checker.Printf("%s", printf.A(n)) // want SP1001

	_ = printf.CheckAny("%s", true) // want SP1001
}

func Unchecked(format string, arg printf.Arg, values []any) {
	_ = printf.Check(format, printf.A(1)) // want SP2001
	_ = printf.Check("%d", arg)           // want SP2002
	_ = printf.CheckAny("%d", values...)  // want SP2002
	_ = printf.CheckAny("%d", values[0])  // want SP2002
}
