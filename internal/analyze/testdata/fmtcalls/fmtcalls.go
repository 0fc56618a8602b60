// Package fmtcalls holds fmt printf calls for the analyzer tests. Lines ending
// in a "want" comment list the diagnostic codes expected on that line.
package fmtcalls

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

type gizmo struct{}

func (gizmo) String() string { return "gizmo" }

type point struct{ x, y int }

func Calls(who string, n int, err error, v any, d time.Duration, errno syscall.Errno) {
	fmt.Printf("%s has %d\n", who, n)
	fmt.Printf("%s %s\n", gizmo{}, err)
	_ = fmt.Errorf("wrapped: %s", err)
	fmt.Printf("took %s (%d ns)\n", d, d)
	_ = fmt.Errorf("errno %s", errno)

	fmt.Printf("%d\n", who)                 // want SP1001
	fmt.Fprintf(os.Stdout, "%s\n", point{}) // want SP1001
	fmt.Printf("%f\n", d)                   // want SP1001
	fmt.Printf("%s\n", v)                   // want SP2002
	_ = fmt.Sprintf("%v", n)                // want SP2003
	_ = fmt.Errorf("open: %w", err)         // want SP2003
}
