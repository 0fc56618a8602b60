// Package main provides the CLI entrypoint for safe-printf.
//
// safe-printf checks printf-style calls before they run:
//   - check: loads Go packages and reports format/argument mismatches at build time
//   - format: formats shell arguments through the checked printf
//   - version: prints build information
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRootCmd builds the command tree. Tests build a fresh tree per run so flag
// state does not leak between them.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "safe-printf",
		Short:         "Type-checked printf for Go",
		Long:          `safe-printf validates printf format strings against their arguments, statically and at run time`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newFormatCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func main() {
	root := newRootCmd()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "safe-printf:", err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the command's output.
func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}

	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", colorFlag)
	}
}

// newLogger returns a stderr logger at debug level with --verbose and at
// warn level otherwise.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}
