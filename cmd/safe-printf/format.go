package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"safe-printf/printf"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [flags] <format> [args...]",
		Short: "Format arguments through the checked printf",
		Long: `Format the arguments with the given format after checking them against its verbs.
An argument is typed by prefix: i: (integer), u: (unsigned), f: (float), s: (string).
Without a prefix, integers, then floats, then strings are tried.
Backslash escapes in the format (\n, \t) are interpreted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFormat,
	}

	cmd.Flags().Bool("allow-excess", false, "accept arguments left over after the last verb")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	allowExcess, err := cmd.Flags().GetBool("allow-excess")
	if err != nil {
		return fmt.Errorf("failed to get allow-excess flag: %w", err)
	}

	values := make([]printf.Arg, 0, len(args)-1)
	for _, raw := range args[1:] {
		arg, err := parseArg(raw)
		if err != nil {
			return err
		}
		values = append(values, arg)
	}

	checker := printf.New(printf.Config{AllowExcess: allowExcess})

	_, err = checker.Fprintf(cmd.OutOrStdout(), unescape(args[0]), values...)

	return err
}

// parseArg builds a checked argument from its command-line form.
func parseArg(raw string) (printf.Arg, error) {
	if prefix, rest, ok := strings.Cut(raw, ":"); ok {
		switch prefix {
		case "i":
			v, err := strconv.ParseInt(rest, 0, 64)
			if err != nil {
				return printf.Arg{}, fmt.Errorf("argument %q: %w", raw, err)
			}
			return printf.A(v), nil

		case "u":
			v, err := strconv.ParseUint(rest, 0, 64)
			if err != nil {
				return printf.Arg{}, fmt.Errorf("argument %q: %w", raw, err)
			}
			return printf.A(v), nil

		case "f":
			v, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return printf.Arg{}, fmt.Errorf("argument %q: %w", raw, err)
			}
			return printf.A(v), nil

		case "s":
			return printf.A(rest), nil
		}
	}

	if v, err := strconv.ParseInt(raw, 0, 64); err == nil {
		return printf.A(v), nil
	}

	// words like "nan" or "inf" stay strings unless prefixed with f:
	if strings.ContainsAny(raw, "0123456789") {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return printf.A(v), nil
		}
	}

	return printf.A(raw), nil
}

// unescape interprets Go backslash escapes in s, returning s unchanged when
// it holds an invalid escape.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	out, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return s
	}

	return out
}
