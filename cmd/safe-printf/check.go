package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"safe-printf/internal/analyze"
	"safe-printf/internal/config"
	"safe-printf/internal/diagnostic"
)

// errFound is returned when the check reported at least one error.
var errFound = errors.New("printf errors found")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [packages]",
		Short: "Check printf calls in Go packages",
		Long: `Load the given Go packages (default ./...) and check every call to a configured
printf function whose format is a constant string against the static types of its arguments`,
		RunE: runCheck,
	}

	cmd.Flags().String("config", "", "config file (.yaml or .toml)")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("allow-excess", false, "accept arguments left over after the last verb")
	cmd.Flags().Bool("fmt", false, "also check the fmt printf family")
	cmd.Flags().Int("jobs", 0, "max packages checked in parallel (0=config or GOMAXPROCS)")
	cmd.Flags().Bool("tests", false, "include test files")
	cmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to show (0=all)")
	cmd.Flags().Bool("infos", false, "show info diagnostics for calls that could not be checked")
	cmd.Flags().Bool("dump-config", false, "print the effective configuration and exit")

	return cmd
}

// runCheck executes the "check" command. It returns errFound when any error
// diagnostic was reported so the process exits non-zero.
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	switch format {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	showInfos, err := cmd.Flags().GetBool("infos")
	if err != nil {
		return fmt.Errorf("failed to get infos flag: %w", err)
	}

	tests, err := cmd.Flags().GetBool("tests")
	if err != nil {
		return fmt.Errorf("failed to get tests flag: %w", err)
	}

	dumpConfig, err := cmd.Flags().GetBool("dump-config")
	if err != nil {
		return fmt.Errorf("failed to get dump-config flag: %w", err)
	}

	cfg, err := checkConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if dumpConfig {
		_, err := fmt.Fprint(out, spew.Sdump(cfg))
		return err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	analyzer := analyze.NewAnalyzer(analyze.Options{
		Config: cfg,
		Tests:  tests,
		Logger: logger,
	})

	res, err := analyzer.Run(cmd.Context(), patterns...)
	if err != nil {
		return err
	}

	if format == "json" {
		if err := diagnostic.WriteJSON(out, &res.Diagnostics); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
	} else {
		colored, err := useColor(cmd)
		if err != nil {
			return err
		}

		err = diagnostic.Pretty(out, &res.Diagnostics, diagnostic.PrettyOpts{
			Color: colored,
			Infos: showInfos,
			Max:   maxDiagnostics,
		})
		if err != nil {
			return err
		}

		if err := writeSummary(out, res); err != nil {
			return err
		}
	}

	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("%w: %s", errFound, english.Plural(len(res.Diagnostics.Errors), "error", ""))
	}

	return nil
}

// checkConfig loads the config file, if any, and applies flag overrides.
func checkConfig(cmd *cobra.Command) (*config.File, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg := config.Default()
	if path != "" {
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	allowExcess, err := cmd.Flags().GetBool("allow-excess")
	if err != nil {
		return nil, fmt.Errorf("failed to get allow-excess flag: %w", err)
	}
	if allowExcess {
		cfg.AllowExcess = true
	}

	withFmt, err := cmd.Flags().GetBool("fmt")
	if err != nil {
		return nil, fmt.Errorf("failed to get fmt flag: %w", err)
	}
	if withFmt {
		cfg.AddFunctions(config.FmtFunctions()...)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 0 {
		return nil, fmt.Errorf("jobs must not be negative, got %d", jobs)
	}
	if jobs > 0 {
		cfg.Jobs = jobs
	}

	return cfg, nil
}

func writeSummary(w io.Writer, res *analyze.Result) error {
	_, err := fmt.Fprintf(w, "checked %s %s in %s %s",
		humanize.Comma(int64(res.Calls)), english.PluralWord(res.Calls, "call", ""),
		humanize.Comma(int64(res.Packages)), english.PluralWord(res.Packages, "package", ""))
	if err != nil {
		return err
	}

	if res.Skipped > 0 {
		_, err = fmt.Fprintf(w, ", %s skipped", humanize.Comma(int64(res.Skipped)))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, ": %s, %s\n",
		english.Plural(len(res.Diagnostics.Errors), "error", ""),
		english.Plural(len(res.Diagnostics.Warnings), "warning", ""))

	return err
}
