package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version   string
	GoVersion string
	Revision  string
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show safe-printf build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			colored, err := useColor(cmd)
			if err != nil {
				return err
			}

			renderVersion(cmd.OutOrStdout(), collectVersionInfo(), colored)
			return nil
		},
	}
}

func collectVersionInfo() versionInfo {
	info := versionInfo{Version: "dev"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	info.GoVersion = bi.GoVersion

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.Revision = s.Value
		}
	}

	return info
}

func renderVersion(out io.Writer, info versionInfo, colored bool) {
	name := color.New(color.FgCyan, color.Bold)
	if colored {
		name.EnableColor()
	} else {
		name.DisableColor()
	}

	fmt.Fprintf(out, "%s %s\n", name.Sprint("safe-printf"), info.Version)
	if info.GoVersion != "" {
		fmt.Fprintf(out, "go:     %s\n", info.GoVersion)
	}
	if info.Revision != "" {
		fmt.Fprintf(out, "commit: %s\n", info.Revision)
	}
}
