package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/revoker/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Version needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Logo())
			fmt.Fprintln(out)
			ver, rev, built := resolveBuild()
			fmt.Fprintf(out, "revoker %s\n", ver)
			if rev != "" && rev != "unknown" {
				fmt.Fprintf(out, "commit %s\n", rev)
			}
			if built != "" && built != "unknown" {
				fmt.Fprintf(out, "built %s\n", built)
			}
		},
	}
}

func resolvedVersion() string {
	ver, _, _ := resolveBuild()
	return ver
}

func resolveBuild() (string, string, string) {
	ver := strings.TrimSpace(version)
	rev := strings.TrimSpace(commit)
	built := strings.TrimSpace(date)
	if info, ok := debug.ReadBuildInfo(); ok {
		if ver == "" || ver == "dev" {
			if info.Main.Version != "" && info.Main.Version != "(devel)" {
				ver = info.Main.Version
			}
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if rev == "" || rev == "unknown" {
					rev = setting.Value
				}
			case "vcs.time":
				if built == "" || built == "unknown" {
					built = setting.Value
				}
			}
		}
	}
	if ver == "" {
		ver = "dev"
	}
	return ver, rev, built
}
