package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/revoker/internal/config"
	"github.com/suryansh-23/revoker/internal/debug"
	"github.com/suryansh-23/revoker/internal/detect"
	"github.com/suryansh-23/revoker/internal/report"
	"github.com/suryansh-23/revoker/internal/tokentype"
	"github.com/suryansh-23/revoker/internal/types"
)

func newRootCmd(state *appState) *cobra.Command {
	var (
		cfgPath     string
		debugFlag   bool
		jsonFlag    bool
		noInitHints bool
	)

	rootCmd := &cobra.Command{
		Use:           "revoker",
		Short:         "Identify leaked credentials and revoke them at the issuing service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			cfg, found, err := config.Load(resolvedPath)
			if err != nil {
				return err
			}
			config.ApplyEnv(&cfg)
			applyOverrides(&cfg, debugFlag, jsonFlag)
			if err := cfg.Validate(); err != nil {
				return err
			}

			state.cfg = cfg
			state.cfgFound = found
			state.cfgPath = resolvedPath
			state.logger = debug.New(cfg.Debug.Enabled)
			state.reporter, err = report.NewSentry(report.Options{
				DSN:         cfg.Reporting.SentryDSN,
				Environment: cfg.Reporting.Environment,
				Release:     "revoker@" + resolvedVersion(),
			})
			if err != nil {
				state.logger.Warn("error reporting disabled", "err", err)
				state.reporter = report.Nop{}
			}
			state.env = tokentype.NewEnv(cfg, state.logger, state.reporter)
			state.registry, err = detect.NewRegistry(tokentype.All(state.env), cfg)
			if err != nil {
				return err
			}
			if !found && !noInitHints && cmd.Name() != "init" && cfg.Output.Format != types.FormatJSON {
				fmt.Fprintln(os.Stderr, "revoker: no config found; using defaults (run `revoker init` to customize)")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging (tokens are always redacted)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "print machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&noInitHints, "no-init-hints", false, "suppress init guidance")

	rootCmd.AddCommand(newRevokeCmd(state))
	rootCmd.AddCommand(newDetectCmd(state))
	rootCmd.AddCommand(newTypesCmd(state))
	rootCmd.AddCommand(newRedactCmd(state))
	rootCmd.AddCommand(newInitCmd(&cfgPath))
	rootCmd.AddCommand(newDoctorCmd(state))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func applyOverrides(cfg *config.Config, debugFlag, jsonFlag bool) {
	if debugFlag {
		cfg.Debug.Enabled = true
	}
	if jsonFlag {
		cfg.Output.Format = types.FormatJSON
	}
}
