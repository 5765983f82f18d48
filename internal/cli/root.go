// Package cli implements the cvrp command line: solve, worker, generate and
// history.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvrp/internal/logging"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "cvrp",
		Short:             "Exhaustive capacitated vehicle routing solver for small instances.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging(input),
	}
	rootCmd.SetContext(ctx)

	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&input.envFile, "env-file", ".env", "dotenv file with CVRP_* settings")
	rootCmd.PersistentFlags().StringVar(&input.flags.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&input.flags.LogFormat, "log-format", logging.FormatText, "log format (text, json)")

	rootCmd.AddCommand(
		newSolveCommand(input),
		newWorkerCommand(input),
		newGenerateCommand(input),
		newHistoryCommand(input),
	)

	return rootCmd
}

// setupLogging installs the configured logger into the command context.
func setupLogging(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := input.resolve(cmd)
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

		return nil
	}
}
