package main

import (
	"github.com/ib-77/staticflow/internal/logging"
	"github.com/ib-77/staticflow/pkg/flow/core"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flowdemo",
		Short:         "Run small programs built from branch chains and loops",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			maxSteps, _ := cmd.Flags().GetInt("max-steps")

			ctx := core.WithLoopOptions(cmd.Context(), maxSteps)
			ctx = core.WithLogger(ctx, logging.New(cmd.ErrOrStderr(), logging.ParseLevel(level)))
			cmd.SetContext(ctx)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Int("max-steps", 0, "Maximum loop steps, 0 for no limit")

	rootCmd.AddCommand(newSumCmd(), newClassifyCmd())
	return rootCmd
}
