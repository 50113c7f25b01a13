// Package commands wires the hotel binaries: the REST API, the web client
// and the database maintenance tasks.
package commands

import (
	"fmt"
	"os"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hotel",
		Short:         "Hotel Amin International booking platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		ServeCmd(),
		WebCmd(),
		MigrateCmd(),
		SeedCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(service string) (*config.Config, *zap.Logger, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log, err := cfg.Logger(service)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}
