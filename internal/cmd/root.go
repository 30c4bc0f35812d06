// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uvforge/cli/internal/config"
	"github.com/uvforge/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	forgeConfig *config.Config
)

// NewRootCmd creates the root command for the uvforge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "uvforge",
		Short:         "Scaffold uv-managed Python projects",
		Long:          `uvforge generates modern Python projects managed by uv, with optional GitHub repository setup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: UVFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewDoctorCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewPinsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Commands that don't need config should still work; config vet
		// reports problems properly.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	forgeConfig = cfg

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return forgeConfig
}

// GetConfigFlag returns the raw --config flag value.
func GetConfigFlag() string {
	return configFlag
}
