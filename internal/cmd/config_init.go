package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uvforge/cli/internal/config"
	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the uvforge configuration.

Creates ~/.uvforge/config.yaml with the built-in defaults as a
commented starting point.

Examples:
  # Initialize configuration
  uvforge config init

  # Overwrite existing configuration
  uvforge config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return oerrors.Wrap(oerrors.ErrEnvironment, "could not create ~/.uvforge directory")
	}

	body, err := config.DefaultConfigYAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(paths.ConfigFile, []byte(body), 0o600); err != nil {
		return oerrors.Wrap(oerrors.ErrEnvironment, "could not write config.yaml")
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Validate with: uvforge config vet")

	return nil
}
