package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uvforge/cli/internal/config"
	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the uvforge configuration file.

Every configured default must be a legal answer for its option.

Examples:
  uvforge config vet
  uvforge config vet --config ./config.yaml`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	exists, err := config.ConfigFileExists(GetConfigFlag())
	if err != nil {
		return err
	}
	if !exists {
		return oerrors.NewNotFoundError(
			"no configuration file found",
			GetConfigFlag(),
			"Run 'uvforge config init' to create one",
		)
	}

	cfg, err := config.NewLoader().Load(GetConfigFlag())
	if err != nil {
		return err
	}

	errs := cfg.Validate()
	if len(errs) > 0 {
		for _, e := range errs {
			output.Error("invalid default", "error", e)
		}
		return oerrors.NewValidationError(
			"configuration is invalid",
			"",
			"Fix the reported defaults and run 'uvforge config vet' again",
		)
	}

	output.Println(output.FormatCheckmark("configuration is valid"))
	return nil
}
