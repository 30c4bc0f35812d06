package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage uvforge configuration",
		Long: `Manage the uvforge configuration file.

The configuration lives at ~/.uvforge/config.yaml and stores default
prompt answers and automation settings. UVFORGE_CONFIG overrides the
file location.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}
