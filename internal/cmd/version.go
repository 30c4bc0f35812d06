package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uvforge/cli/internal/output"
	"github.com/uvforge/cli/internal/uvtool"
	"github.com/uvforge/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show uvforge version information and the detected uv binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Println(version.FullVersionString(version.GetInfo(), uvtool.DetectBinary()))
			return nil
		},
	}
}
