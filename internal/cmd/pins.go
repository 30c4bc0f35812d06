package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/output"
	"github.com/uvforge/cli/internal/pins"
)

// pinsFetcher resolves latest versions; swapped out in tests.
var pinsFetcher pins.VersionFetcher = pins.NewHTTPFetcher()

// NewPinsCmd creates the pins maintenance command.
func NewPinsCmd() *cobra.Command {
	var (
		dir    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "pins",
		Short: "Update the version pins in the project template",
		Long: `Update the versions pinned in the project template sources: the
dev-dependency floors in pyproject.toml, the uv version installed by the
CI setup action, and the pre-commit hook revisions.

This is a maintenance command for uvforge development. It rewrites the
template sources in a checkout of this repository, not generated
projects.

Examples:
  uvforge pins --dry-run
  uvforge pins --dir internal/scaffold/project`,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPins(cmd, dir, dryRun)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", filepath.Join("internal", "scaffold", "project"),
		"Template root to rewrite")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Resolve versions and report pins without rewriting files")

	return cmd
}

func runPins(cmd *cobra.Command, dir string, dryRun bool) error {
	results := pins.Update(cmd.Context(), pins.Options{
		Dir:     dir,
		DryRun:  dryRun,
		Fetcher: pinsFetcher,
	})

	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			output.Warn("could not update pin", "pin", r.Name, "error", r.Err)
		case r.Matches == 0:
			failed++
			output.Warn("pin not found in template", "pin", r.Name, "file", r.File)
		case dryRun:
			output.Println(output.FormatStepLine(
				fmt.Sprintf("%s -> %s (%s)", r.Name, r.Version, r.File), output.StatusDryRun))
		default:
			output.Println(output.FormatCheckmark(
				fmt.Sprintf("%s -> %s (%s)", r.Name, r.Version, r.File)))
		}
	}

	if failed > 0 {
		return oerrors.NewEnvironmentError(
			fmt.Sprintf("%d of %d pins could not be updated", failed, len(results)),
			"Check network access to pypi.org and api.github.com, and that --dir points at the template root",
		)
	}
	return nil
}
