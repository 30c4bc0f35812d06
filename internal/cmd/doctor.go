package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/uvforge/cli/internal/automation"
	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/output"
	"github.com/uvforge/cli/internal/uvtool"
)

// doctorRunner executes the external tool checks; swapped out in tests.
var doctorRunner automation.CommandRunner = automation.NewRealRunner()

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the local environment",
		Long: `Check that the tools uvforge depends on are installed and usable.

uv is required for generated projects; git and gh are only needed for
the --github-setup automation.

Examples:
  uvforge doctor`,
		RunE: runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	runner := doctorRunner
	healthy := true

	info := uvtool.DetectBinary()
	if info.Found && info.Message == "" {
		output.Println(output.FormatCheckmark("uv " + info.Version + " (" + info.Path + ")"))

		if lines, err := uvtool.ListPythonVersions(); err == nil {
			installed := uvtool.InstalledVersions(lines)
			if len(installed) == 0 {
				output.Warn("no uv-managed Python interpreters installed",
					"hint", "Run 'uv python install 3.13'")
			} else {
				output.Println(output.FormatCheckmark(
					"Python interpreters: " + strings.Join(installed, ", ")))
			}
		} else {
			output.Warn("could not list uv-managed Python versions", "error", err)
		}
	} else {
		healthy = false
		output.Error("uv is not usable", "detail", info.Message)
	}

	if path, err := runner.LookPath("git"); err == nil {
		output.Println(output.FormatCheckmark("git (" + path + ")"))

		for _, key := range []string{"user.name", "user.email"} {
			res, runErr := runner.Run(cmd.Context(), "git",
				[]string{"config", "--get", key}, automation.RunOpts{})
			if value := strings.TrimSpace(res.Stdout); runErr == nil && res.ExitCode == 0 && value != "" {
				output.Println(output.FormatCheckmark("git " + key + " (" + value + ")"))
			} else {
				output.Warn("git "+key+" is not set; commits made by --github-setup will fail",
					"hint", "Run 'git config --global "+key+" <value>'")
			}
		}
	} else {
		output.Warn("git not found on PATH; --github-setup will not work")
	}

	if path, err := runner.LookPath("gh"); err == nil {
		output.Println(output.FormatCheckmark("gh (" + path + ")"))

		res, runErr := runner.Run(cmd.Context(), "gh", []string{"auth", "status"}, automation.RunOpts{})
		if runErr == nil && res.ExitCode == 0 {
			output.Println(output.FormatCheckmark("gh authenticated"))
		} else {
			output.Warn("gh is not authenticated", "hint", "Run 'gh auth login'")
		}
	} else {
		output.Warn("gh not found on PATH; --github-setup will not work")
	}

	if cfg := GetConfig(); cfg != nil {
		if errs := cfg.Validate(); len(errs) > 0 {
			healthy = false
			for _, e := range errs {
				output.Error("invalid config default", "error", e)
			}
		}
	}

	if !healthy {
		return oerrors.NewEnvironmentError(
			"environment checks failed",
			"Fix the reported problems and run 'uvforge doctor' again",
		)
	}

	output.Println(output.FormatCheckmark("environment looks good"))
	return nil
}
