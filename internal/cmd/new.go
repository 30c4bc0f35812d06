package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uvforge/cli/internal/automation"
	"github.com/uvforge/cli/internal/config"
	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/output"
	"github.com/uvforge/cli/internal/prompt"
	"github.com/uvforge/cli/internal/scaffold"
	"github.com/uvforge/cli/internal/uvtool"
)

var (
	// String option flags
	newSlugFlag         string
	newDescriptionFlag  string
	newAuthorFlag       string
	newEmailFlag        string
	newGithubHandleFlag string
	newLicenseFlag      string
	newLayoutFlag       string
	newPythonFlag       string
	newGitProtocolFlag  string

	// Boolean option flags. These take "y" or "n"; empty means unset so
	// config, answer-file, and interactive values keep their precedence.
	newGithubActionsFlag string
	newMkDocsFlag        string
	newCodecovFlag       string
	newDockerfileFlag    string
	newDevcontainerFlag  string
	newPublishPyPIFlag   string

	// Behavior flags
	newAnswersFlag         string
	newDirFlag             string
	newInteractiveFlag     bool
	newDefaultsFlag        bool
	newGithubSetupFlag     bool
	newDryRunFlag          bool
	newSkipPythonCheckFlag bool
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Generate a new uv-managed Python project",
		Long: `Generate a new Python project managed by uv.

Option values are resolved in order: built-in defaults, the config file,
an answers file (--answers), command-line flags, and finally the
interactive form for anything still unanswered.

The selected Python version must be installed via uv unless the check is
skipped with --skip-python-check.

Examples:
  # Prompt for everything
  uvforge new

  # Generate with defaults, no prompting
  uvforge new my-app --defaults

  # Flat layout without CI
  uvforge new my-app --defaults --layout flat --github-actions n

  # Generate and set up the GitHub repository
  uvforge new my-app --defaults --github-setup

  # Preview the automation commands without running them
  uvforge new my-app --defaults --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNew,
	}

	f := cmd.Flags()
	f.StringVar(&newSlugFlag, "slug", "", "Project slug (module name, derived from the name by default)")
	f.StringVar(&newDescriptionFlag, "description", "", "Short project description")
	f.StringVar(&newAuthorFlag, "author", "", "Author name")
	f.StringVar(&newEmailFlag, "email", "", "Author email")
	f.StringVar(&newGithubHandleFlag, "github-handle", "", "GitHub handle for repository URLs")
	f.StringVar(&newLicenseFlag, "license", "", "License: MIT, BSD, ISC, Apache-2.0, GPL-3.0, Proprietary")
	f.StringVar(&newLayoutFlag, "layout", "", "Project layout: flat or src")
	f.StringVar(&newPythonFlag, "python", "", "Python version: 3.10 through 3.14")
	f.StringVar(&newGitProtocolFlag, "git-protocol", "", "Git remote protocol: ssh or https")

	f.StringVar(&newGithubActionsFlag, "github-actions", "", "Include GitHub Actions workflows (y/n)")
	f.StringVar(&newMkDocsFlag, "mkdocs", "", "Include MkDocs documentation (y/n)")
	f.StringVar(&newCodecovFlag, "codecov", "", "Include codecov configuration (y/n)")
	f.StringVar(&newDockerfileFlag, "dockerfile", "", "Include a Dockerfile (y/n)")
	f.StringVar(&newDevcontainerFlag, "devcontainer", "", "Include a devcontainer (y/n)")
	f.StringVar(&newPublishPyPIFlag, "publish-pypi", "", "Publish releases to PyPI (y/n)")

	f.StringVar(&newAnswersFlag, "answers", "", "Path to a YAML answers file")
	f.StringVar(&newDirFlag, "dir", "", "Target directory (defaults to the project name)")
	f.BoolVar(&newInteractiveFlag, "interactive", true, "Prompt for unanswered options on a terminal")
	f.BoolVar(&newDefaultsFlag, "defaults", false, "Accept defaults for all unanswered options, never prompt")
	f.BoolVar(&newGithubSetupFlag, "github-setup", false, "Initialize git, create the GitHub repository, and push")
	f.BoolVar(&newDryRunFlag, "dry-run", false, "Print the automation commands without executing them")
	f.BoolVar(&newSkipPythonCheckFlag, "skip-python-check", false, "Skip the uv-managed Python version check")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	answers := prompt.Answers{}
	if cfg != nil {
		answers.Merge(cfg.AsAnswers())
	}

	if newAnswersFlag != "" {
		fromFile, err := prompt.LoadAnswersFile(newAnswersFlag)
		if err != nil {
			return err
		}
		answers.Merge(fromFile)
	}

	if len(args) == 1 {
		answers[prompt.OptProjectName] = args[0]
	}
	answers.Merge(flagAnswers())

	if newInteractiveFlag && !newDefaultsFlag && output.IsTTY() {
		if err := prompt.FillInteractive(answers); err != nil {
			return err
		}
	}

	ctx, err := prompt.Resolve(answers)
	if err != nil {
		return err
	}

	if err := checkPythonVersion(cfg, ctx); err != nil {
		return err
	}

	targetDir := newDirFlag
	if targetDir == "" {
		targetDir = ctx.ProjectName
	}

	result, err := scaffold.Generate(scaffold.GenerateOptions{
		TargetDir: targetDir,
		Context:   ctx,
	})
	if err != nil {
		return err
	}

	output.Println(output.RenderSimpleTree(ctx.ProjectName, result.Files))
	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Created %s (%d files)", output.StyleNoun.Render(result.TargetDir), len(result.Files))))

	return runAutomation(cmd, cfg, ctx, result.TargetDir)
}

// flagAnswers collects explicitly-set option flags into answers.
func flagAnswers() prompt.Answers {
	a := prompt.Answers{}
	set := func(name, value string) {
		if value != "" {
			a[name] = value
		}
	}

	set(prompt.OptProjectSlug, newSlugFlag)
	set(prompt.OptDescription, newDescriptionFlag)
	set(prompt.OptAuthor, newAuthorFlag)
	set(prompt.OptEmail, newEmailFlag)
	set(prompt.OptGithubHandle, newGithubHandleFlag)
	set(prompt.OptLicense, newLicenseFlag)
	set(prompt.OptLayout, newLayoutFlag)
	set(prompt.OptPythonVersion, newPythonFlag)
	set(prompt.OptGitProtocol, newGitProtocolFlag)

	set(prompt.OptGithubActions, newGithubActionsFlag)
	set(prompt.OptMkDocs, newMkDocsFlag)
	set(prompt.OptCodecov, newCodecovFlag)
	set(prompt.OptDockerfile, newDockerfileFlag)
	set(prompt.OptDevcontainer, newDevcontainerFlag)
	set(prompt.OptPublishPyPI, newPublishPyPIFlag)

	return a
}

// checkPythonVersion enforces the uv-managed Python precondition. A broken
// or missing uv installation only warns; a missing interpreter version for
// the selected Python fails.
func checkPythonVersion(cfg *config.Config, ctx *prompt.Context) error {
	if newSkipPythonCheckFlag || (cfg != nil && cfg.SkipPythonCheck) {
		output.Debug("skipping Python version check")
		return nil
	}

	info := uvtool.DetectBinary()
	if !info.Found {
		output.Warn("uv not found on PATH; skipping Python version check",
			"hint", "https://docs.astral.sh/uv/getting-started/installation/")
		return nil
	}

	lines, err := uvtool.ListPythonVersions()
	if err != nil {
		output.Warn("could not list uv-managed Python versions", "error", err)
		return nil
	}

	installed := uvtool.InstalledVersions(lines)
	if !uvtool.HasVersion(installed, ctx.PythonVersion) {
		return oerrors.NewEnvironmentError(
			fmt.Sprintf("Python %s is not installed via uv", ctx.PythonVersion),
			fmt.Sprintf("Run 'uv python install %s', or pass --skip-python-check", ctx.PythonVersion),
		)
	}

	output.Debug("Python version available", "version", ctx.PythonVersion)
	return nil
}

// runAutomation runs the post-generation git/GitHub sequence when enabled.
func runAutomation(cmd *cobra.Command, cfg *config.Config, ctx *prompt.Context, dir string) error {
	mode := automation.ModeDisabled
	switch {
	case newDryRunFlag || (cfg != nil && cfg.Automation.DryRun):
		mode = automation.ModeDryRun
	case newGithubSetupFlag || (cfg != nil && cfg.Automation.GithubSetup):
		mode = automation.ModeLive
	}
	if mode == automation.ModeDisabled {
		return nil
	}

	_, err := automation.Run(cmd.Context(), automation.Options{
		Mode:    mode,
		Dir:     dir,
		Context: ctx,
	})
	if err != nil {
		return err
	}

	if mode == automation.ModeLive {
		output.Println(output.FormatCheckmark("GitHub repository configured"))
	}
	return nil
}
