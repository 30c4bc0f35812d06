package automation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/output"
	"github.com/uvforge/cli/internal/prompt"
)

// maxRepoNameLength is GitHub's repository name limit.
const maxRepoNameLength = 100

var repoNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidateRepoName checks that a project name is acceptable as a GitHub
// repository name.
func ValidateRepoName(name string) error {
	if len(name) > maxRepoNameLength {
		return oerrors.NewValidationError(
			fmt.Sprintf("repository name exceeds %d characters", maxRepoNameLength),
			prompt.OptProjectName,
			"Choose a shorter project name",
		)
	}
	if !repoNameRegex.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid repository name %q", name),
			prompt.OptProjectName,
			"Repository names may only contain letters, digits, '.', '_', and '-'",
		)
	}
	if strings.HasPrefix(name, ".") {
		return oerrors.NewValidationError(
			fmt.Sprintf("repository name %q must not start with a period", name),
			prompt.OptProjectName,
			"Choose a name that does not begin with '.'",
		)
	}
	return nil
}

// Preflight verifies the external environment before any automation step
// runs: the repository name is valid, git and gh are installed, gh is
// authenticated, the git identity is configured, and the selected remote
// protocol is usable. A credential-helper gap on https only warns.
func Preflight(ctx context.Context, r CommandRunner, pctx *prompt.Context, dir string) error {
	if err := ValidateRepoName(pctx.ProjectName); err != nil {
		return err
	}

	if _, err := r.LookPath("git"); err != nil {
		return oerrors.NewEnvironmentError(
			"git is not installed",
			"Install git: https://git-scm.com/downloads",
		)
	}
	if _, err := r.LookPath("gh"); err != nil {
		return oerrors.NewEnvironmentError(
			"the GitHub CLI (gh) is not installed",
			"Install gh: https://cli.github.com",
		)
	}

	res, err := r.Run(ctx, "gh", []string{"auth", "status"}, RunOpts{Dir: dir})
	if err != nil {
		return fmt.Errorf("checking gh auth status: %w", err)
	}
	if res.ExitCode != 0 {
		return oerrors.NewEnvironmentError(
			"gh is not authenticated with GitHub",
			"Run 'gh auth login'",
		)
	}

	for _, key := range []string{"user.name", "user.email"} {
		res, err := r.Run(ctx, "git", []string{"config", "--get", key}, RunOpts{Dir: dir})
		if err != nil {
			return fmt.Errorf("checking git config %s: %w", key, err)
		}
		if res.ExitCode != 0 || strings.TrimSpace(res.Stdout) == "" {
			return oerrors.NewEnvironmentError(
				fmt.Sprintf("git %s is not configured", key),
				fmt.Sprintf("Run 'git config --global %s <value>'", key),
			)
		}
	}

	switch pctx.GitProtocol {
	case prompt.ProtocolSSH:
		return checkSSHAccess(ctx, r, dir)
	case prompt.ProtocolHTTPS:
		checkCredentialHelper(ctx, r, dir)
	}
	return nil
}

// checkSSHAccess probes GitHub over SSH. The probe exits non-zero even on
// success, so only the response text is meaningful.
func checkSSHAccess(ctx context.Context, r CommandRunner, dir string) error {
	res, err := r.Run(ctx, "ssh", []string{"-T", "git@github.com"}, RunOpts{Dir: dir})
	if err != nil {
		return oerrors.NewEnvironmentError(
			"could not probe GitHub over SSH",
			"Check that ssh is installed, or use the https git protocol",
		)
	}
	if !strings.Contains(res.Stderr, "successfully authenticated") &&
		!strings.Contains(res.Stdout, "successfully authenticated") {
		return oerrors.NewEnvironmentError(
			"SSH authentication to GitHub failed",
			"Add your SSH key to GitHub, or use the https git protocol",
		)
	}
	return nil
}

// checkCredentialHelper warns when https pushes are likely to prompt for
// credentials. This never fails the preflight.
func checkCredentialHelper(ctx context.Context, r CommandRunner, dir string) {
	res, err := r.Run(ctx, "git", []string{"config", "--get", "credential.helper"}, RunOpts{Dir: dir})
	if err != nil || res.ExitCode != 0 || strings.TrimSpace(res.Stdout) == "" {
		output.Warn("no git credential helper configured; the push may prompt for credentials")
	}
}
