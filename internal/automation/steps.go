package automation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/uvforge/cli/internal/prompt"
)

// Step is one automation command with its display description.
type Step struct {
	// Description is the human-readable step name shown in step lines.
	Description string

	// Name and Args form the command to execute.
	Name string
	Args []string

	// Condition, when set, is evaluated immediately before the step runs;
	// a false result skips the step.
	Condition func(ctx context.Context, r CommandRunner, dir string) (bool, error)

	// TolerateFailure, when set, inspects a non-zero result and reports
	// whether it should be treated as success.
	TolerateFailure func(res CmdResult) bool
}

// Command returns the step's command line for display.
func (s Step) Command() string {
	return s.Name + " " + strings.Join(s.Args, " ")
}

// Plan builds the ordered automation steps for a generated project.
// Steps run in the project directory and halt on the first failure.
func Plan(pctx *prompt.Context, dir string) []Step {
	dirty := func(ctx context.Context, r CommandRunner, dir string) (bool, error) {
		res, err := r.Run(ctx, "git", []string{"status", "--porcelain"}, RunOpts{Dir: dir})
		if err != nil {
			return false, err
		}
		return strings.TrimSpace(res.Stdout) != "", nil
	}

	return []Step{
		{
			Description: "initialize git repository",
			Name:        "git",
			Args:        []string{"init", "-b", "main"},
			Condition: func(_ context.Context, _ CommandRunner, dir string) (bool, error) {
				_, err := os.Stat(filepath.Join(dir, ".git"))
				return os.IsNotExist(err), nil
			},
		},
		{
			Description: "install project environment",
			Name:        "make",
			Args:        []string{"install"},
		},
		{
			Description: "create GitHub repository",
			Name:        "gh",
			Args:        []string{"repo", "create", pctx.ProjectName, "--public", "--source", "."},
			TolerateFailure: func(res CmdResult) bool {
				return strings.Contains(res.Stderr, "already exists")
			},
		},
		{
			Description: "stage project files",
			Name:        "git",
			Args:        []string{"add", "."},
		},
		{
			Description: "create initial commit",
			Name:        "git",
			Args:        []string{"commit", "-m", "init commit"},
		},
		{
			Description: "stage formatting changes",
			Name:        "git",
			Args:        []string{"add", "."},
			Condition:   dirty,
		},
		{
			Description: "commit formatting changes",
			Name:        "git",
			Args:        []string{"commit", "-m", "fix formatting"},
			Condition:   dirty,
		},
		{
			Description: "add git remote",
			Name:        "git",
			Args:        []string{"remote", "add", "origin", pctx.RepoURL()},
			Condition: func(ctx context.Context, r CommandRunner, dir string) (bool, error) {
				res, err := r.Run(ctx, "git", []string{"remote", "get-url", "origin"}, RunOpts{Dir: dir})
				if err != nil {
					return false, err
				}
				return res.ExitCode != 0, nil
			},
		},
		{
			Description: "push to GitHub",
			Name:        "git",
			Args:        []string{"push", "-u", "origin", "main"},
		},
	}
}
