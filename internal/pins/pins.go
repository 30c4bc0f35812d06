// Package pins keeps the versions pinned inside the project template
// current: the dev-dependency floors in pyproject.toml, the uv version
// the CI action installs, and the pre-commit hook revisions. It is
// maintenance tooling for uvforge developers and rewrites the template
// sources in a repository checkout, not generated projects.
package pins

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// GitHubRepo identifies a repository on github.com.
type GitHubRepo struct {
	Owner string
	Name  string
}

func (r GitHubRepo) String() string {
	return r.Owner + "/" + r.Name
}

// PyPIPackages are the dev dependencies whose ">=" floors are tracked
// in the template pyproject.toml.
var PyPIPackages = []string{
	"pytest",
	"pytest-cov",
	"prek",
	"tox-uv",
	"deptry",
	"mypy",
	"ruff",
	"mkdocs",
	"mkdocs-material",
	"mkdocstrings",
}

// UVRepo tags the uv releases the CI setup action installs.
var UVRepo = GitHubRepo{Owner: "astral-sh", Name: "uv"}

// Hook pairs a pre-commit hook repository URL with the GitHub
// repository that tags its releases.
type Hook struct {
	URL  string
	Repo GitHubRepo
}

// Hooks are the pre-commit repositories pinned by rev in the template.
var Hooks = []Hook{
	{
		URL:  "https://github.com/pre-commit/pre-commit-hooks",
		Repo: GitHubRepo{Owner: "pre-commit", Name: "pre-commit-hooks"},
	},
	{
		URL:  "https://github.com/astral-sh/ruff-pre-commit",
		Repo: GitHubRepo{Owner: "astral-sh", Name: "ruff-pre-commit"},
	},
}

// Result records the outcome for one tracked pin.
type Result struct {
	// Name identifies the pin: a PyPI package, "uv", or a hook repo URL.
	Name string

	// File is the rewritten file, relative to the template root.
	File string

	// Version is the latest released version, when resolved.
	Version string

	// Matches counts the occurrences the updater found in the file.
	Matches int

	// Err is set when the version lookup or the rewrite failed.
	Err error
}

// Options configures a pin update run.
type Options struct {
	// Dir is the template root to rewrite.
	Dir string

	// DryRun resolves versions and counts matches without writing.
	DryRun bool

	// Fetcher resolves latest versions.
	Fetcher VersionFetcher
}

// Update resolves the latest version of every tracked pin and rewrites
// the template files in place. Lookup failures are reported per pin so
// one unreachable index does not abort the rest of the run.
func Update(ctx context.Context, opts Options) []Result {
	results := make([]Result, 0, len(PyPIPackages)+len(Hooks)+1)

	for _, pkg := range PyPIPackages {
		version, err := opts.Fetcher.PyPIVersion(ctx, pkg)
		if err != nil {
			results = append(results, Result{Name: pkg, Err: err})
			continue
		}
		u := &PyprojectUpdater{Package: pkg, Version: version}
		results = append(results, apply(opts, u, pkg, version))
	}

	if version, err := opts.Fetcher.GitHubRelease(ctx, UVRepo); err != nil {
		results = append(results, Result{Name: "uv", Err: err})
	} else {
		u := &ActionUpdater{Version: version}
		results = append(results, apply(opts, u, "uv", version))
	}

	for _, hook := range Hooks {
		version, err := opts.Fetcher.GitHubTag(ctx, hook.Repo)
		if err != nil {
			results = append(results, Result{Name: hook.URL, Err: err})
			continue
		}
		u := &HookUpdater{URL: hook.URL, Version: version}
		results = append(results, apply(opts, u, hook.URL, version))
	}

	return results
}

func apply(opts Options, u Updater, name, version string) Result {
	res := Result{Name: name, File: u.Path(), Version: version}

	path := filepath.Join(opts.Dir, filepath.FromSlash(u.Path()))
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", u.Path(), err)
		return res
	}

	updated, matches := u.Apply(string(data))
	res.Matches = matches

	if opts.DryRun || matches == 0 || updated == string(data) {
		return res
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", u.Path(), err)
	}
	return res
}
