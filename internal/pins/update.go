package pins

import "regexp"

// Updater rewrites one kind of pinned version in a template file.
type Updater interface {
	// Path is the file the updater rewrites, relative to the template
	// root, with forward slashes.
	Path() string

	// Apply rewrites content, returning the updated text and the number
	// of pins matched.
	Apply(content string) (updated string, matches int)
}

// PyprojectUpdater raises the ">=" floor of one dev dependency in the
// template pyproject.toml. Extras suffixes like "[python]" are kept.
type PyprojectUpdater struct {
	Package string
	Version string
}

func (u *PyprojectUpdater) Path() string {
	return "pyproject.toml.tmpl"
}

func (u *PyprojectUpdater) Apply(content string) (string, int) {
	re := regexp.MustCompile(`"(` + regexp.QuoteMeta(u.Package) + `(?:\[[^\]]*\])?)>=[^"]+"`)
	matches := len(re.FindAllString(content, -1))
	return re.ReplaceAllString(content, `"${1}>=`+u.Version+`"`), matches
}

// ActionUpdater pins the default uv version installed by the CI setup
// action.
type ActionUpdater struct {
	Version string
}

var uvVersionRe = regexp.MustCompile(
	`(uv-version:\s*\n\s*description:[^\n]*\n\s*required:[^\n]*\n\s*default: ")[0-9]+\.[0-9]+\.[0-9]+(")`)

func (u *ActionUpdater) Path() string {
	return ".github/actions/setup-python-env/action.yml"
}

func (u *ActionUpdater) Apply(content string) (string, int) {
	matches := len(uvVersionRe.FindAllString(content, -1))
	return uvVersionRe.ReplaceAllString(content, "${1}"+u.Version+"${2}"), matches
}

// HookUpdater pins the rev of one pre-commit hook repository.
type HookUpdater struct {
	URL     string
	Version string
}

func (u *HookUpdater) Path() string {
	return ".pre-commit-config.yaml"
}

func (u *HookUpdater) Apply(content string) (string, int) {
	re := regexp.MustCompile(`(- repo: ` + regexp.QuoteMeta(u.URL) + `\s*\n\s*rev: ")[^"]+(")`)
	matches := len(re.FindAllString(content, -1))
	return re.ReplaceAllString(content, "${1}v"+u.Version+"${2}"), matches
}
