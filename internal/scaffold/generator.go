package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/output"
	"github.com/uvforge/cli/internal/prompt"
)

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// TargetDir is the directory to generate the project in.
	// It must not already exist.
	TargetDir string

	// Context is the fully-resolved template context.
	Context *prompt.Context
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the sorted list of files in the final tree, relative to TargetDir.
	Files []string

	// TargetDir is the directory where files were created.
	TargetDir string
}

// Generate renders the embedded template into the target directory:
// every path and body is rendered with the context, then gated paths whose
// predicate evaluated false are removed, the license file is selected, the
// layout restructure is applied, and directories left empty are pruned.
// The partial tree is removed on failure.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	if _, err := os.Stat(opts.TargetDir); err == nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("directory already exists: %s", opts.TargetDir),
			Location: opts.TargetDir,
			Hint:     "Choose a different directory or remove the existing one.",
			Cause:    oerrors.ErrValidation,
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking target directory %s: %w", opts.TargetDir, err)
	}

	if err := os.MkdirAll(opts.TargetDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", opts.TargetDir, err)
	}

	result, err := generate(opts)
	if err != nil {
		// Clean up the partial tree on failure
		_ = os.RemoveAll(opts.TargetDir)
		return nil, err
	}

	return result, nil
}

func generate(opts GenerateOptions) (*GenerateResult, error) {
	ctx := opts.Context
	renderer := NewRenderer(ctx)

	output.Debug("generating project",
		"name", ctx.ProjectName,
		"slug", ctx.ProjectSlug,
		"layout", ctx.Layout,
		"target", opts.TargetDir)

	if err := renderAll(renderer, opts.TargetDir); err != nil {
		return nil, err
	}

	if err := pruneGated(ctx, opts.TargetDir); err != nil {
		return nil, err
	}

	if err := selectLicense(ctx, opts.TargetDir); err != nil {
		return nil, err
	}

	if err := applyLayout(ctx, opts.TargetDir); err != nil {
		return nil, err
	}

	if err := pruneEmptyDirs(opts.TargetDir); err != nil {
		return nil, err
	}

	files, err := listFiles(opts.TargetDir)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Files:     files,
		TargetDir: opts.TargetDir,
	}, nil
}

// renderAll walks the embedded template and writes every rendered file.
func renderAll(renderer *Renderer, targetDir string) error {
	return fs.WalkDir(templateFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(templateRoot, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		targetPath := filepath.Join(targetDir, renderer.RenderPath(relPath))

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0o755)
		}

		content, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		if IsTemplate(path) {
			content, err = renderer.RenderContent(filepath.Base(path), content)
			if err != nil {
				return err
			}
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}

		if err := os.WriteFile(targetPath, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", targetPath, err)
		}

		output.Debug("rendered file", "path", targetPath)
		return nil
	})
}

// pruneGated removes every manifest path whose guard evaluated false.
func pruneGated(ctx *prompt.Context, targetDir string) error {
	for _, rule := range Rules {
		if rule.Keep(ctx) {
			continue
		}

		path := filepath.Join(targetDir, rule.Path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			// Already gone: a parent directory was pruned first.
			continue
		}

		output.Debug("pruning gated path", "path", rule.Path)
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return nil
}

// selectLicense renames the chosen license file to LICENSE and removes the
// other candidates. Proprietary projects keep no license file.
func selectLicense(ctx *prompt.Context, targetDir string) error {
	chosen := LicenseFile(ctx.License)

	for _, f := range AllLicenseFiles() {
		path := filepath.Join(targetDir, f)

		if f == chosen {
			if err := os.Rename(path, filepath.Join(targetDir, "LICENSE")); err != nil {
				return fmt.Errorf("selecting license %s: %w", f, err)
			}
			continue
		}

		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return nil
}

// applyLayout moves the module directory under src/ for the src layout.
func applyLayout(ctx *prompt.Context, targetDir string) error {
	if ctx.Layout != prompt.LayoutSrc {
		return nil
	}

	moduleDir := filepath.Join(targetDir, ctx.ProjectSlug)
	srcDir := filepath.Join(targetDir, "src")

	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("creating src directory: %w", err)
	}

	if err := os.Rename(moduleDir, filepath.Join(srcDir, ctx.ProjectSlug)); err != nil {
		return fmt.Errorf("moving module to src layout: %w", err)
	}
	return nil
}

// pruneEmptyDirs removes directories left empty by conditional pruning,
// deepest first so emptied parents are removed too.
func pruneEmptyDirs(targetDir string) error {
	var dirs []string
	err := filepath.WalkDir(targetDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != targetDir {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Deepest first
	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(os.PathSeparator)) > strings.Count(dirs[j], string(os.PathSeparator))
	})

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			output.Debug("pruning empty directory", "path", dir)
			if err := os.Remove(dir); err != nil {
				return err
			}
		}
	}
	return nil
}

// listFiles returns the sorted relative paths of all files under targetDir.
func listFiles(targetDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(targetDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(targetDir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
