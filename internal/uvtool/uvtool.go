// Package uvtool probes the uv binary and its managed Python installations.
package uvtool

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// uvVersionRegex matches uv version output like "uv 0.5.21 (abc123 2025-01-10)".
var uvVersionRegex = regexp.MustCompile(`\d+\.\d+\.\d+`)

// BinaryInfo contains uv binary information.
type BinaryInfo struct {
	// Version is the uv binary version.
	Version string `json:"version"`

	// Path is the path to the uv binary.
	Path string `json:"path"`

	// Found indicates if the uv binary was found on PATH.
	Found bool `json:"found"`

	// Message provides additional information when detection fails.
	Message string `json:"message,omitempty"`
}

// String returns a human-readable uv binary info string.
func (b BinaryInfo) String() string {
	if !b.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}

	return fmt.Sprintf("  Binary Version: %s\n  Binary Path:    %s", b.Version, b.Path)
}

// DetectBinary finds and checks the uv binary installation.
func DetectBinary() BinaryInfo {
	path, err := exec.LookPath("uv")
	if err != nil {
		return BinaryInfo{
			Found:   false,
			Message: "uv binary not found in PATH",
		}
	}

	version, err := getUVVersion(path)
	if err != nil {
		return BinaryInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get uv version: " + err.Error(),
		}
	}

	return BinaryInfo{
		Version: version,
		Path:    path,
		Found:   true,
	}
}

// getUVVersion executes 'uv --version' and extracts the version string.
func getUVVersion(uvPath string) (string, error) {
	cmd := exec.Command(uvPath, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	match := uvVersionRegex.FindString(out.String())
	if match == "" {
		return "", fmt.Errorf("unexpected uv version output: %q", strings.TrimSpace(out.String()))
	}

	return match, nil
}

// ListPythonVersions runs 'uv python list' and returns the raw output lines.
// Returns an error if uv is missing or the command fails.
func ListPythonVersions() ([]string, error) {
	cmd := exec.Command("uv", "python", "list")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running 'uv python list': %w", err)
	}

	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), nil
}

// InstalledVersions extracts installed interpreter version strings from
// 'uv python list' output lines. Entries that are merely available for
// download are excluded.
func InstalledVersions(lines []string) []string {
	var versions []string
	seen := make(map[string]bool)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasSuffix(line, "<download available>") {
			continue
		}

		// Lines look like: cpython-3.12.7-linux-x86_64-gnu  /home/u/.local/...
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		v := parseInterpreterVersion(fields[0])
		if v != "" && !seen[v] {
			versions = append(versions, v)
			seen[v] = true
		}
	}

	return versions
}

// interpreterVersionRegex extracts MAJOR.MINOR.PATCH from an interpreter key
// like "cpython-3.12.7-linux-x86_64-gnu".
var interpreterVersionRegex = regexp.MustCompile(`-(\d+\.\d+\.\d+)`)

func parseInterpreterVersion(key string) string {
	match := interpreterVersionRegex.FindStringSubmatch(key)
	if match == nil {
		return ""
	}
	return match[1]
}

// HasVersion reports whether the requested MAJOR.MINOR version is among
// the installed versions.
func HasVersion(installed []string, requested string) bool {
	for _, v := range installed {
		if v == requested || strings.HasPrefix(v, requested+".") {
			return true
		}
	}
	return false
}
