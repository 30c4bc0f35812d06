// Package scaffold renders the embedded project template into a directory
// tree shaped by the resolved context.
package scaffold

import "embed"

// slugToken is the path segment replaced with the resolved project slug.
const slugToken = "__project_slug__"

// templateRoot is the root directory of the embedded template tree.
const templateRoot = "project"

//go:embed all:project
var templateFS embed.FS
