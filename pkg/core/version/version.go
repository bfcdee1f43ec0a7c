// ============================================================================
// tri - Triangle syntax analyzer
// ============================================================================
//
// Package:     version
// Description: Central version management for the tool and its components
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for the tool and its components
const (
	// Tool version
	Tool = "0.1.0"

	// Component versions
	Scanner = "0.1.0"
	Parser  = "0.1.0"
	Export  = "0.1.0"

	// TreeFormat versions the JSON and YAML document layout
	TreeFormat = "1.0.0"
)

// Build metadata, set via -ldflags "-X"
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "scanner":
		return Scanner
	case "parser":
		return Parser
	case "export":
		return Export
	case "tree-format":
		return TreeFormat
	default:
		return Tool
	}
}

// String returns the one line version banner
func String() string {
	return fmt.Sprintf("tri %s (commit %s, built %s)", Tool, Commit, BuildDate)
}
