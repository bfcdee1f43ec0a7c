// File: format.go
// Title: Export Formats
// Description: Output format selection shared by the engine and the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/msto63/triangle/foundation/triangle/ast"
)

// Format names an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatDOT  Format = "dot"
)

// ErrUnknownFormat is wrapped by errors for unsupported format names
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns all supported formats
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatDOT}
}

// ParseFormat parses a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatDOT:
		return f, nil
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w %q (want text, json, yaml or dot)", ErrUnknownFormat, s)
}

// Write renders the tree in the given format
func Write(w io.Writer, root ast.Node, format Format) error {
	switch format {
	case FormatText, "":
		return WriteText(w, root)
	case FormatJSON:
		return EncodeJSON(w, root)
	case FormatYAML:
		return EncodeYAML(w, root)
	case FormatDOT:
		return WriteDOT(w, FromAST(root))
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
	}
}
