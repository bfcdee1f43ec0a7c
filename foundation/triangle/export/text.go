// File: text.go
// Title: Indented Text Export
// Description: Writes the depth-indented tree representation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/msto63/triangle/foundation/triangle/ast"
)

// Indent is the indentation added per depth level
const Indent = "  "

// WriteText writes one label per line in pre-order, indented by depth
func WriteText(w io.Writer, root ast.Node) error {
	bw := bufio.NewWriter(w)
	var err error
	ast.Walk(root, func(n ast.Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = bw.WriteString(strings.Repeat(Indent, depth) + n.Label() + "\n")
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Text returns the indented text rendering of the tree
func Text(root ast.Node) string {
	var sb strings.Builder
	WriteText(&sb, root)
	return sb.String()
}
