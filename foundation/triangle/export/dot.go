// File: dot.go
// Title: DOT Graph Export
// Description: Renders a labeled tree as a Graphviz digraph.
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
	"fmt"
	"io"
	"strings"

	"github.com/msto63/triangle/foundation/triangle/ast"
)

// SanitizeLabel replaces double quotes so labels fit a quoted DOT string
func SanitizeLabel(label string) string {
	return strings.ReplaceAll(label, `"`, "'")
}

// WriteDOT writes vertices numbered in pre-order from 0, then one edge per
// parent and child pair
func WriteDOT(w io.Writer, t *Tree) error {
	type edge struct{ from, to int }

	var (
		labels []string
		edges  []edge
		ids    = map[*Tree]int{}
	)
	t.Walk(func(n *Tree, _ int) {
		ids[n] = len(labels)
		labels = append(labels, n.Label)
	})
	t.Walk(func(n *Tree, _ int) {
		for _, c := range n.Children {
			edges = append(edges, edge{ids[n], ids[c]})
		}
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	for id, label := range labels {
		fmt.Fprintf(bw, "    %d [label=\"%s\"];\n", id, SanitizeLabel(label))
	}
	for _, e := range edges {
		fmt.Fprintf(bw, "    %d -> %d;\n", e.from, e.to)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// DOT returns the DOT rendering of an AST
func DOT(root ast.Node) string {
	var sb strings.Builder
	WriteDOT(&sb, FromAST(root))
	return sb.String()
}
