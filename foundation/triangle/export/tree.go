// File: tree.go
// Title: Labeled Tree and Tree File Reader
// Description: A generic labeled tree built from an AST or read back from
//              an indented text export.
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

// Tree is a labeled ordered tree
type Tree struct {
	Label    string
	Children []*Tree
}

// FromAST converts an AST into a labeled tree
func FromAST(n ast.Node) *Tree {
	if n == nil {
		return nil
	}
	t := &Tree{Label: n.Label()}
	for _, c := range n.Children() {
		if c != nil {
			t.Children = append(t.Children, FromAST(c))
		}
	}
	return t
}

// Walk visits the tree in pre-order
func (t *Tree) Walk(fn func(t *Tree, depth int)) {
	t.walk(0, fn)
}

func (t *Tree) walk(depth int, fn func(t *Tree, depth int)) {
	if t == nil {
		return
	}
	fn(t, depth)
	for _, c := range t.Children {
		c.walk(depth+1, fn)
	}
}

// TreeError reports a malformed line in a tree file
type TreeError struct {
	Line   int
	Reason string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("tree file line %d: %s", e.Line, e.Reason)
}

// ReadTree parses the indented text export. Blank lines are ignored; each
// level must be indented exactly two spaces deeper than its parent.
func ReadTree(r io.Reader) (*Tree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	var (
		root   *Tree
		stack  []*Tree // stack[d] is the latest node at depth d
		lineNo int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}

		label := strings.TrimLeft(line, " ")
		spaces := len(line) - len(label)
		if spaces%len(Indent) != 0 {
			return nil, &TreeError{Line: lineNo, Reason: fmt.Sprintf("odd indentation of %d spaces", spaces)}
		}
		if strings.HasPrefix(label, "\t") {
			return nil, &TreeError{Line: lineNo, Reason: "tab indentation"}
		}
		depth := spaces / len(Indent)

		node := &Tree{Label: label}
		switch {
		case root == nil:
			if depth != 0 {
				return nil, &TreeError{Line: lineNo, Reason: "first node must not be indented"}
			}
			root = node
		case depth == 0:
			return nil, &TreeError{Line: lineNo, Reason: "second root node"}
		case depth > len(stack):
			return nil, &TreeError{Line: lineNo, Reason: fmt.Sprintf("indentation jumps from depth %d to %d", len(stack)-1, depth)}
		default:
			parent := stack[depth-1]
			parent.Children = append(parent.Children, node)
		}

		stack = append(stack[:depth], node)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tree file: %w", err)
	}
	if root == nil {
		return nil, &TreeError{Line: lineNo, Reason: "empty tree"}
	}

	return root, nil
}
