// File: walk.go
// Title: AST Traversal
// Description: Depth-first pre-order traversal over a finished tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package ast

// WalkFunc is called for every node with its depth below the root. If it
// returns false the children of that node are skipped.
type WalkFunc func(n Node, depth int) bool

// Walk traverses the tree rooted at n in depth-first pre-order
func Walk(n Node, fn WalkFunc) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn WalkFunc) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}

// Count returns the number of nodes in the tree
func Count(n Node) int {
	count := 0
	Walk(n, func(Node, int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the depth of the deepest node, with the root at 0, or -1
// for an empty tree
func Depth(n Node) int {
	max := -1
	Walk(n, func(_ Node, depth int) bool {
		if depth > max {
			max = depth
		}
		return true
	})
	return max
}

// ValidateTree validates every node of the tree and returns the first
// failure in pre-order
func ValidateTree(n Node) error {
	if n == nil {
		return invalid("empty tree")
	}
	var err error
	Walk(n, func(node Node, _ int) bool {
		if err != nil {
			return false
		}
		err = node.Validate()
		return err == nil
	})
	return err
}
