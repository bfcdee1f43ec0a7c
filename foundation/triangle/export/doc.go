// File: doc.go
// Title: Export Package Documentation
// Description: Renders finished ASTs as indented text, JSON, YAML and DOT,
//              and reads indented text back into a labeled tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package export renders a finished AST.

Text writes one node label per line in depth-first pre-order, indented two
spaces per level:

	let
	  var(name("x"),typeName("integer"))
	  assign(name("x"))
	    number(1)

JSON and YAML write a lossless document that DecodeJSON and DecodeYAML turn
back into an identical AST.

DOT writes a directed graph with one vertex per node, numbered in pre-order,
and one edge per parent and child pair. Double quotes inside labels become
single quotes. ReadTree parses a text export back into a Tree so a graph can
be drawn from a tree file without the original tokens.
*/
package export
