// File: doc.go
// Title: Triangle Package Documentation
// Description: High level entry point that ties scanner, token files,
//              parser and exporters together.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine implementation

/*
Package triangle provides the Engine, the high level interface of the
triangle syntax analyzer.

The subpackages do one job each:

	token     token kinds, token values and the token file format
	scanner   source text to tokens
	ast       node model, labels and traversal
	parser    tokens to AST, fail-fast
	export    text, JSON, YAML and DOT output, tree file reader

The Engine runs them as stages (scan, read, parse, export, graph), times
every stage, reports it to an optional Observer and converts failures into
coded errors from foundation/core/error:

	INVALID_INPUT    malformed token or tree file
	SYNTAX           the token stream does not match the grammar
	NO_INPUT         the token stream is empty
	INPUT_TOO_LARGE  more tokens than the configured limit
	IO_ERROR         reading or writing failed

errors.As still reaches the original *token.InputError or
*parser.SyntaxError.

Usage:

	engine := triangle.New(triangle.Options{Logger: logger})
	result, err := engine.Run(ctx, in, out, export.FormatText)

An Engine holds no per-run state and is safe for concurrent use.
*/
package triangle
