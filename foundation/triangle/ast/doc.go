// File: doc.go
// Title: Triangle Abstract Syntax Tree Package Documentation
// Description: Defines the AST node variants produced by the parser and the
//              traversal helpers used by the exporters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree of the triangle language.

The node set is closed: declarations (Let, Const, Var, Func, Proc, Type),
commands (Assign, If, While, Call), expressions (Identifier, Number, Char,
Operator) and the sequencing wrappers Declaration and Command, which only
appear when a region holds two or more elements.

Every node owns its children. There are no back references, so a tree can
be handed to several readers once the parser returns it.

Each node has a one-line Label, the text the exporters print for it:

	var(name("x"),typeName("integer"))
	operator("+")
	call(name("putint"))
*/
package ast
