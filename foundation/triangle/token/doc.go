// File: doc.go
// Title: Token Package Documentation
// Description: Token kinds, token values and the line-oriented token file
//              format exchanged between the scanner and the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package token defines the lexical vocabulary of the triangle language.

A token is a classified, positioned piece of source text. Tokens travel
between the scanner and the parser in a line-oriented file, one token per
line:

	{Identifier, 'x', 1, 5}
	{Assign, ':=', 1, 7}
	{IntegerLiteral, '42', 1, 10}

The kind name must match one of the Kind names exactly. Rows and columns
are 1-based. Read reports the first malformed line as an *InputError.
*/
package token
