// File: doc.go
// Title: Triangle Scanner Package Documentation
// Description: Lexical scanner turning triangle source text into the token
//              stream consumed by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial scanner implementation

/*
Package scanner classifies triangle source text into tokens.

Lexical rules:

	whitespace   space advances one column, tab four, newline starts a new row
	comment      '!' up to the end of the line
	identifier   ASCII letter followed by letters and digits; reserved words
	             (let, in, const, ...) get their own kind
	integer      run of decimal digits
	operator     run of + - * / = < > \ & @ % ^ ?
	character    'c'; the lexeme is the bare character
	punctuation  ( ) [ ] { } , ; . ~ : and :=

Rows and columns are 1-based and refer to the first character of a token.
Characters outside these rules are returned as Illegal tokens rather than
dropped, so the parser reports them with their position. The stream always
ends with an EOF token.

Example:

	toks := scanner.Scan("x := 1 + 2")
	root, err := parser.Parse(toks)
*/
package scanner
