// File: doc.go
// Title: Triangle Parser Package Documentation
// Description: Recursive descent syntax analyzer turning a token stream into
//              an AST.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

/*
Package parser implements a fail-fast recursive descent parser for the
triangle language.

The parser consumes an already materialized token slice and returns the
root of an AST or the first syntax error it meets. It never recovers and
never returns a partial tree.

Grammar:

	Program      := Commands EOF
	Commands     := Command (';' Command)*
	Command      := 'let' Declarations 'in' Commands
	              | 'const' Ident '~' Expression
	              | 'var' Ident ':' Ident
	              | 'func' Ident '(' FormalParams ')' ':' Ident '~' Expression
	              | 'if' Expression 'then' Commands 'else' Commands
	              | 'begin' Commands 'end'
	              | Ident ':=' Expression
	              | Ident '(' ActualParams ')'
	Declarations := Declaration (';' Declaration)*
	Declaration  := 'const' Ident '~' Expression
	              | 'var' Ident ':' Ident
	              | 'func' Ident '(' FormalParams ')' ':' Ident '~' Expression
	FormalParams := [ ['var'] Ident ':' Ident (',' ['var'] Ident ':' Ident)* ]
	ActualParams := [ Expression (',' Expression)* ]
	Expression   := Primary (Operator Primary)*
	Primary      := IntegerLiteral | CharLiteral
	              | Ident ['(' ActualParams ')']
	              | '(' Expression ')'

A Commands or Declarations region with a single element yields that
element; two or more yield an ast.Command or ast.Declaration wrapper.

All binary operators share one precedence level and associate to the
left, so 1 + 2 * 3 parses as (1 + 2) * 3.

With Options.EnableExtensions the parser also accepts

	'proc' Ident '(' FormalParams ')' '~' Command
	'type' Ident '~' Ident
	'while' Expression 'do' Command

The reserved words array, of and record never parse.
*/
package parser
