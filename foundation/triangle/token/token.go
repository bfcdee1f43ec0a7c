// File: token.go
// Title: Token Kinds and Values
// Description: Defines the closed set of token kinds, their textual names
//              and the immutable Token value consumed by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package token

import "fmt"

// Kind classifies a token
type Kind int

const (
	// Special tokens
	EOF Kind = iota
	Illegal

	// Identifiers and literals
	Identifier
	IntegerLiteral
	CharLiteral
	Operator

	// Reserved words
	Array
	Begin
	Const
	Do
	Else
	End
	Func
	If
	In
	Let
	Of
	Proc
	Record
	Then
	Type
	Var
	While

	// Punctuation
	Dot          // .
	Colon        // :
	Semicolon    // ;
	Comma        // ,
	Equal        // =
	Tilde        // ~
	LeftParen    // (
	RightParen   // )
	LeftBracket  // [
	RightBracket // ]
	LeftBrace    // {
	RightBrace   // }
	Assign       // :=

	kindCount
)

var kindNames = [...]string{
	EOF:            "EOF",
	Illegal:        "Illegal",
	Identifier:     "Identifier",
	IntegerLiteral: "IntegerLiteral",
	CharLiteral:    "CharLiteral",
	Operator:       "Operator",
	Array:          "Array",
	Begin:          "Begin",
	Const:          "Const",
	Do:             "Do",
	Else:           "Else",
	End:            "End",
	Func:           "Func",
	If:             "If",
	In:             "In",
	Let:            "Let",
	Of:             "Of",
	Proc:           "Proc",
	Record:         "Record",
	Then:           "Then",
	Type:           "Type",
	Var:            "Var",
	While:          "While",
	Dot:            "Dot",
	Colon:          "Colon",
	Semicolon:      "Semicolon",
	Comma:          "Comma",
	Equal:          "Equal",
	Tilde:          "Tilde",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftBracket:    "LeftBracket",
	RightBracket:   "RightBracket",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
	Assign:         "Assign",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// reserved maps source spellings of reserved words to their kinds
var reserved = map[string]Kind{
	"array":  Array,
	"begin":  Begin,
	"const":  Const,
	"do":     Do,
	"else":   Else,
	"end":    End,
	"func":   Func,
	"if":     If,
	"in":     In,
	"let":    Let,
	"of":     Of,
	"proc":   Proc,
	"record": Record,
	"then":   Then,
	"type":   Type,
	"var":    Var,
	"while":  While,
}

// String returns the textual name of the kind as used in token files
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsReserved reports whether the kind is a reserved word
func (k Kind) IsReserved() bool {
	return k >= Array && k <= While
}

// LookupKind maps a kind name to its Kind by exact match
func LookupKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// LookupWord returns the reserved word kind for an identifier spelling,
// or Identifier if the word is not reserved
func LookupWord(word string) Kind {
	if k, ok := reserved[word]; ok {
		return k
	}
	return Identifier
}

// Kinds returns every token kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := EOF; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Token is a classified, positioned lexical unit
type Token struct {
	Kind   Kind
	Lexeme string
	Row    int // 1-based
	Col    int // 1-based
}

// String returns a short representation for diagnostics
func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s('%s')", t.Kind, t.Lexeme)
}

// Pos returns the row:col position of the token
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Row, t.Col)
}
