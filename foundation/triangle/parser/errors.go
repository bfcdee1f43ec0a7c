// File: errors.go
// Title: Parser Errors
// Description: Structured syntax errors and the sentinel errors reported
//              before grammar matching starts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/msto63/triangle/foundation/triangle/token"
)

var (
	// ErrNoInput is returned for a token stream without any token
	// besides EOF
	ErrNoInput = errors.New("no tokens found")

	// ErrTooManyTokens is returned when the stream exceeds Options.MaxTokens
	ErrTooManyTokens = errors.New("token stream exceeds limit")
)

// SyntaxError reports the first token that does not fit the grammar
type SyntaxError struct {
	Expected []token.Kind // kinds acceptable at this point, may be empty
	Found    token.Token
	Message  string // set when the kind fits but the lexeme does not
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "syntax error at %d:%d: ", e.Found.Row, e.Found.Col)

	if e.Message != "" {
		sb.WriteString(e.Message)
	} else {
		sb.WriteString("expected ")
		sb.WriteString(joinKinds(e.Expected))
	}

	if e.Found.Kind == token.EOF {
		sb.WriteString(", found EOF")
	} else {
		fmt.Fprintf(&sb, ", found %s ('%s')", e.Found.Kind, e.Found.Lexeme)
	}

	return sb.String()
}

// Row returns the row of the offending token
func (e *SyntaxError) Row() int { return e.Found.Row }

// Col returns the column of the offending token
func (e *SyntaxError) Col() int { return e.Found.Col }

// Expects reports whether kind is among the expected kinds
func (e *SyntaxError) Expects(kind token.Kind) bool {
	for _, k := range e.Expected {
		if k == kind {
			return true
		}
	}
	return false
}

// joinKinds renders A, "A or B", "A, B or C"
func joinKinds(kinds []token.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}
