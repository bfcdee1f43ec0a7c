// File: file.go
// Title: Token File Format
// Description: Reads and writes the line-oriented token file format
//              {Kind, 'lexeme', row, col}. A malformed line aborts reading
//              with an *InputError naming the line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package token

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineLength bounds a single token line
const maxLineLength = 1 << 20

// InputError reports a malformed token file line
type InputError struct {
	Line   int    // 1-based line number in the token file
	Text   string // offending line
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("token file line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Format renders a token as one token file line without the newline
func Format(t Token) string {
	return fmt.Sprintf("{%s, '%s', %d, %d}", t.Kind, t.Lexeme, t.Row, t.Col)
}

// ParseLine parses a single token line. The line number is only used for
// error reporting.
func ParseLine(line string, lineNo int) (Token, error) {
	fail := func(reason string) (Token, error) {
		return Token{}, &InputError{Line: lineNo, Text: line, Reason: reason}
	}

	text := strings.TrimSpace(line)
	if len(text) < 2 || text[0] != '{' || text[len(text)-1] != '}' {
		return fail("expected a brace-delimited token")
	}
	inner := text[1 : len(text)-1]

	// kind is everything before the first comma
	first := strings.IndexByte(inner, ',')
	if first < 0 {
		return fail("missing fields")
	}
	kindName := strings.TrimSpace(inner[:first])
	rest := inner[first+1:]

	// row and col are the last two fields, so the lexeme may contain commas
	last := strings.LastIndexByte(rest, ',')
	if last < 0 {
		return fail("missing row and column")
	}
	colText := strings.TrimSpace(rest[last+1:])
	rest = rest[:last]

	second := strings.LastIndexByte(rest, ',')
	if second < 0 {
		return fail("missing row")
	}
	rowText := strings.TrimSpace(rest[second+1:])
	quoted := strings.TrimSpace(rest[:second])

	if len(quoted) < 2 || quoted[0] != '\'' || quoted[len(quoted)-1] != '\'' {
		return fail("lexeme must be single-quoted")
	}

	kind, ok := LookupKind(kindName)
	if !ok {
		return fail(fmt.Sprintf("unknown token kind %q", kindName))
	}

	row, err := strconv.Atoi(rowText)
	if err != nil || row < 1 {
		return fail(fmt.Sprintf("invalid row %q", rowText))
	}

	col, err := strconv.Atoi(colText)
	if err != nil || col < 1 {
		return fail(fmt.Sprintf("invalid column %q", colText))
	}

	return Token{
		Kind:   kind,
		Lexeme: quoted[1 : len(quoted)-1],
		Row:    row,
		Col:    col,
	}, nil
}

// Read parses a whole token file. Blank lines are skipped. The first
// malformed line stops reading.
func Read(r io.Reader) ([]Token, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	var tokens []Token
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		tok, err := ParseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	return tokens, nil
}

// Write writes tokens in token file format, one per line
func Write(w io.Writer, tokens []Token) error {
	bw := bufio.NewWriter(w)
	for _, t := range tokens {
		if _, err := bw.WriteString(Format(t) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
