// File: token_test.go
// Title: Token Tests
// Description: Tests for kind names and the token file format.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package token

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		name := k.String()
		got, ok := LookupKind(name)
		if !ok {
			t.Errorf("LookupKind(%q) not found", name)
			continue
		}
		if got != k {
			t.Errorf("LookupKind(%q) = %v, want %v", name, got, k)
		}
	}
}

func TestLookupKindIsExact(t *testing.T) {
	for _, name := range []string{"identifier", "IDENTIFIER", " Identifier", "Ident", ""} {
		if _, ok := LookupKind(name); ok {
			t.Errorf("LookupKind(%q) should fail", name)
		}
	}
}

func TestLookupWord(t *testing.T) {
	tests := []struct {
		word string
		want Kind
	}{
		{"let", Let},
		{"while", While},
		{"record", Record},
		{"Let", Identifier},
		{"x", Identifier},
	}
	for _, tt := range tests {
		if got := LookupWord(tt.word); got != tt.want {
			t.Errorf("LookupWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
	if !Array.IsReserved() || Identifier.IsReserved() || Assign.IsReserved() {
		t.Error("IsReserved() misclassifies kinds")
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Token
		wantErr string
	}{
		{
			name: "identifier",
			line: "{Identifier, 'x', 1, 5}",
			want: Token{Kind: Identifier, Lexeme: "x", Row: 1, Col: 5},
		},
		{
			name: "surrounding whitespace",
			line: "  {Assign,':=',2,7}  ",
			want: Token{Kind: Assign, Lexeme: ":=", Row: 2, Col: 7},
		},
		{
			name: "lexeme containing comma",
			line: "{CharLiteral, ',', 3, 1}",
			want: Token{Kind: CharLiteral, Lexeme: ",", Row: 3, Col: 1},
		},
		{
			name: "quoted char lexeme",
			line: "{CharLiteral, ''a'', 3, 9}",
			want: Token{Kind: CharLiteral, Lexeme: "'a'", Row: 3, Col: 9},
		},
		{
			name: "empty lexeme",
			line: "{EOF, '', 9, 1}",
			want: Token{Kind: EOF, Lexeme: "", Row: 9, Col: 1},
		},
		{
			name:    "unknown kind",
			line:    "{Ident, 'x', 1, 1}",
			wantErr: "unknown token kind",
		},
		{
			name:    "missing braces",
			line:    "Identifier, 'x', 1, 1",
			wantErr: "brace-delimited",
		},
		{
			name:    "unquoted lexeme",
			line:    "{Identifier, x, 1, 1}",
			wantErr: "single-quoted",
		},
		{
			name:    "zero row",
			line:    "{Identifier, 'x', 0, 1}",
			wantErr: "invalid row",
		},
		{
			name:    "non-numeric column",
			line:    "{Identifier, 'x', 1, c}",
			wantErr: "invalid column",
		},
		{
			name:    "too few fields",
			line:    "{Identifier, 'x'}",
			wantErr: "missing row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line, 4)
			if tt.wantErr != "" {
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("ParseLine() error = %v, want *InputError", err)
				}
				if inputErr.Line != 4 {
					t.Errorf("Line = %d, want 4", inputErr.Line)
				}
				if !strings.Contains(inputErr.Reason, tt.wantErr) {
					t.Errorf("Reason = %q, want it to contain %q", inputErr.Reason, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadSkipsBlankLinesAndCountsThem(t *testing.T) {
	input := "{Var, 'var', 1, 1}\n\n{Identifier, 'x', 1, 5}\n{Bogus, 'y', 1, 7}\n"

	_, err := Read(strings.NewReader(input))
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Read() error = %v, want *InputError", err)
	}
	if inputErr.Line != 4 {
		t.Errorf("Line = %d, want 4", inputErr.Line)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	tokens := []Token{
		{Kind: Var, Lexeme: "var", Row: 1, Col: 1},
		{Kind: Identifier, Lexeme: "x", Row: 1, Col: 5},
		{Kind: Colon, Lexeme: ":", Row: 1, Col: 7},
		{Kind: Identifier, Lexeme: "integer", Row: 1, Col: 9},
		{Kind: CharLiteral, Lexeme: "'", Row: 2, Col: 1},
		{Kind: EOF, Lexeme: "", Row: 2, Col: 4},
	}

	var buf bytes.Buffer
	if err := Write(&buf, tokens); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if first := strings.SplitN(buf.String(), "\n", 2)[0]; first != "{Var, 'var', 1, 1}" {
		t.Errorf("first line = %q", first)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, tokens) {
		t.Errorf("Read() = %+v, want %+v", got, tokens)
	}
}

func TestReadEmpty(t *testing.T) {
	got, err := Read(strings.NewReader("\n  \n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Read() = %v, want no tokens", got)
	}
}

func TestTokenString(t *testing.T) {
	if got := (Token{Kind: Semicolon, Lexeme: ";"}).String(); got != "Semicolon(';')" {
		t.Errorf("String() = %q", got)
	}
	if got := (Token{Kind: EOF}).String(); got != "EOF" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Errorf("String() = %q", got)
	}
}
