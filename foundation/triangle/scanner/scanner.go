// File: scanner.go
// Title: Triangle Lexical Scanner
// Description: Single pass scanner over the runes of a source text. Tracks
//              row and column the way the reference tool does: tabs count
//              as four columns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial scanner implementation

package scanner

import (
	mdwlog "github.com/msto63/triangle/foundation/core/log"
	"github.com/msto63/triangle/foundation/triangle/token"
)

// DefaultTabWidth is the number of columns a tab advances
const DefaultTabWidth = 4

var punctuation = map[rune]token.Kind{
	'.': token.Dot,
	';': token.Semicolon,
	',': token.Comma,
	'~': token.Tilde,
	'(': token.LeftParen,
	')': token.RightParen,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'{': token.LeftBrace,
	'}': token.RightBrace,
}

// Scanner turns source text into tokens. A Scanner is not safe for
// concurrent use.
type Scanner struct {
	src     []rune
	pos     int
	row     int
	col     int
	tokens  []token.Token
	logger  *mdwlog.Logger
	options Options
}

// Options configures scanner behavior
type Options struct {
	Logger   *mdwlog.Logger
	TabWidth int // 0 means DefaultTabWidth
}

// New creates a new scanner with the given options
func New(opts Options) *Scanner {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}

	return &Scanner{
		logger:  opts.Logger.WithField("component", "scanner"),
		options: opts,
	}
}

// Scan scans a source text with default options
func Scan(src string) []token.Token {
	return New(Options{}).Scan(src)
}

// Scan classifies the whole source text. The result always ends with an
// EOF token positioned after the last character.
func (s *Scanner) Scan(src string) []token.Token {
	s.src = []rune(src)
	s.pos = 0
	s.row, s.col = 1, 1
	s.tokens = make([]token.Token, 0, len(s.src)/4+1)
	defer func() { s.src = nil }()

	s.logger.Debug("Starting scan", mdwlog.Fields{
		"runes": len(s.src),
	})

	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == ' ':
			s.pos++
			s.col++
		case c == '\t':
			s.pos++
			s.col += s.options.TabWidth
		case c == '\n':
			s.pos++
			s.row++
			s.col = 1
		case c == '\r':
			s.pos++
		case c == '!':
			s.skipComment()
		case isLetter(c):
			word := s.run(isAlnum)
			s.emit(token.LookupWord(word), word, len(word))
		case isDigit(c):
			digits := s.run(isDigit)
			s.emit(token.IntegerLiteral, digits, len(digits))
		case isOpChar(c):
			op := s.run(isOpChar)
			s.emit(token.Operator, op, len(op))
		case c == '\'':
			s.scanChar()
		case c == ':':
			if s.peek(1) == '=' {
				s.emit(token.Assign, ":=", 2)
			} else {
				s.emit(token.Colon, ":", 1)
			}
		default:
			kind, ok := punctuation[c]
			if !ok {
				kind = token.Illegal
			}
			s.emit(kind, string(c), 1)
		}
	}

	s.tokens = append(s.tokens, token.Token{Kind: token.EOF, Row: s.row, Col: s.col})
	tokens := s.tokens
	s.tokens = nil

	if illegal := countIllegal(tokens); illegal > 0 {
		s.logger.Warn("Source contains illegal characters", mdwlog.Fields{
			"illegal": illegal,
		})
	}
	s.logger.Debug("Scan completed", mdwlog.Fields{
		"tokens": len(tokens),
		"rows":   s.row,
	})

	return tokens
}

// emit appends a token at the current position and consumes width runes
func (s *Scanner) emit(kind token.Kind, lexeme string, width int) {
	s.tokens = append(s.tokens, token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Row:    s.row,
		Col:    s.col,
	})
	s.pos += width
	s.col += width
}

// run returns the longest run of runes from the current position that
// satisfy pred, without consuming them
func (s *Scanner) run(pred func(rune) bool) string {
	end := s.pos
	for end < len(s.src) && pred(s.src[end]) {
		end++
	}
	return string(s.src[s.pos:end])
}

func (s *Scanner) peek(offset int) rune {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

// skipComment consumes up to, not including, the next newline
func (s *Scanner) skipComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

// scanChar reads 'c'. A quote that does not open a well formed literal is
// an Illegal token of its own.
func (s *Scanner) scanChar() {
	c := s.peek(1)
	if c != 0 && c != '\n' && s.peek(2) == '\'' {
		s.emit(token.CharLiteral, string(c), 3)
		return
	}
	s.emit(token.Illegal, "'", 1)
}

func countIllegal(tokens []token.Token) int {
	n := 0
	for _, t := range tokens {
		if t.Kind == token.Illegal {
			n++
		}
	}
	return n
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c rune) bool {
	return isLetter(c) || isDigit(c)
}

func isOpChar(c rune) bool {
	switch c {
	case '+', '-', '*', '/', '=', '<', '>', '\\', '&', '@', '%', '^', '?':
		return true
	}
	return false
}
