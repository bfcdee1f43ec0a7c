// File: parser.go
// Title: Triangle Recursive Descent Parser
// Description: Implements the grammar as mutually recursive procedures over
//              a token cursor. Every procedure returns a finished node or
//              the first error, which is passed straight up.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	mdwlog "github.com/msto63/triangle/foundation/core/log"
	"github.com/msto63/triangle/foundation/triangle/ast"
	"github.com/msto63/triangle/foundation/triangle/token"
)

// Parser implements recursive descent parsing for triangle programs.
// A Parser is not safe for concurrent use; run one Parser per goroutine.
type Parser struct {
	tokens  []token.Token
	pos     int         // index of current
	current token.Token // token under examination
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger           *mdwlog.Logger
	MaxTokens        int  // 0 means unlimited
	EnableExtensions bool // accept proc, type and while
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "parser"),
		options: opts,
	}
}

// Parse parses a token stream with default options
func Parse(tokens []token.Token) (ast.Node, error) {
	return New(Options{}).Parse(tokens)
}

// Parse parses a complete program. The stream may omit the trailing EOF
// token.
func (p *Parser) Parse(tokens []token.Token) (ast.Node, error) {
	if p.options.MaxTokens > 0 && len(tokens) > p.options.MaxTokens {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTokens, len(tokens), p.options.MaxTokens)
	}

	if len(tokens) == 0 || tokens[0].Kind == token.EOF {
		p.logger.Debug("Empty token stream")
		return nil, ErrNoInput
	}

	p.tokens = tokens
	p.pos = 0
	p.current = p.at(0)
	defer func() { p.tokens = nil }()

	p.logger.Debug("Starting parse", mdwlog.Fields{
		"tokens":     len(tokens),
		"extensions": p.options.EnableExtensions,
	})

	root, err := p.parseProgram()
	if err != nil {
		p.logger.Warn("Parse failed", mdwlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Parse completed successfully", mdwlog.Fields{
		"root":  root.Label(),
		"nodes": ast.Count(root),
	})

	return root, nil
}

// at returns the token at index i, or an EOF token positioned at the last
// token when i is past the end
func (p *Parser) at(i int) token.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	last := p.tokens[len(p.tokens)-1]
	return token.Token{Kind: token.EOF, Row: last.Row, Col: last.Col}
}

// advance moves to the next token. At EOF it stays put.
func (p *Parser) advance() {
	if p.current.Kind == token.EOF {
		return
	}
	p.pos++
	p.current = p.at(p.pos)

	if p.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		p.logger.Trace("Advance", mdwlog.Fields{
			"kind":   p.current.Kind.String(),
			"lexeme": p.current.Lexeme,
			"pos":    p.current.Pos(),
		})
	}
}

// expect consumes the current token if it has the given kind
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.current.Kind != kind {
		return token.Token{}, p.unexpected(kind)
	}
	tok := p.current
	p.advance()
	return tok, nil
}

// expectIdent consumes an identifier and returns its name
func (p *Parser) expectIdent() (string, error) {
	tok, err := p.expect(token.Identifier)
	if err != nil {
		return "", err
	}
	return tok.Lexeme, nil
}

// unexpected builds a syntax error for the current token
func (p *Parser) unexpected(expected ...token.Kind) *SyntaxError {
	return &SyntaxError{Expected: expected, Found: p.current}
}

func (p *Parser) position() ast.Position {
	return ast.Position{Row: p.current.Row, Col: p.current.Col}
}

// parseProgram parses Commands followed by the end of the stream
func (p *Parser) parseProgram() (ast.Node, error) {
	root, err := p.parseCommands()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != token.EOF {
		return nil, p.unexpected(token.EOF)
	}
	// an EOF token inside the stream does not end it
	if p.pos < len(p.tokens)-1 {
		return nil, &SyntaxError{Expected: []token.Kind{token.EOF}, Found: p.tokens[p.pos+1]}
	}
	return root, nil
}

// parseCommands parses Command (';' Command)*
func (p *Parser) parseCommands() (ast.Node, error) {
	first, err := p.parseCommand()
	if err != nil {
		return nil, err
	}

	list := []ast.Node{first}
	for p.current.Kind == token.Semicolon {
		p.advance()
		next, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		list = append(list, next)
	}

	if len(list) == 1 {
		return first, nil
	}
	return &ast.Command{List: list, Pos: first.Position()}, nil
}

// commandStarters lists the kinds that can begin a command
func (p *Parser) commandStarters() []token.Kind {
	kinds := []token.Kind{token.Let, token.Const, token.Var, token.Func, token.If, token.Begin, token.Identifier}
	if p.options.EnableExtensions {
		kinds = append(kinds, token.Proc, token.Type, token.While)
	}
	return kinds
}

// declarationStarters lists the kinds that can begin a declaration
func (p *Parser) declarationStarters() []token.Kind {
	kinds := []token.Kind{token.Const, token.Var, token.Func}
	if p.options.EnableExtensions {
		kinds = append(kinds, token.Proc, token.Type)
	}
	return kinds
}

// parseCommand parses a single command
func (p *Parser) parseCommand() (ast.Node, error) {
	switch p.current.Kind {
	case token.Let:
		return p.parseLet()
	case token.Const, token.Var, token.Func:
		return p.parseDeclaration()
	case token.Proc, token.Type:
		if p.options.EnableExtensions {
			return p.parseDeclaration()
		}
	case token.If:
		return p.parseIf()
	case token.While:
		if p.options.EnableExtensions {
			return p.parseWhile()
		}
	case token.Begin:
		return p.parseBlock()
	case token.Identifier:
		return p.parseAssignOrCall()
	}
	return nil, p.unexpected(p.commandStarters()...)
}

// parseLet parses 'let' Declarations 'in' Commands
func (p *Parser) parseLet() (ast.Node, error) {
	pos := p.position()
	p.advance() // consume 'let'

	decls, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.In); err != nil {
		return nil, err
	}
	body, err := p.parseCommands()
	if err != nil {
		return nil, err
	}

	return &ast.Let{Decls: decls, Body: body, Pos: pos}, nil
}

// parseIf parses 'if' Expression 'then' Commands 'else' Commands
func (p *Parser) parseIf() (ast.Node, error) {
	pos := p.position()
	p.advance() // consume 'if'

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Then); err != nil {
		return nil, err
	}
	thenBranch, err := p.parseCommands()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Else); err != nil {
		return nil, err
	}
	elseBranch, err := p.parseCommands()
	if err != nil {
		return nil, err
	}

	return &ast.If{Cond: cond, Then: thenBranch, Else: elseBranch, Pos: pos}, nil
}

// parseWhile parses 'while' Expression 'do' Command
func (p *Parser) parseWhile() (ast.Node, error) {
	pos := p.position()
	p.advance() // consume 'while'

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Do); err != nil {
		return nil, err
	}
	body, err := p.parseCommand()
	if err != nil {
		return nil, err
	}

	return &ast.While{Cond: cond, Body: body, Pos: pos}, nil
}

// parseBlock parses 'begin' Commands 'end'. The block itself leaves no
// node behind.
func (p *Parser) parseBlock() (ast.Node, error) {
	p.advance() // consume 'begin'

	body, err := p.parseCommands()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.End); err != nil {
		return nil, err
	}
	return body, nil
}

// parseAssignOrCall parses Ident ':=' Expression or Ident '(' ActualParams ')'
func (p *Parser) parseAssignOrCall() (ast.Node, error) {
	pos := p.position()
	name := p.current.Lexeme
	p.advance() // consume identifier

	switch p.current.Kind {
	case token.Assign:
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Targets: []string{name}, Value: value, Pos: pos}, nil

	case token.LeftParen:
		return p.parseCallArgs(name, pos)

	default:
		return nil, p.unexpected(token.Assign, token.LeftParen)
	}
}

// parseCallArgs parses '(' ActualParams ')' after the callee name
func (p *Parser) parseCallArgs(name string, pos ast.Position) (ast.Node, error) {
	p.advance() // consume '('

	args, err := p.parseActualParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	return &ast.Call{Name: name, Args: args, Pos: pos}, nil
}

// parseDeclarations parses Declaration (';' Declaration)*
func (p *Parser) parseDeclarations() (ast.Node, error) {
	first, err := p.parseDeclaration()
	if err != nil {
		return nil, err
	}

	list := []ast.Node{first}
	for p.current.Kind == token.Semicolon {
		p.advance()
		next, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		list = append(list, next)
	}

	if len(list) == 1 {
		return first, nil
	}
	return &ast.Declaration{List: list, Pos: first.Position()}, nil
}

// parseDeclaration parses a single declaration
func (p *Parser) parseDeclaration() (ast.Node, error) {
	switch p.current.Kind {
	case token.Const:
		return p.parseConst()
	case token.Var:
		return p.parseVar()
	case token.Func:
		return p.parseFunc()
	case token.Proc:
		if p.options.EnableExtensions {
			return p.parseProc()
		}
	case token.Type:
		if p.options.EnableExtensions {
			return p.parseType()
		}
	}
	return nil, p.unexpected(p.declarationStarters()...)
}

// parseConst parses 'const' Ident '~' Expression
func (p *Parser) parseConst() (ast.Node, error) {
	pos := p.position()
	p.advance() // consume 'const'

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Tilde); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Const{Name: name, Value: value, Pos: pos}, nil
}

// parseVar parses 'var' Ident ':' Ident
func (p *Parser) parseVar() (ast.Node, error) {
	pos := p.position()
	p.advance() // consume 'var'

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	typeName, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	return &ast.Var{Name: name, TypeName: typeName, Pos: pos}, nil
}

// parseFunc parses 'func' Ident '(' FormalParams ')' ':' Ident '~' Expression
func (p *Parser) parseFunc() (ast.Node, error) {
	pos := p.position()
	p.advance() // consume 'func'

	name, params, err := p.parseSignature()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	returnType, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Tilde); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Func{Name: name, Params: params, ReturnType: returnType, Body: body, Pos: pos}, nil
}

// parseProc parses 'proc' Ident '(' FormalParams ')' '~' Command
func (p *Parser) parseProc() (ast.Node, error) {
	pos := p.position()
	p.advance() // consume 'proc'

	name, params, err := p.parseSignature()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Tilde); err != nil {
		return nil, err
	}
	body, err := p.parseCommand()
	if err != nil {
		return nil, err
	}

	return &ast.Proc{Name: name, Params: params, Body: body, Pos: pos}, nil
}

// parseType parses 'type' Ident '~' Ident
func (p *Parser) parseType() (ast.Node, error) {
	pos := p.position()
	p.advance() // consume 'type'

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Tilde); err != nil {
		return nil, err
	}
	def, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	return &ast.Type{Name: name, Def: def, Pos: pos}, nil
}

// parseSignature parses Ident '(' FormalParams ')'
func (p *Parser) parseSignature() (string, []ast.Param, error) {
	name, err := p.expectIdent()
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(token.LeftParen); err != nil {
		return "", nil, err
	}
	params, err := p.parseFormalParams()
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return "", nil, err
	}
	return name, params, nil
}

// parseFormalParams parses [ ['var'] Ident ':' Ident (',' ...)* ]
func (p *Parser) parseFormalParams() ([]ast.Param, error) {
	if p.current.Kind == token.RightParen {
		return nil, nil
	}

	var params []ast.Param
	for {
		param, err := p.parseFormalParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if p.current.Kind != token.Comma {
			return params, nil
		}
		p.advance()
	}
}

// parseFormalParam parses ['var'] Ident ':' Ident
func (p *Parser) parseFormalParam() (ast.Param, error) {
	var param ast.Param
	if p.current.Kind == token.Var {
		param.ByRef = true
		p.advance()
	}

	name, err := p.expectIdent()
	if err != nil {
		return ast.Param{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return ast.Param{}, err
	}
	typeName, err := p.expectIdent()
	if err != nil {
		return ast.Param{}, err
	}

	param.Name = name
	param.TypeName = typeName
	return param, nil
}

// parseActualParams parses [ Expression (',' Expression)* ]
func (p *Parser) parseActualParams() ([]ast.Node, error) {
	if p.current.Kind == token.RightParen {
		return nil, nil
	}

	var args []ast.Node
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.current.Kind != token.Comma {
			return args, nil
		}
		p.advance()
	}
}

// parseExpression parses Primary (Operator Primary)*. Every operator
// binds at the same level, left to right.
func (p *Parser) parseExpression() (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.current.Kind == token.Operator {
		symbol := p.current.Lexeme
		p.advance()

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &ast.Operator{Symbol: symbol, Left: left, Right: right, Pos: left.Position()}
	}

	return left, nil
}

// parsePrimary parses a literal, a name, a call or a parenthesized
// expression
func (p *Parser) parsePrimary() (ast.Node, error) {
	pos := p.position()

	switch p.current.Kind {
	case token.IntegerLiteral:
		if !isDigits(p.current.Lexeme) {
			return nil, &SyntaxError{Found: p.current, Message: "invalid integer literal"}
		}
		value, err := strconv.ParseInt(p.current.Lexeme, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Found: p.current, Message: "invalid integer literal"}
		}
		p.advance()
		return &ast.Number{Value: value, Pos: pos}, nil

	case token.CharLiteral:
		value, ok := decodeChar(p.current.Lexeme)
		if !ok {
			return nil, &SyntaxError{Found: p.current, Message: "invalid character literal"}
		}
		p.advance()
		return &ast.Char{Value: value, Pos: pos}, nil

	case token.Identifier:
		name := p.current.Lexeme
		p.advance()
		if p.current.Kind == token.LeftParen {
			return p.parseCallArgs(name, pos)
		}
		return &ast.Identifier{Name: name, Pos: pos}, nil

	case token.LeftParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		return nil, p.unexpected(token.IntegerLiteral, token.CharLiteral, token.Identifier, token.LeftParen)
	}
}

// decodeChar accepts a bare character (a) or a quoted one ('a')
func decodeChar(lexeme string) (rune, bool) {
	if len(lexeme) >= 3 && lexeme[0] == '\'' && lexeme[len(lexeme)-1] == '\'' {
		lexeme = lexeme[1 : len(lexeme)-1]
	}
	r, size := utf8.DecodeRuneInString(lexeme)
	if (r == utf8.RuneError && size <= 1) || size != len(lexeme) {
		return 0, false
	}
	return r, true
}

// isDigits reports whether s is a non-empty run of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
