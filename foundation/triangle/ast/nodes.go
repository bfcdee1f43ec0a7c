// File: nodes.go
// Title: Triangle AST Node Definitions
// Description: Defines all AST node variants with their labels, children
//              and structural validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST node definitions

package ast

import (
	"errors"
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// Label returns the one-line rendering used by the exporters
	Label() string

	// Children returns the owned child nodes in source order
	Children() []Node

	// Position returns the position of the node's first token
	Position() Position

	// Validate checks the structural invariants of this node only
	Validate() error

	// Accept dispatches to the visitor method for this variant
	Accept(visitor Visitor) interface{}

	node() // marker method
}

// Position represents a position in the source code
type Position struct {
	Row int `json:"row" yaml:"row"` // 1-based
	Col int `json:"col" yaml:"col"` // 1-based
}

// String returns row:col
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// ErrInvalidNode is wrapped by all Validate failures
var ErrInvalidNode = errors.New("invalid node")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidNode, fmt.Sprintf(format, args...))
}

// Let represents `let Declarations in Commands`
type Let struct {
	Decls Node
	Body  Node
	Pos   Position
}

// Const represents `const Ident ~ Expression`
type Const struct {
	Name  string
	Value Node
	Pos   Position
}

// Var represents `var Ident : Ident`
type Var struct {
	Name     string
	TypeName string
	Pos      Position
}

// Param is a formal parameter of a func or proc
type Param struct {
	Name     string
	TypeName string
	ByRef    bool // declared with var
}

// Func represents `func Ident ( FormalParams ) : Ident ~ Expression`
type Func struct {
	Name       string
	Params     []Param
	ReturnType string
	Body       Node
	Pos        Position
}

// Proc represents `proc Ident ( FormalParams ) ~ Command`
type Proc struct {
	Name   string
	Params []Param
	Body   Node
	Pos    Position
}

// Type represents `type Ident ~ Ident`
type Type struct {
	Name string
	Def  string
	Pos  Position
}

// Assign represents `Ident := Expression`
type Assign struct {
	Targets []string
	Value   Node
	Pos     Position
}

// If represents `if Expression then Commands else Commands`
type If struct {
	Cond Node
	Then Node
	Else Node
	Pos  Position
}

// While represents `while Expression do Command`
type While struct {
	Cond Node
	Body Node
	Pos  Position
}

// Call represents `Ident ( ActualParams )` as command or expression
type Call struct {
	Name string
	Args []Node
	Pos  Position
}

// Identifier is a name used as an expression
type Identifier struct {
	Name string
	Pos  Position
}

// Number is an integer literal
type Number struct {
	Value int64
	Pos   Position
}

// Char is a character literal
type Char struct {
	Value rune
	Pos   Position
}

// Operator is a binary operator application
type Operator struct {
	Symbol string
	Left   Node
	Right  Node
	Pos    Position
}

// Declaration sequences two or more declarations
type Declaration struct {
	List []Node
	Pos  Position
}

// Command sequences two or more commands
type Command struct {
	List []Node
	Pos  Position
}

func (*Let) node()         {}
func (*Const) node()       {}
func (*Var) node()         {}
func (*Func) node()        {}
func (*Proc) node()        {}
func (*Type) node()        {}
func (*Assign) node()      {}
func (*If) node()          {}
func (*While) node()       {}
func (*Call) node()        {}
func (*Identifier) node()  {}
func (*Number) node()      {}
func (*Char) node()        {}
func (*Operator) node()    {}
func (*Declaration) node() {}
func (*Command) node()     {}

func (n *Let) Position() Position         { return n.Pos }
func (n *Const) Position() Position       { return n.Pos }
func (n *Var) Position() Position         { return n.Pos }
func (n *Func) Position() Position        { return n.Pos }
func (n *Proc) Position() Position        { return n.Pos }
func (n *Type) Position() Position        { return n.Pos }
func (n *Assign) Position() Position      { return n.Pos }
func (n *If) Position() Position          { return n.Pos }
func (n *While) Position() Position       { return n.Pos }
func (n *Call) Position() Position        { return n.Pos }
func (n *Identifier) Position() Position  { return n.Pos }
func (n *Number) Position() Position      { return n.Pos }
func (n *Char) Position() Position        { return n.Pos }
func (n *Operator) Position() Position    { return n.Pos }
func (n *Declaration) Position() Position { return n.Pos }
func (n *Command) Position() Position     { return n.Pos }

// Children

func (n *Let) Children() []Node         { return []Node{n.Decls, n.Body} }
func (n *Const) Children() []Node       { return []Node{n.Value} }
func (n *Var) Children() []Node         { return nil }
func (n *Func) Children() []Node        { return []Node{n.Body} }
func (n *Proc) Children() []Node        { return []Node{n.Body} }
func (n *Type) Children() []Node        { return nil }
func (n *Assign) Children() []Node      { return []Node{n.Value} }
func (n *If) Children() []Node          { return []Node{n.Cond, n.Then, n.Else} }
func (n *While) Children() []Node       { return []Node{n.Cond, n.Body} }
func (n *Call) Children() []Node        { return n.Args }
func (n *Identifier) Children() []Node  { return nil }
func (n *Number) Children() []Node      { return nil }
func (n *Char) Children() []Node        { return nil }
func (n *Operator) Children() []Node    { return []Node{n.Left, n.Right} }
func (n *Declaration) Children() []Node { return n.List }
func (n *Command) Children() []Node     { return n.List }

// Validation

func requireName(variant, field, value string) error {
	if value == "" {
		return invalid("%s: empty %s", variant, field)
	}
	return nil
}

func requireChildren(variant string, children ...Node) error {
	for i, c := range children {
		if c == nil {
			return invalid("%s: missing child %d", variant, i)
		}
	}
	return nil
}

func validateParams(variant string, params []Param) error {
	for i, p := range params {
		if p.Name == "" || p.TypeName == "" {
			return invalid("%s: incomplete parameter %d", variant, i)
		}
	}
	return nil
}

func (n *Let) Validate() error {
	return requireChildren("let", n.Decls, n.Body)
}

func (n *Const) Validate() error {
	if err := requireName("const", "name", n.Name); err != nil {
		return err
	}
	return requireChildren("const", n.Value)
}

func (n *Var) Validate() error {
	if err := requireName("var", "name", n.Name); err != nil {
		return err
	}
	return requireName("var", "type name", n.TypeName)
}

func (n *Func) Validate() error {
	if err := requireName("func", "name", n.Name); err != nil {
		return err
	}
	if err := requireName("func", "return type", n.ReturnType); err != nil {
		return err
	}
	if err := validateParams("func", n.Params); err != nil {
		return err
	}
	return requireChildren("func", n.Body)
}

func (n *Proc) Validate() error {
	if err := requireName("proc", "name", n.Name); err != nil {
		return err
	}
	if err := validateParams("proc", n.Params); err != nil {
		return err
	}
	return requireChildren("proc", n.Body)
}

func (n *Type) Validate() error {
	if err := requireName("type", "name", n.Name); err != nil {
		return err
	}
	return requireName("type", "definition", n.Def)
}

func (n *Assign) Validate() error {
	if len(n.Targets) == 0 {
		return invalid("assign: no target")
	}
	for _, t := range n.Targets {
		if err := requireName("assign", "target", t); err != nil {
			return err
		}
	}
	return requireChildren("assign", n.Value)
}

func (n *If) Validate() error {
	return requireChildren("if", n.Cond, n.Then, n.Else)
}

func (n *While) Validate() error {
	return requireChildren("while", n.Cond, n.Body)
}

func (n *Call) Validate() error {
	if err := requireName("call", "name", n.Name); err != nil {
		return err
	}
	return requireChildren("call", n.Args...)
}

func (n *Identifier) Validate() error {
	return requireName("identifier", "name", n.Name)
}

func (n *Number) Validate() error { return nil }

func (n *Char) Validate() error { return nil }

func (n *Operator) Validate() error {
	if err := requireName("operator", "symbol", n.Symbol); err != nil {
		return err
	}
	return requireChildren("operator", n.Left, n.Right)
}

func (n *Declaration) Validate() error {
	if len(n.List) < 2 {
		return invalid("declaration: sequence of %d elements", len(n.List))
	}
	return requireChildren("declaration", n.List...)
}

func (n *Command) Validate() error {
	if len(n.List) < 2 {
		return invalid("command: sequence of %d elements", len(n.List))
	}
	return requireChildren("command", n.List...)
}

// String renders the subtree as an s-expression of labels, for example
// (operator("+") number(1) number(2))

func (n *Let) String() string         { return Sexp(n) }
func (n *Const) String() string       { return Sexp(n) }
func (n *Var) String() string         { return Sexp(n) }
func (n *Func) String() string        { return Sexp(n) }
func (n *Proc) String() string        { return Sexp(n) }
func (n *Type) String() string        { return Sexp(n) }
func (n *Assign) String() string      { return Sexp(n) }
func (n *If) String() string          { return Sexp(n) }
func (n *While) String() string       { return Sexp(n) }
func (n *Call) String() string        { return Sexp(n) }
func (n *Identifier) String() string  { return Sexp(n) }
func (n *Number) String() string      { return Sexp(n) }
func (n *Char) String() string        { return Sexp(n) }
func (n *Operator) String() string    { return Sexp(n) }
func (n *Declaration) String() string { return Sexp(n) }
func (n *Command) String() string     { return Sexp(n) }

// Sexp renders a subtree as a compact s-expression. Leaves are their bare
// label; inner nodes are parenthesized with their children.
func Sexp(n Node) string {
	if n == nil {
		return "<nil>"
	}
	children := n.Children()
	if len(children) == 0 {
		return n.Label()
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(n.Label())
	for _, c := range children {
		sb.WriteByte(' ')
		sb.WriteString(Sexp(c))
	}
	sb.WriteByte(')')
	return sb.String()
}
