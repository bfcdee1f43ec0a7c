// File: visitor.go
// Title: AST Visitor
// Description: Visitor interface with one method per node variant, plus a
//              BaseVisitor to embed in visitors that handle only some of
//              them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor implementation

package ast

// Visitor dispatches on the node variant. Traversal is left to the
// caller: combine Accept with Walk or Children.
type Visitor interface {
	// Declarations
	VisitLet(n *Let) interface{}
	VisitConst(n *Const) interface{}
	VisitVar(n *Var) interface{}
	VisitFunc(n *Func) interface{}
	VisitProc(n *Proc) interface{}
	VisitType(n *Type) interface{}

	// Commands
	VisitAssign(n *Assign) interface{}
	VisitIf(n *If) interface{}
	VisitWhile(n *While) interface{}
	VisitCall(n *Call) interface{}

	// Expressions
	VisitIdentifier(n *Identifier) interface{}
	VisitNumber(n *Number) interface{}
	VisitChar(n *Char) interface{}
	VisitOperator(n *Operator) interface{}

	// Lists
	VisitDeclaration(n *Declaration) interface{}
	VisitCommand(n *Command) interface{}
}

// BaseVisitor returns nil for every variant.
// Embed this in concrete visitors to only override needed methods
type BaseVisitor struct{}

func (BaseVisitor) VisitLet(*Let) interface{}                 { return nil }
func (BaseVisitor) VisitConst(*Const) interface{}             { return nil }
func (BaseVisitor) VisitVar(*Var) interface{}                 { return nil }
func (BaseVisitor) VisitFunc(*Func) interface{}               { return nil }
func (BaseVisitor) VisitProc(*Proc) interface{}               { return nil }
func (BaseVisitor) VisitType(*Type) interface{}               { return nil }
func (BaseVisitor) VisitAssign(*Assign) interface{}           { return nil }
func (BaseVisitor) VisitIf(*If) interface{}                   { return nil }
func (BaseVisitor) VisitWhile(*While) interface{}             { return nil }
func (BaseVisitor) VisitCall(*Call) interface{}               { return nil }
func (BaseVisitor) VisitIdentifier(*Identifier) interface{}   { return nil }
func (BaseVisitor) VisitNumber(*Number) interface{}           { return nil }
func (BaseVisitor) VisitChar(*Char) interface{}               { return nil }
func (BaseVisitor) VisitOperator(*Operator) interface{}       { return nil }
func (BaseVisitor) VisitDeclaration(*Declaration) interface{} { return nil }
func (BaseVisitor) VisitCommand(*Command) interface{}         { return nil }

// Accept

func (n *Let) Accept(v Visitor) interface{}         { return v.VisitLet(n) }
func (n *Const) Accept(v Visitor) interface{}       { return v.VisitConst(n) }
func (n *Var) Accept(v Visitor) interface{}         { return v.VisitVar(n) }
func (n *Func) Accept(v Visitor) interface{}        { return v.VisitFunc(n) }
func (n *Proc) Accept(v Visitor) interface{}        { return v.VisitProc(n) }
func (n *Type) Accept(v Visitor) interface{}        { return v.VisitType(n) }
func (n *Assign) Accept(v Visitor) interface{}      { return v.VisitAssign(n) }
func (n *If) Accept(v Visitor) interface{}          { return v.VisitIf(n) }
func (n *While) Accept(v Visitor) interface{}       { return v.VisitWhile(n) }
func (n *Call) Accept(v Visitor) interface{}        { return v.VisitCall(n) }
func (n *Identifier) Accept(v Visitor) interface{}  { return v.VisitIdentifier(n) }
func (n *Number) Accept(v Visitor) interface{}      { return v.VisitNumber(n) }
func (n *Char) Accept(v Visitor) interface{}        { return v.VisitChar(n) }
func (n *Operator) Accept(v Visitor) interface{}    { return v.VisitOperator(n) }
func (n *Declaration) Accept(v Visitor) interface{} { return v.VisitDeclaration(n) }
func (n *Command) Accept(v Visitor) interface{}     { return v.VisitCommand(n) }
