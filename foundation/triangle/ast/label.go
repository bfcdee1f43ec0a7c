// File: label.go
// Title: Node Labels
// Description: One-line labels for every node variant. The indented text
//              export, the DOT export and the tree reader all use them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strings"
)

func name(s string) string {
	return fmt.Sprintf("name(%q)", s)
}

func typeName(s string) string {
	return fmt.Sprintf("typeName(%q)", s)
}

// Label returns param(name("c"),typeName("Char")), or varParam(...) for
// parameters passed by reference
func (p Param) Label() string {
	kind := "param"
	if p.ByRef {
		kind = "varParam"
	}
	return fmt.Sprintf("%s(%s,%s)", kind, name(p.Name), typeName(p.TypeName))
}

func paramsLabel(params []Param) string {
	labels := make([]string, len(params))
	for i, p := range params {
		labels[i] = p.Label()
	}
	return "params(" + strings.Join(labels, ",") + ")"
}

func (n *Let) Label() string { return "let" }

func (n *Const) Label() string {
	return fmt.Sprintf("const(%s)", name(n.Name))
}

func (n *Var) Label() string {
	return fmt.Sprintf("var(%s,%s)", name(n.Name), typeName(n.TypeName))
}

func (n *Func) Label() string {
	return fmt.Sprintf("func(%s,%s,returnType(%q))", name(n.Name), paramsLabel(n.Params), n.ReturnType)
}

func (n *Proc) Label() string {
	return fmt.Sprintf("proc(%s,%s)", name(n.Name), paramsLabel(n.Params))
}

func (n *Type) Label() string {
	return fmt.Sprintf("type(%s,%s)", name(n.Name), typeName(n.Def))
}

func (n *Assign) Label() string {
	targets := make([]string, len(n.Targets))
	for i, t := range n.Targets {
		targets[i] = name(t)
	}
	return "assign(" + strings.Join(targets, ",") + ")"
}

func (n *If) Label() string { return "if" }

func (n *While) Label() string { return "while" }

func (n *Call) Label() string {
	return fmt.Sprintf("call(%s)", name(n.Name))
}

func (n *Identifier) Label() string {
	return fmt.Sprintf("identifier(%q)", n.Name)
}

func (n *Number) Label() string {
	return fmt.Sprintf("number(%d)", n.Value)
}

func (n *Char) Label() string {
	return fmt.Sprintf("char('%c')", n.Value)
}

func (n *Operator) Label() string {
	return fmt.Sprintf("operator(%q)", n.Symbol)
}

func (n *Declaration) Label() string { return "declaration" }

func (n *Command) Label() string { return "command" }
