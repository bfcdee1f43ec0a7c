// File: codec.go
// Title: Structured AST Codec
// Description: Lossless JSON and YAML documents for ASTs. Every node becomes
//              {kind, pos, attributes..., children} and decodes back into
//              the same variant.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/msto63/triangle/foundation/triangle/ast"
)

// Node kinds used in documents
const (
	KindLet         = "let"
	KindConst       = "const"
	KindVar         = "var"
	KindFunc        = "func"
	KindProc        = "proc"
	KindType        = "type"
	KindAssign      = "assign"
	KindIf          = "if"
	KindWhile       = "while"
	KindCall        = "call"
	KindIdentifier  = "identifier"
	KindNumber      = "number"
	KindChar        = "char"
	KindOperator    = "operator"
	KindDeclaration = "declaration"
	KindCommand     = "command"
)

// Document is the serialized form of one node
type Document struct {
	Kind       string       `json:"kind" yaml:"kind"`
	Pos        ast.Position `json:"pos" yaml:"pos"`
	Name       string       `json:"name,omitempty" yaml:"name,omitempty"`
	TypeName   string       `json:"typeName,omitempty" yaml:"typeName,omitempty"`
	ReturnType string       `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	Targets    []string     `json:"targets,omitempty" yaml:"targets,omitempty"`
	Params     []ParamDoc   `json:"params,omitempty" yaml:"params,omitempty"`
	Number     *int64       `json:"number,omitempty" yaml:"number,omitempty"`
	Char       string       `json:"char,omitempty" yaml:"char,omitempty"`
	Symbol     string       `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Children   []*Document  `json:"children,omitempty" yaml:"children,omitempty"`
}

// ParamDoc is the serialized form of a formal parameter
type ParamDoc struct {
	Name     string `json:"name" yaml:"name"`
	TypeName string `json:"typeName" yaml:"typeName"`
	ByRef    bool   `json:"byRef,omitempty" yaml:"byRef,omitempty"`
}

// ToDocument converts a tree into its document form
func ToDocument(n ast.Node) *Document {
	if n == nil {
		return nil
	}

	doc := &Document{Pos: n.Position()}
	n.Accept(documentVisitor{doc: doc})
	for _, c := range n.Children() {
		doc.Children = append(doc.Children, ToDocument(c))
	}
	return doc
}

// documentVisitor fills the kind and attributes of one document
type documentVisitor struct {
	doc *Document
}

func (v documentVisitor) VisitLet(*ast.Let) interface{} {
	v.doc.Kind = KindLet
	return nil
}

func (v documentVisitor) VisitConst(n *ast.Const) interface{} {
	v.doc.Kind = KindConst
	v.doc.Name = n.Name
	return nil
}

func (v documentVisitor) VisitVar(n *ast.Var) interface{} {
	v.doc.Kind = KindVar
	v.doc.Name = n.Name
	v.doc.TypeName = n.TypeName
	return nil
}

func (v documentVisitor) VisitFunc(n *ast.Func) interface{} {
	v.doc.Kind = KindFunc
	v.doc.Name = n.Name
	v.doc.Params = paramDocs(n.Params)
	v.doc.ReturnType = n.ReturnType
	return nil
}

func (v documentVisitor) VisitProc(n *ast.Proc) interface{} {
	v.doc.Kind = KindProc
	v.doc.Name = n.Name
	v.doc.Params = paramDocs(n.Params)
	return nil
}

func (v documentVisitor) VisitType(n *ast.Type) interface{} {
	v.doc.Kind = KindType
	v.doc.Name = n.Name
	v.doc.TypeName = n.Def
	return nil
}

func (v documentVisitor) VisitAssign(n *ast.Assign) interface{} {
	v.doc.Kind = KindAssign
	v.doc.Targets = append([]string(nil), n.Targets...)
	return nil
}

func (v documentVisitor) VisitIf(*ast.If) interface{} {
	v.doc.Kind = KindIf
	return nil
}

func (v documentVisitor) VisitWhile(*ast.While) interface{} {
	v.doc.Kind = KindWhile
	return nil
}

func (v documentVisitor) VisitCall(n *ast.Call) interface{} {
	v.doc.Kind = KindCall
	v.doc.Name = n.Name
	return nil
}

func (v documentVisitor) VisitIdentifier(n *ast.Identifier) interface{} {
	v.doc.Kind = KindIdentifier
	v.doc.Name = n.Name
	return nil
}

func (v documentVisitor) VisitNumber(n *ast.Number) interface{} {
	v.doc.Kind = KindNumber
	value := n.Value
	v.doc.Number = &value
	return nil
}

func (v documentVisitor) VisitChar(n *ast.Char) interface{} {
	v.doc.Kind = KindChar
	v.doc.Char = string(n.Value)
	return nil
}

func (v documentVisitor) VisitOperator(n *ast.Operator) interface{} {
	v.doc.Kind = KindOperator
	v.doc.Symbol = n.Symbol
	return nil
}

func (v documentVisitor) VisitDeclaration(*ast.Declaration) interface{} {
	v.doc.Kind = KindDeclaration
	return nil
}

func (v documentVisitor) VisitCommand(*ast.Command) interface{} {
	v.doc.Kind = KindCommand
	return nil
}

func paramDocs(params []ast.Param) []ParamDoc {
	if len(params) == 0 {
		return nil
	}
	docs := make([]ParamDoc, len(params))
	for i, p := range params {
		docs[i] = ParamDoc{Name: p.Name, TypeName: p.TypeName, ByRef: p.ByRef}
	}
	return docs
}

func astParams(docs []ParamDoc) []ast.Param {
	if len(docs) == 0 {
		return nil
	}
	params := make([]ast.Param, len(docs))
	for i, d := range docs {
		params[i] = ast.Param{Name: d.Name, TypeName: d.TypeName, ByRef: d.ByRef}
	}
	return params
}

// DecodeError reports a document that does not describe a valid AST
type DecodeError struct {
	Path   string // slash separated child indexes from the root
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid AST document at %s: %s", e.Path, e.Reason)
}

// FromDocument converts a document back into a tree. The result passes
// ast.ValidateTree.
func FromDocument(doc *Document) (ast.Node, error) {
	node, err := fromDocument(doc, "/")
	if err != nil {
		return nil, err
	}
	if err := ast.ValidateTree(node); err != nil {
		return nil, &DecodeError{Path: "/", Reason: err.Error()}
	}
	return node, nil
}

func fromDocument(doc *Document, path string) (ast.Node, error) {
	if doc == nil {
		return nil, &DecodeError{Path: path, Reason: "missing node"}
	}

	children := make([]ast.Node, len(doc.Children))
	for i, c := range doc.Children {
		child, err := fromDocument(c, fmt.Sprintf("%s%d/", path, i))
		if err != nil {
			return nil, err
		}
		children[i] = child
	}

	arity := func(n int) error {
		if len(children) != n {
			return &DecodeError{Path: path, Reason: fmt.Sprintf("%s needs %d children, has %d", doc.Kind, n, len(children))}
		}
		return nil
	}

	pos := doc.Pos
	switch doc.Kind {
	case KindLet:
		if err := arity(2); err != nil {
			return nil, err
		}
		return &ast.Let{Decls: children[0], Body: children[1], Pos: pos}, nil

	case KindConst:
		if err := arity(1); err != nil {
			return nil, err
		}
		return &ast.Const{Name: doc.Name, Value: children[0], Pos: pos}, nil

	case KindVar:
		if err := arity(0); err != nil {
			return nil, err
		}
		return &ast.Var{Name: doc.Name, TypeName: doc.TypeName, Pos: pos}, nil

	case KindFunc:
		if err := arity(1); err != nil {
			return nil, err
		}
		return &ast.Func{Name: doc.Name, Params: astParams(doc.Params), ReturnType: doc.ReturnType, Body: children[0], Pos: pos}, nil

	case KindProc:
		if err := arity(1); err != nil {
			return nil, err
		}
		return &ast.Proc{Name: doc.Name, Params: astParams(doc.Params), Body: children[0], Pos: pos}, nil

	case KindType:
		if err := arity(0); err != nil {
			return nil, err
		}
		return &ast.Type{Name: doc.Name, Def: doc.TypeName, Pos: pos}, nil

	case KindAssign:
		if err := arity(1); err != nil {
			return nil, err
		}
		return &ast.Assign{Targets: append([]string(nil), doc.Targets...), Value: children[0], Pos: pos}, nil

	case KindIf:
		if err := arity(3); err != nil {
			return nil, err
		}
		return &ast.If{Cond: children[0], Then: children[1], Else: children[2], Pos: pos}, nil

	case KindWhile:
		if err := arity(2); err != nil {
			return nil, err
		}
		return &ast.While{Cond: children[0], Body: children[1], Pos: pos}, nil

	case KindCall:
		var args []ast.Node
		if len(children) > 0 {
			args = children
		}
		return &ast.Call{Name: doc.Name, Args: args, Pos: pos}, nil

	case KindIdentifier:
		if err := arity(0); err != nil {
			return nil, err
		}
		return &ast.Identifier{Name: doc.Name, Pos: pos}, nil

	case KindNumber:
		if err := arity(0); err != nil {
			return nil, err
		}
		if doc.Number == nil {
			return nil, &DecodeError{Path: path, Reason: "number without value"}
		}
		return &ast.Number{Value: *doc.Number, Pos: pos}, nil

	case KindChar:
		if err := arity(0); err != nil {
			return nil, err
		}
		r, size := utf8.DecodeRuneInString(doc.Char)
		if doc.Char == "" || size != len(doc.Char) {
			return nil, &DecodeError{Path: path, Reason: fmt.Sprintf("char needs exactly one character, has %q", doc.Char)}
		}
		return &ast.Char{Value: r, Pos: pos}, nil

	case KindOperator:
		if err := arity(2); err != nil {
			return nil, err
		}
		return &ast.Operator{Symbol: doc.Symbol, Left: children[0], Right: children[1], Pos: pos}, nil

	case KindDeclaration:
		return &ast.Declaration{List: children, Pos: pos}, nil

	case KindCommand:
		return &ast.Command{List: children, Pos: pos}, nil
	}

	return nil, &DecodeError{Path: path, Reason: fmt.Sprintf("unknown kind %q", doc.Kind)}
}

// EncodeJSON writes the tree as an indented JSON document
func EncodeJSON(w io.Writer, root ast.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToDocument(root))
}

// DecodeJSON reads a JSON document written by EncodeJSON
func DecodeJSON(r io.Reader) (ast.Node, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON tree: %w", err)
	}
	return FromDocument(&doc)
}

// EncodeYAML writes the tree as a YAML document
func EncodeYAML(w io.Writer, root ast.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToDocument(root)); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeYAML reads a YAML document written by EncodeYAML
func DecodeYAML(r io.Reader) (ast.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding YAML tree: %w", err)
	}
	return FromDocument(&doc)
}
