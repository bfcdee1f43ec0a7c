// File: engine.go
// Title: Triangle Engine
// Description: Runs the analyzer pipeline stage by stage with timing,
//              logging and error classification. A new parser and scanner
//              are created for every call.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine implementation

package triangle

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	mdwlog "github.com/msto63/triangle/foundation/core/log"
	"github.com/msto63/triangle/foundation/triangle/ast"
	"github.com/msto63/triangle/foundation/triangle/export"
	"github.com/msto63/triangle/foundation/triangle/parser"
	"github.com/msto63/triangle/foundation/triangle/scanner"
	"github.com/msto63/triangle/foundation/triangle/token"
)

// Pipeline stages as reported to the Observer
const (
	StageScan   = "scan"
	StageRead   = "read"
	StageParse  = "parse"
	StageExport = "export"
	StageGraph  = "graph"
)

// Observer receives the outcome of every stage. Implementations must be
// safe for concurrent use.
type Observer interface {
	ObserveStage(stage string, elapsed time.Duration, err error)
	ObserveTree(tokens, nodes, depth int)
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxTokens limits the token stream length, 0 means unlimited
	MaxTokens int

	// EnableExtensions lets the parser accept proc, type and while
	EnableExtensions bool

	// TabWidth for scanner column tracking, 0 means scanner default
	TabWidth int

	// Observer for stage metrics (optional)
	Observer Observer
}

// Result describes a successful parse
type Result struct {
	Root   ast.Node
	Tokens int
	Nodes  int
	Depth  int
}

// Engine coordinates scanning, parsing and exporting
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a new engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	logger := opts.Logger.WithField("component", "engine")
	logger.Debug("Triangle engine initialized", mdwlog.Fields{
		"maxTokens":   opts.MaxTokens,
		"extensions":  opts.EnableExtensions,
		"hasObserver": opts.Observer != nil,
	})

	return &Engine{
		logger:  logger,
		options: opts,
	}
}

// Scan reads source text and classifies it into tokens
func (e *Engine) Scan(ctx context.Context, r io.Reader) ([]token.Token, error) {
	var tokens []token.Token
	err := e.stage(ctx, StageScan, func() error {
		src, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		s := scanner.New(scanner.Options{Logger: e.options.Logger, TabWidth: e.options.TabWidth})
		tokens = s.Scan(string(src))
		return nil
	})
	if err != nil {
		return nil, classify(err, "triangle.Scan", "failed to scan source")
	}
	return tokens, nil
}

// ReadTokens reads a token file
func (e *Engine) ReadTokens(ctx context.Context, r io.Reader) ([]token.Token, error) {
	var tokens []token.Token
	err := e.stage(ctx, StageRead, func() error {
		var err error
		tokens, err = token.Read(r)
		return err
	})
	if err != nil {
		return nil, classify(err, "triangle.ReadTokens", "failed to read token file")
	}
	return tokens, nil
}

// Parse runs the syntax analysis on a token stream
func (e *Engine) Parse(ctx context.Context, tokens []token.Token) (*Result, error) {
	var result *Result
	err := e.stage(ctx, StageParse, func() error {
		p := parser.New(parser.Options{
			Logger:           e.options.Logger,
			MaxTokens:        e.options.MaxTokens,
			EnableExtensions: e.options.EnableExtensions,
		})
		root, err := p.Parse(tokens)
		if err != nil {
			return err
		}
		result = &Result{
			Root:   root,
			Tokens: len(tokens),
			Nodes:  ast.Count(root),
			Depth:  ast.Depth(root),
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "triangle.Parse", "failed to parse tokens")
	}

	if e.options.Observer != nil {
		e.options.Observer.ObserveTree(result.Tokens, result.Nodes, result.Depth)
	}
	return result, nil
}

// Export writes the tree in the given format. Nothing reaches w unless the
// whole export succeeded.
func (e *Engine) Export(ctx context.Context, w io.Writer, root ast.Node, format export.Format) error {
	err := e.stage(ctx, StageExport, func() error {
		var buf bytes.Buffer
		if err := export.Write(&buf, root, format); err != nil {
			return err
		}
		_, err := buf.WriteTo(w)
		return err
	})
	if err != nil {
		return classify(err, "triangle.Export", fmt.Sprintf("failed to export %s", format))
	}
	return nil
}

// Run reads a token file from r, parses it and exports the tree to w
func (e *Engine) Run(ctx context.Context, r io.Reader, w io.Writer, format export.Format) (*Result, error) {
	tokens, err := e.ReadTokens(ctx, r)
	if err != nil {
		return nil, err
	}

	result, err := e.Parse(ctx, tokens)
	if err != nil {
		return nil, err
	}

	if err := e.Export(ctx, w, result.Root, format); err != nil {
		return nil, err
	}

	e.logger.Info("Syntax analysis completed", mdwlog.Fields{
		"tokens": result.Tokens,
		"nodes":  result.Nodes,
		"depth":  result.Depth,
		"format": string(format),
	})

	return result, nil
}

// Graph reads a tree file from r and writes its DOT rendering to w
func (e *Engine) Graph(ctx context.Context, r io.Reader, w io.Writer) error {
	err := e.stage(ctx, StageGraph, func() error {
		tree, err := export.ReadTree(r)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := export.WriteDOT(&buf, tree); err != nil {
			return err
		}
		_, err = buf.WriteTo(w)
		return err
	})
	if err != nil {
		return classify(err, "triangle.Graph", "failed to graph tree file")
	}
	return nil
}

// stage runs fn as one timed pipeline stage
func (e *Engine) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := e.logger.StartTimer(name)
	err := fn()
	elapsed := timer.WithField("success", err == nil).Stop()

	if e.options.Observer != nil {
		e.options.Observer.ObserveStage(name, elapsed, err)
	}
	return err
}
