// File: engine_test.go
// Title: Triangle Engine Tests
// Description: Pipeline tests for the engine: success paths, error codes,
//              observer reporting and cancellation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine test suite

package triangle

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
	mdwlog "github.com/msto63/triangle/foundation/core/log"
	"github.com/msto63/triangle/foundation/triangle/export"
	"github.com/msto63/triangle/foundation/triangle/parser"
	"github.com/msto63/triangle/foundation/triangle/token"
)

const sumTokens = `{Identifier, 'x', 1, 1}
{Assign, ':=', 1, 3}
{IntegerLiteral, '1', 1, 6}
{Operator, '+', 1, 8}
{IntegerLiteral, '2', 1, 10}
`

const sumTree = `assign(name("x"))
  operator("+")
    number(1)
    number(2)
`

type stageCall struct {
	stage string
	err   error
}

type recordingObserver struct {
	mu     sync.Mutex
	stages []stageCall
	nodes  int
}

func (o *recordingObserver) ObserveStage(stage string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stages = append(o.stages, stageCall{stage: stage, err: err})
}

func (o *recordingObserver) ObserveTree(_, nodes, _ int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nodes = nodes
}

func newTestEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}
	return New(opts)
}

func TestEngine_Run(t *testing.T) {
	obs := &recordingObserver{}
	engine := newTestEngine(Options{Observer: obs})

	var out bytes.Buffer
	result, err := engine.Run(context.Background(), strings.NewReader(sumTokens), &out, export.FormatText)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if out.String() != sumTree {
		t.Errorf("output = %q, want %q", out.String(), sumTree)
	}
	if result.Tokens != 5 || result.Nodes != 4 || result.Depth != 2 {
		t.Errorf("result = %+v, want 5 tokens, 4 nodes, depth 2", result)
	}

	var stages []string
	for _, c := range obs.stages {
		stages = append(stages, c.stage)
		if c.err != nil {
			t.Errorf("stage %s reported error %v", c.stage, c.err)
		}
	}
	if got := strings.Join(stages, ","); got != "read,parse,export" {
		t.Errorf("stages = %s, want read,parse,export", got)
	}
	if obs.nodes != 4 {
		t.Errorf("observed nodes = %d, want 4", obs.nodes)
	}
}

func TestEngine_RunFormats(t *testing.T) {
	engine := newTestEngine(Options{})

	tests := []struct {
		format export.Format
		want   string
	}{
		{export.FormatJSON, `"kind": "assign"`},
		{export.FormatYAML, "kind: assign"},
		{export.FormatDOT, "0 -> 1;"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var out bytes.Buffer
			if _, err := engine.Run(context.Background(), strings.NewReader(sumTokens), &out, tt.format); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestEngine_ErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		input  string
		format export.Format
		code   mdwerror.Code
		check  func(t *testing.T, err error)
	}{
		{
			name:   "syntax error",
			input:  "{Identifier, 'x', 1, 1}\n{Semicolon, ';', 1, 2}\n",
			format: export.FormatText,
			code:   mdwerror.CodeSyntax,
			check: func(t *testing.T, err error) {
				var syntaxErr *parser.SyntaxError
				if !errors.As(err, &syntaxErr) {
					t.Fatalf("errors.As(*parser.SyntaxError) failed for %v", err)
				}
				var coded *mdwerror.Error
				errors.As(err, &coded)
				if coded.Details()["row"] != 1 || coded.Details()["col"] != 2 {
					t.Errorf("details = %v, want row 1 col 2", coded.Details())
				}
			},
		},
		{
			name:   "empty token file",
			input:  "\n\n",
			format: export.FormatText,
			code:   mdwerror.CodeNoInput,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, parser.ErrNoInput) {
					t.Errorf("errors.Is(ErrNoInput) failed for %v", err)
				}
			},
		},
		{
			name:   "malformed token line",
			input:  "{Identifier, 'x', 1, 1}\n{Bogus, 'y', 2, 1}\n",
			format: export.FormatText,
			code:   mdwerror.CodeInvalidInput,
			check: func(t *testing.T, err error) {
				var inputErr *token.InputError
				if !errors.As(err, &inputErr) || inputErr.Line != 2 {
					t.Errorf("want *token.InputError on line 2, got %v", err)
				}
			},
		},
		{
			name:   "too many tokens",
			opts:   Options{MaxTokens: 2},
			input:  sumTokens,
			format: export.FormatText,
			code:   mdwerror.CodeInputTooLarge,
		},
		{
			name:   "unknown format",
			input:  sumTokens,
			format: export.Format("xml"),
			code:   mdwerror.CodeUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(tt.opts)

			var out bytes.Buffer
			_, err := engine.Run(context.Background(), strings.NewReader(tt.input), &out, tt.format)
			if err == nil {
				t.Fatal("Run() should fail")
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (err: %v)", got, tt.code, err)
			}
			if out.Len() != 0 {
				t.Errorf("output written on failure: %q", out.String())
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestEngine_Extensions(t *testing.T) {
	input := "{While, 'while', 1, 1}\n{Identifier, 'b', 1, 7}\n{Do, 'do', 1, 9}\n{Identifier, 'f', 1, 12}\n{LeftParen, '(', 1, 13}\n{RightParen, ')', 1, 14}\n"

	if _, err := newTestEngine(Options{}).Run(context.Background(), strings.NewReader(input), &bytes.Buffer{}, export.FormatText); err == nil {
		t.Error("while should be rejected without extensions")
	}

	var out bytes.Buffer
	if _, err := newTestEngine(Options{EnableExtensions: true}).Run(context.Background(), strings.NewReader(input), &out, export.FormatText); err != nil {
		t.Fatalf("Run() with extensions error = %v", err)
	}
	if want := "while\n  identifier(\"b\")\n  call(name(\"f\"))\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestEngine_ScanAndParse(t *testing.T) {
	engine := newTestEngine(Options{})
	ctx := context.Background()

	tokens, err := engine.Scan(ctx, strings.NewReader("x := 1 + 2"))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	result, err := engine.Parse(ctx, tokens)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var out bytes.Buffer
	if err := engine.Export(ctx, &out, result.Root, export.FormatText); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if out.String() != sumTree {
		t.Errorf("output = %q, want %q", out.String(), sumTree)
	}
}

func TestEngine_Graph(t *testing.T) {
	engine := newTestEngine(Options{})

	var out bytes.Buffer
	if err := engine.Graph(context.Background(), strings.NewReader(sumTree), &out); err != nil {
		t.Fatalf("Graph() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "digraph G {\n    0 [label=\"assign(name('x'))\"];") {
		t.Errorf("unexpected DOT output:\n%s", out.String())
	}

	err := engine.Graph(context.Background(), strings.NewReader("let\n    var\n"), &bytes.Buffer{})
	if mdwerror.GetCode(err) != mdwerror.CodeInvalidInput {
		t.Errorf("code = %s, want %s", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
	}
}

func TestEngine_Cancelled(t *testing.T) {
	obs := &recordingObserver{}
	engine := newTestEngine(Options{Observer: obs})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Run(ctx, strings.NewReader(sumTokens), &bytes.Buffer{}, export.FormatText)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(obs.stages) != 0 {
		t.Errorf("cancelled run reported stages %v", obs.stages)
	}
}

func TestEngine_ConcurrentRuns(t *testing.T) {
	engine := newTestEngine(Options{})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out bytes.Buffer
			if _, err := engine.Run(context.Background(), strings.NewReader(sumTokens), &out, export.FormatText); err != nil {
				errs <- err
				return
			}
			if out.String() != sumTree {
				errs <- errors.New("unexpected output " + out.String())
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestEngine_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatText, Output: &buf})
	engine := New(Options{Logger: logger})

	if _, err := engine.Run(context.Background(), strings.NewReader(sumTokens), &bytes.Buffer{}, export.FormatText); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"component=engine", "parse completed", "Syntax analysis completed", "nodes=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
