// File: errors.go
// Title: Engine Error Classification
// Description: Maps the typed errors of the subpackages onto coded errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package triangle

import (
	"context"
	"errors"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
	"github.com/msto63/triangle/foundation/triangle/export"
	"github.com/msto63/triangle/foundation/triangle/parser"
	"github.com/msto63/triangle/foundation/triangle/token"
)

// classify wraps err with a code derived from its type. Errors that
// already carry a code are returned unchanged.
func classify(err error, operation, message string) error {
	var coded *mdwerror.Error
	if errors.As(err, &coded) {
		return err
	}

	var (
		inputErr  *token.InputError
		syntaxErr *parser.SyntaxError
		treeErr   *export.TreeError
		decodeErr *export.DecodeError
	)

	wrapped := mdwerror.Wrap(err, message).WithOperation(operation)
	switch {
	case errors.As(err, &syntaxErr):
		wrapped.WithCode(mdwerror.CodeSyntax).
			WithDetail("row", syntaxErr.Row()).
			WithDetail("col", syntaxErr.Col()).
			WithDetail("found", syntaxErr.Found.Kind.String())
	case errors.As(err, &inputErr):
		wrapped.WithCode(mdwerror.CodeInvalidInput).WithDetail("line", inputErr.Line)
	case errors.As(err, &treeErr):
		wrapped.WithCode(mdwerror.CodeInvalidInput).WithDetail("line", treeErr.Line)
	case errors.As(err, &decodeErr):
		wrapped.WithCode(mdwerror.CodeInvalidInput).WithDetail("path", decodeErr.Path)
	case errors.Is(err, parser.ErrNoInput):
		wrapped.WithCode(mdwerror.CodeNoInput)
	case errors.Is(err, parser.ErrTooManyTokens):
		wrapped.WithCode(mdwerror.CodeInputTooLarge)
	case errors.Is(err, export.ErrUnknownFormat):
		wrapped.WithCode(mdwerror.CodeUsage)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		wrapped.WithCode(mdwerror.CodeInternal)
	default:
		wrapped.WithCode(mdwerror.CodeIO)
	}
	return wrapped
}
