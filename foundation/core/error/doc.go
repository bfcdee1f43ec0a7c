// Package error provides structured error handling for the tri toolchain.
//
// Package: error
// Title: Coded Error Handling
// Description: Implements a structured error type carrying a code, a severity,
//              the failing operation and free-form details. Errors produced by
//              the token reader, the parser and the CLI are wrapped into this
//              type so callers can branch on the code while errors.Is and
//              errors.As still reach the original typed error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced to the codes used by the syntax analyzer
//
// Usage:
//
//	err := mdwerror.Wrap(synErr, "parse failed").
//		WithCode(mdwerror.CodeSyntax).
//		WithOperation("parser.Parse").
//		WithDetail("row", 3)
//
//	if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//		// ...
//	}
package error
