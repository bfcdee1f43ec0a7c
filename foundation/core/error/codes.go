// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              token reader, the parser, configuration loading and file I/O.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Syntax analyzer codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input and syntax
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeNoInput       Code = "NO_INPUT"
	CodeSyntax        Code = "SYNTAX"
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// Environment
	CodeIO          Code = "IO_ERROR"
	CodeConfigError Code = "CONFIG_ERROR"
	CodeUsage       Code = "USAGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeNoInput, CodeSyntax, CodeInputTooLarge,
		CodeIO, CodeConfigError, CodeUsage:
		return true
	}
	return false
}

// Category groups codes into input, environment and internal failures
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeNoInput, CodeSyntax, CodeInputTooLarge:
		return "input"
	case CodeIO, CodeConfigError, CodeUsage, CodeNotFound:
		return "environment"
	default:
		return "internal"
	}
}
