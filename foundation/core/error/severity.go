// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used when logging coded errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Severity mapping for syntax analyzer codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by the user's input
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh marks errors of the environment (files, configuration)
	SeverityHigh

	// SeverityCritical marks internal failures
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIO, CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeNoInput, CodeSyntax, CodeInputTooLarge, CodeUsage, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
