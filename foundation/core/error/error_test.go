// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              chain lookups.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Chain lookups and syntax analyzer codes
// - 2026-10-18 v0.2.1: Severity follows the latest code

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("boom"),
			message: "reading tokens",
			wantMsg: "reading tokens: boom",
		},
		{
			name:    "wrap coded error",
			err:     New("bad line").WithCode(CodeInvalidInput),
			message: "loading",
			wantMsg: "loading: bad line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should reach the wrapped error")
			}
		})
	}
}

func TestWrap_InheritsCodeAndDetails(t *testing.T) {
	inner := New("unexpected token").WithCode(CodeSyntax).WithDetail("row", 3)
	outer := Wrap(inner, "parse failed")

	if outer.Code() != CodeSyntax {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeSyntax)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if outer.Details()["row"] != 3 {
		t.Errorf("Details()[row] = %v, want 3", outer.Details()["row"])
	}
}

type positionError struct{ row int }

func (p *positionError) Error() string { return fmt.Sprintf("at row %d", p.row) }

func TestWrap_ErrorsAsReachesTypedCause(t *testing.T) {
	err := Wrap(&positionError{row: 7}, "parse failed").WithCode(CodeSyntax)

	var target *positionError
	if !errors.As(err, &target) {
		t.Fatal("errors.As should find *positionError")
	}
	if target.row != 7 {
		t.Errorf("row = %d, want 7", target.row)
	}
}

func TestWithCode_SetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeNoInput, SeverityLow},
		{CodeIO, SeverityHigh},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithCode_FollowsLatestCode(t *testing.T) {
	err := Wrap(New("bad line").WithCode(CodeInvalidInput), "loading").WithCode(CodeInternal)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("no tokens").WithCode(CodeNoInput)
	outer := fmt.Errorf("cli: %w", inner)

	if !HasCode(outer, CodeNoInput) {
		t.Error("HasCode() should find the code through fmt wrapping")
	}
	if HasCode(outer, CodeSyntax) {
		t.Error("HasCode() reported a code that is not in the chain")
	}
	if GetCode(outer) != CodeNoInput {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeNoInput)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(outer) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(outer), SeverityLow)
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestWrap_TruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if depth := chainDepth(err); depth > MaxErrorChainDepth {
		t.Errorf("chain depth = %d, want at most %d", depth, MaxErrorChainDepth)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "read failed").WithCode(CodeIO).WithOperation("token.Read")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded["code"] != "IO_ERROR" {
		t.Errorf("code = %v, want IO_ERROR", decoded["code"])
	}
	if decoded["operation"] != "token.Read" {
		t.Errorf("operation = %v, want token.Read", decoded["operation"])
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", decoded["cause"])
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeSyntax, "input"},
		{CodeInvalidInput, "input"},
		{CodeIO, "environment"},
		{CodeInternal, "internal"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if Code("BOGUS").IsValid() {
		t.Error("IsValid() should reject unknown codes")
	}
	if !CodeSyntax.IsValid() {
		t.Error("IsValid() should accept CodeSyntax")
	}
}
