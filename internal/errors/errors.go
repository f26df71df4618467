// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured error handling for the calc CLI.
//
// UserError carries what went wrong, why it happened, and how to fix it,
// together with the exit code the process should terminate with.
//
// # Usage Example
//
//	q, err := arith.Divide(a, b)
//	if err != nil {
//	    errors.FatalError(errors.FromArith(err, "Cannot divide 10 by 0"), jsonMode)
//	}
//
// # Formatted Output
//
// Format renders colored terminal output:
//
//	Error: Cannot divide 10 by 0
//	Cause: Division by zero
//	Fix:   Use a non-zero divisor
//
// ToJSON renders the same information for --json mode:
//
//	{
//	  "error": "Cannot divide 10 by 0",
//	  "cause": "Division by zero",
//	  "fix": "Use a non-zero divisor",
//	  "kind": "invalid_argument",
//	  "exit_code": 4
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Successful execution, all cases passed
//   - ExitCheckFailed (1): One or more check cases failed
//   - ExitConfig (2): Case file missing, unreadable or invalid
//   - ExitAborted (3): Check run stopped by --timeout
//   - ExitInput (4): Invalid user input (bad arguments, rejected operands)
//   - ExitInternal (10): Internal errors (bugs, panics)
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kraklabs/calc/internal/output"
	"github.com/kraklabs/calc/pkg/arith"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitCheckFailed indicates that `calc check` ran and at least one case failed.
	ExitCheckFailed = 1

	// ExitConfig indicates an unreadable or invalid case file.
	ExitConfig = 2

	// ExitAborted indicates a check run stopped by its --timeout.
	ExitAborted = 3

	// ExitInput indicates invalid user input, including operands an
	// operation rejects (InvalidArgument).
	ExitInput = 4

	// ExitInternal indicates internal errors (bugs, unexpected panics).
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10
)

// UserError represents an error with structured context for end users.
type UserError struct {
	// Message describes what went wrong in user-friendly language.
	Message string

	// Cause explains why the error occurred.
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// Kind is the arith error kind when the error originates from an
	// arithmetic operation, KindNone otherwise.
	Kind arith.Kind

	// ExitCode is the exit code that should be used when exiting due to this error.
	ExitCode int

	// Err is the underlying error (optional). Enables errors.Is/As.
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a case file error with exit code ExitConfig.
//
// Example:
//
//	return NewConfigError(
//	    "Cannot load case file",
//	    "open cases.yaml: no such file or directory",
//	    "Pass an existing file or run 'calc check' for the builtin suites",
//	    err,
//	)
func NewConfigError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitConfig,
		Err:      err,
	}
}

// NewInputError creates an input validation error with exit code ExitInput.
// Input errors do not wrap an underlying error.
func NewInputError(msg, cause, fix string) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInput,
	}
}

// NewCheckFailedError reports failed check cases with exit code ExitCheckFailed.
func NewCheckFailedError(failed, total int) *UserError {
	return &UserError{
		Message:  fmt.Sprintf("%d of %d cases failed", failed, total),
		Fix:      "Inspect the [ FAILED ] lines above",
		ExitCode: ExitCheckFailed,
	}
}

// NewAbortedError reports a run cut short by a user-set deadline, with exit
// code ExitAborted.
func NewAbortedError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitAborted,
		Err:      err,
	}
}

// NewInternalError creates an internal error with exit code ExitInternal.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInternal,
		Err:      err,
	}
}

// FromArith translates an error returned by an arith operation into a
// UserError. InvalidArgument errors become input errors; anything else is
// treated as internal. A nil err yields nil.
//
// msg is the user-facing summary, e.g. "Cannot divide 10 by 0".
func FromArith(err error, msg string) *UserError {
	if err == nil {
		return nil
	}

	var ae *arith.ArgumentError
	if stderrors.As(err, &ae) && ae.Kind == arith.InvalidArgument {
		fix := "Check the operands passed to " + ae.Op
		if stderrors.Is(err, arith.ErrDivisionByZero) {
			fix = "Use a non-zero divisor"
		}
		return &UserError{
			Message:  msg,
			Cause:    ae.Msg,
			Fix:      fix,
			Kind:     arith.InvalidArgument,
			ExitCode: ExitInput,
			Err:      err,
		}
	}

	return NewInternalError(msg, err.Error(), "This is a bug. Please report it", err)
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message for terminal display.
//
// Empty Cause or Fix fields are omitted. Color output respects NO_COLOR and
// can be disabled with noColor. The global color.NoColor state is restored
// before returning.
func (e *UserError) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	Kind     string `json:"kind,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	j := ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
	if e.Kind != arith.KindNone {
		j.Kind = e.Kind.String()
	}
	return j
}

// FatalError prints the error and exits with the appropriate code.
//
// UserErrors are rendered with Format, or ToJSON in JSON mode. Other errors
// print a plain (or {"error": ...}) message and exit with ExitInternal. A nil error is a no-op.
func FatalError(err error, jsonOutput bool) {
	if err == nil {
		return
	}

	var ue *UserError
	if stderrors.As(err, &ue) {
		if jsonOutput {
			enc := json.NewEncoder(os.Stderr)
			enc.SetIndent("", "  ")
			// We are about to exit; the exit code still carries the failure.
			_ = enc.Encode(ue.ToJSON())
		} else {
			fmt.Fprint(os.Stderr, ue.Format(false))
		}
		os.Exit(ue.ExitCode)
	}

	if jsonOutput {
		_ = output.JSONErrorTo(os.Stderr, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitInternal)
}
