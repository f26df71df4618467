// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output provides JSON output for the calc CLI.
//
// Human-readable output lives in the ui package and errors in the errors
// package; this package covers --json mode.
//
// # Usage
//
//	res := output.NewOperationResult("divide", 10, 2, 5)
//	if err := output.JSON(res); err != nil {
//	    errors.FatalError(err, true)
//	}
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OperationResult is the --json form of a single `calc add` or `calc divide`.
type OperationResult struct {
	Op     string `json:"op"`
	A      int    `json:"a"`
	B      int    `json:"b"`
	Result int    `json:"result"`
}

// NewOperationResult builds an OperationResult.
func NewOperationResult(op string, a, b, result int) *OperationResult {
	return &OperationResult{Op: op, A: a, B: b, Result: result}
}

// JSON writes data as pretty-printed JSON to stdout.
func JSON(data any) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as JSON with 2-space indentation to w.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// JSONLineTo writes data as a single line of JSON to w.
// `calc check --json --stream` emits one line per evaluated case this way.
func JSONLineTo(w io.Writer, data any) error {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// ErrorJSON is the JSON form of an error that is not a UserError.
type ErrorJSON struct {
	Error string `json:"error"`
}

// JSONErrorTo writes err as {"error": "..."} to w.
func JSONErrorTo(w io.Writer, err error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(ErrorJSON{Error: err.Error()}); encErr != nil {
		return fmt.Errorf("JSON error encoding failed: %w", encErr)
	}
	return nil
}
