// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/calc/internal/errors"
	"github.com/kraklabs/calc/pkg/arith"
)

func TestSplitOperands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFlags    []string
		wantOperands []string
	}{
		{"plain", []string{"2", "3"}, nil, []string{"2", "3"}},
		{"negative operands", []string{"-2", "-3"}, nil, []string{"-2", "-3"}},
		{"flag kept", []string{"--help", "1"}, []string{"--help"}, []string{"1"}},
		{"double dash", []string{"1", "--", "-x"}, []string{"--", "-x"}, []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, operands := splitOperands(tt.args)
			assert.Equal(t, tt.wantFlags, flags)
			assert.Equal(t, tt.wantOperands, operands)
		})
	}
}

func TestRunOperation(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args []string
		want string
	}{
		{"add positive", "add", []string{"2", "3"}, "5\n"},
		{"add negative", "add", []string{"-2", "-3"}, "-5\n"},
		{"add mixed", "add", []string{"-2", "3"}, "1\n"},
		{"divide", "divide", []string{"10", "2"}, "5\n"},
		{"divide truncates", "divide", []string{"--", "-7", "2"}, "-3\n"},
		{"remainder", "remainder", []string{"-7", "2"}, "-1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runOperationTo(&buf, tt.op, tt.args, GlobalFlags{}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunOperation_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runOperationTo(&buf, "divide", []string{"10", "2"}, GlobalFlags{JSON: true}))

	assert.JSONEq(t, `{"op":"divide","a":10,"b":2,"result":5}`, buf.String())
}

func TestRunOperation_DivisionByZero(t *testing.T) {
	var buf bytes.Buffer
	err := runOperationTo(&buf, "divide", []string{"10", "0"}, GlobalFlags{})
	require.Error(t, err)
	assert.Empty(t, buf.String())

	var ue *errors.UserError
	require.True(t, stderrors.As(err, &ue))
	assert.Equal(t, errors.ExitInput, ue.ExitCode)
	assert.Equal(t, "Cannot divide 10 by 0", ue.Message)
	assert.Equal(t, "Division by zero", ue.Cause)
	assert.ErrorIs(t, err, arith.ErrInvalidArgument)
}

func TestRunOperation_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing operand", []string{"1"}, "'add' needs exactly two operands"},
		{"too many operands", []string{"1", "2", "3"}, "'add' needs exactly two operands"},
		{"not an integer", []string{"1", "two"}, `Operand "two" is not an integer`},
		{"unknown flag", []string{"--fast", "1", "2"}, "Invalid arguments for 'add'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runOperationTo(&bytes.Buffer{}, "add", tt.args, GlobalFlags{})

			var ue *errors.UserError
			require.True(t, stderrors.As(err, &ue), "want UserError, got %v", err)
			assert.Equal(t, errors.ExitInput, ue.ExitCode)
			assert.Equal(t, tt.wantMsg, ue.Message)
		})
	}
}
