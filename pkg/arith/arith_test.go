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

package arith

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"positive numbers", 2, 3, 5},
		{"negative numbers", -2, -3, -5},
		{"mixed numbers", -2, 3, 1},
		{"zero identity", 0, 7, 7},
		{"wraps on overflow", math.MaxInt, 1, math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
		})
	}
}

func TestAdd_Commutative(t *testing.T) {
	f := func(a, b int) bool {
		return Add(a, b) == Add(b, a)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"valid division", 10, 2, 5},
		{"truncates positive", 7, 2, 3},
		{"truncates toward zero", -7, 2, -3},
		{"negative divisor", 7, -2, -3},
		{"both negative", -7, -2, 3},
		{"zero dividend", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivide_ByZero(t *testing.T) {
	got, err := Divide(10, 0)
	require.Error(t, err)
	assert.Zero(t, got)

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, InvalidArgument, KindOf(err))
	assert.Equal(t, "Division by zero", err.Error())

	var ae *ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "divide", ae.Op)
}

func TestRemainder(t *testing.T) {
	got, err := Remainder(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	_, err = Remainder(1, 0)
	require.ErrorIs(t, err, ErrDivisionByZero)

	var ae *ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "remainder", ae.Op)
}

func TestQuotientRemainderIdentity(t *testing.T) {
	f := func(a, b int) bool {
		if b == 0 {
			return true
		}
		q, err := Divide(a, b)
		if err != nil {
			return false
		}
		r, err := Remainder(a, b)
		if err != nil {
			return false
		}
		return q*b+r == a
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestPurity(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, 5, Add(2, 3))

		q, err := Divide(10, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, q)

		_, err = Divide(10, 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "invalid_argument", InvalidArgument.String())
	assert.Equal(t, "none", KindNone.String())

	k, ok := ParseKind("invalid_argument")
	assert.True(t, ok)
	assert.Equal(t, InvalidArgument, k)

	_, ok = ParseKind("out_of_range")
	assert.False(t, ok)
}

func TestKindOf(t *testing.T) {
	_, divErr := Divide(1, 0)

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"foreign error", errors.New("boom"), KindNone},
		{"division by zero", divErr, InvalidArgument},
		{"wrapped", fmt.Errorf("evaluating case: %w", divErr), InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestArgumentError_Is(t *testing.T) {
	err := &ArgumentError{Op: "divide", Kind: InvalidArgument, Msg: "Division by zero"}

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.True(t, errors.Is(err, &ArgumentError{Kind: InvalidArgument}))
	assert.True(t, errors.Is(err, &ArgumentError{Op: "divide", Kind: InvalidArgument}))
	assert.False(t, errors.Is(err, &ArgumentError{Op: "remainder", Kind: InvalidArgument}))
	assert.False(t, errors.Is(err, &ArgumentError{Kind: InvalidArgument, Msg: "other"}))
	assert.False(t, errors.Is(err, errors.New("invalid argument")))
}
