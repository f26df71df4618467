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

import "errors"

// Kind classifies errors returned by this package.
type Kind int

const (
	// KindNone is reported for nil errors and errors from other packages.
	KindNone Kind = iota

	// InvalidArgument marks an argument that violates an operation's
	// precondition, such as a zero divisor.
	InvalidArgument
)

// String returns the snake_case name used in case files and JSON output.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	default:
		return "none"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "invalid_argument":
		return InvalidArgument, true
	case "none", "":
		return KindNone, true
	}
	return KindNone, false
}

// ArgumentError reports an operation that rejected one of its arguments.
type ArgumentError struct {
	// Op is the name of the rejecting operation ("divide", "remainder").
	Op string

	// Kind is always InvalidArgument for errors created by this package.
	Kind Kind

	// Msg is the human-readable description.
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

// Is reports whether target is ErrInvalidArgument or an *ArgumentError with
// the same kind.
func (e *ArgumentError) Is(target error) bool {
	if target == ErrInvalidArgument {
		return e.Kind == InvalidArgument
	}
	t, ok := target.(*ArgumentError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Op == "" || t.Op == e.Op) && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	// ErrInvalidArgument matches every InvalidArgument error under errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero matches the error Divide and Remainder return for a
	// zero divisor, whichever operation produced it.
	ErrDivisionByZero error = &ArgumentError{Kind: InvalidArgument, Msg: divisionByZeroMsg}
)

const divisionByZeroMsg = "Division by zero"

func divisionByZero(op string) *ArgumentError {
	return &ArgumentError{Op: op, Kind: InvalidArgument, Msg: divisionByZeroMsg}
}

// KindOf returns the Kind of err, looking through wrapped errors.
func KindOf(err error) Kind {
	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindNone
}
