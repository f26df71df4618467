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

package suite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/calc/pkg/arith"
)

// Op names an arith operation a case can exercise.
type Op string

const (
	OpAdd       Op = "add"
	OpDivide    Op = "divide"
	OpRemainder Op = "remainder"
)

// Ops lists the supported operations in display order.
var Ops = []Op{OpAdd, OpDivide, OpRemainder}

// Valid reports whether op is one of Ops.
func (op Op) Valid() bool {
	switch op {
	case OpAdd, OpDivide, OpRemainder:
		return true
	}
	return false
}

// Apply runs op on a and b.
func (op Op) Apply(a, b int) (int, error) {
	switch op {
	case OpAdd:
		return arith.Add(a, b), nil
	case OpDivide:
		return arith.Divide(a, b)
	case OpRemainder:
		return arith.Remainder(a, b)
	}
	return 0, fmt.Errorf("unknown operation %q", string(op))
}

// Case is a single assertion: Op(A, B) either equals Want or fails with an
// error of kind WantError. Exactly one of the two is set.
type Case struct {
	Name      string `yaml:"name" json:"name"`
	Op        Op     `yaml:"op" json:"op"`
	A         int    `yaml:"a" json:"a"`
	B         int    `yaml:"b" json:"b"`
	Want      *int   `yaml:"want,omitempty" json:"want,omitempty"`
	WantError string `yaml:"want_error,omitempty" json:"want_error,omitempty"`
}

// Suite is a named group of cases.
type Suite struct {
	Name  string `yaml:"name" json:"name"`
	Cases []Case `yaml:"cases" json:"cases"`
}

// File is the top-level structure of a case file.
type File struct {
	Suites []Suite `yaml:"suites" json:"suites"`
}

// ErrInvalidFile is wrapped by every validation error returned from Parse,
// LoadFile and Validate.
var ErrInvalidFile = errors.New("invalid case file")

// Expect returns a Case expecting op(a, b) == want.
func Expect(name string, op Op, a, b, want int) Case {
	return Case{Name: name, Op: op, A: a, B: b, Want: &want}
}

// ExpectError returns a Case expecting op(a, b) to fail with kind.
func ExpectError(name string, op Op, a, b int, kind arith.Kind) Case {
	return Case{Name: name, Op: op, A: a, B: b, WantError: kind.String()}
}

// Builtin returns the AddTest and DivideTest suites.
func Builtin() []Suite {
	return []Suite{
		{
			Name: "AddTest",
			Cases: []Case{
				Expect("HandlesPositiveNumbers", OpAdd, 2, 3, 5),
				Expect("HandlesNegativeNumbers", OpAdd, -2, -3, -5),
				Expect("HandlesMixedNumbers", OpAdd, -2, 3, 1),
			},
		},
		{
			Name: "DivideTest",
			Cases: []Case{
				ExpectError("HandlesDivisionByZero", OpDivide, 10, 0, arith.InvalidArgument),
				Expect("HandlesValidDivision", OpDivide, 10, 2, 5),
			},
		},
	}
}

// LoadFile reads and validates a YAML case file.
func LoadFile(path string) ([]Suite, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	if limit := MaxFileBytes(); info.Size() > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrInvalidFile, path, info.Size(), limit)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML case file content. Unknown fields and
// additional "---" documents are rejected so that no expectation is dropped
// silently.
func Parse(data []byte) ([]Suite, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: multiple YAML documents, put all suites in one document", ErrInvalidFile)
	}
	if err := Validate(f.Suites); err != nil {
		return nil, err
	}
	return f.Suites, nil
}

// Validate checks suite and case invariants.
func Validate(suites []Suite) error {
	if len(suites) == 0 {
		return fmt.Errorf("%w: no suites defined", ErrInvalidFile)
	}

	seenSuites := make(map[string]bool, len(suites))
	for i, s := range suites {
		if s.Name == "" {
			return fmt.Errorf("%w: suite #%d has no name", ErrInvalidFile, i+1)
		}
		if seenSuites[s.Name] {
			return fmt.Errorf("%w: duplicate suite %q", ErrInvalidFile, s.Name)
		}
		seenSuites[s.Name] = true

		if len(s.Cases) == 0 {
			return fmt.Errorf("%w: suite %q has no cases", ErrInvalidFile, s.Name)
		}

		seenCases := make(map[string]bool, len(s.Cases))
		for j, c := range s.Cases {
			if c.Name == "" {
				return fmt.Errorf("%w: %s case #%d has no name", ErrInvalidFile, s.Name, j+1)
			}
			if seenCases[c.Name] {
				return fmt.Errorf("%w: duplicate case %s.%s", ErrInvalidFile, s.Name, c.Name)
			}
			seenCases[c.Name] = true

			if err := validateCase(c); err != nil {
				return fmt.Errorf("%w: %s.%s: %v", ErrInvalidFile, s.Name, c.Name, err)
			}
		}
	}
	return nil
}

func validateCase(c Case) error {
	if !c.Op.Valid() {
		return fmt.Errorf("unknown op %q", string(c.Op))
	}
	switch {
	case c.Want == nil && c.WantError == "":
		return errors.New("one of want or want_error is required")
	case c.Want != nil && c.WantError != "":
		return errors.New("want and want_error are mutually exclusive")
	}
	if c.WantError != "" {
		k, ok := arith.ParseKind(c.WantError)
		if !ok || k == arith.KindNone {
			return fmt.Errorf("unknown error kind %q", c.WantError)
		}
	}
	return nil
}

// Count returns the total number of cases across suites.
func Count(suites []Suite) int {
	n := 0
	for _, s := range suites {
		n += len(s.Cases)
	}
	return n
}
