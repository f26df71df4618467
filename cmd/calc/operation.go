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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/calc/internal/errors"
	"github.com/kraklabs/calc/internal/output"
	"github.com/kraklabs/calc/internal/suite"
	"github.com/kraklabs/calc/internal/ui"
)

// verbs maps operations to the phrase used in error messages.
var verbs = map[suite.Op]string{
	suite.OpAdd:       "add",
	suite.OpDivide:    "divide",
	suite.OpRemainder: "take the remainder of",
}

// runOperation executes 'add', 'divide' or 'remainder'.
//
// Examples:
//
//	calc add 2 3
//	calc divide 10 2
//	calc --json divide 10 0
func runOperation(name string, args []string, globals GlobalFlags) error {
	return runOperationTo(os.Stdout, name, args, globals)
}

func runOperationTo(w io.Writer, name string, args []string, globals GlobalFlags) error {
	op := suite.Op(name)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: calc %s <a> <b>

Negative operands may be given directly or after "--".

Options:
`, name)
		fs.PrintDefaults()
	}

	flagArgs, operands := splitOperands(args)
	if err := fs.Parse(flagArgs); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errors.NewInputError(
			fmt.Sprintf("Invalid arguments for '%s'", name),
			err.Error(),
			fmt.Sprintf("Run 'calc %s --help' for usage", name),
		)
	}
	operands = append(operands, fs.Args()...)

	a, b, err := parseOperands(name, operands)
	if err != nil {
		return err
	}
	ui.Debugf("%s(%d, %d)", name, a, b)

	result, opErr := op.Apply(a, b)
	if opErr != nil {
		return errors.FromArith(opErr, fmt.Sprintf("Cannot %s %d by %d", verbs[op], a, b))
	}

	if globals.JSON {
		return output.JSONTo(w, output.NewOperationResult(name, a, b, result))
	}
	_, err = fmt.Fprintln(w, result)
	return err
}

// splitOperands separates integer tokens such as "-7" from flags so pflag
// does not read them as shorthand flags. Everything after "--" is left to
// pflag, which treats it as positional.
func splitOperands(args []string) (flagArgs, operands []string) {
	for i, arg := range args {
		if arg == "--" {
			flagArgs = append(flagArgs, args[i:]...)
			return flagArgs, operands
		}
		if strings.HasPrefix(arg, "-") {
			if _, err := strconv.Atoi(arg); err == nil {
				operands = append(operands, arg)
				continue
			}
		}
		if !strings.HasPrefix(arg, "-") {
			operands = append(operands, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
	}
	return flagArgs, operands
}

func parseOperands(name string, operands []string) (int, int, error) {
	if len(operands) != 2 {
		return 0, 0, errors.NewInputError(
			fmt.Sprintf("'%s' needs exactly two operands", name),
			fmt.Sprintf("Got %d: %q", len(operands), operands),
			fmt.Sprintf("Example: calc %s 10 2", name),
		)
	}

	vals := make([]int, 2)
	for i, s := range operands {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.NewInputError(
				fmt.Sprintf("Operand %q is not an integer", s),
				err.Error(),
				"Pass base-10 integers within the range of int",
			)
		}
		vals[i] = v
	}
	return vals[0], vals[1], nil
}
