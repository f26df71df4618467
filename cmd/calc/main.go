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
// Package main implements the calc CLI.
//
// Usage:
//
//	calc add <a> <b>              Print a + b
//	calc divide <a> <b>           Print a / b (truncated toward zero)
//	calc remainder <a> <b>        Print a % b
//	calc check [cases.yaml]       Run assertion cases
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/calc/internal/errors"
	"github.com/kraklabs/calc/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GlobalFlags holds flags accepted before the command name.
type GlobalFlags struct {
	JSON    bool
	NoColor bool
	Quiet   bool
	Verbose int
}

func main() {
	var (
		globals     GlobalFlags
		showVersion bool
	)

	flag.CommandLine.SetInterspersed(false)
	flag.BoolVar(&showVersion, "version", false, "Show version and exit")
	flag.BoolVar(&globals.JSON, "json", false, "Output as JSON")
	flag.BoolVar(&globals.NoColor, "no-color", false, "Disable colored output")
	flag.BoolVarP(&globals.Quiet, "quiet", "q", false, "Suppress progress output")
	flag.CountVarP(&globals.Verbose, "verbose", "v", "Increase verbosity (-v, -vv)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `calc - integer arithmetic with checked expectations

Usage:
  calc [global options] <command> [options]

Commands:
  add        Print the sum of two integers
  divide     Print the truncated quotient of two integers
  remainder  Print the truncated remainder of two integers
  check      Run assertion cases (builtin suites or a YAML case file)

Global Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  calc add 2 3                  Prints 5
  calc divide -- -7 2           Prints -3
  calc --json divide 10 0       Reports an invalid_argument error, exit code 4
  calc check                    Runs the AddTest and DivideTest suites
  calc -v check cases.yaml      Runs a case file, printing every case

Environment Variables:
  CALC_CASES   Default case file for 'calc check'
  NO_COLOR     Disable colored output
`)
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("calc version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(errors.ExitSuccess)
	}

	// JSON output must not be interleaved with progress bars.
	if globals.JSON {
		globals.Quiet = true
	}
	ui.InitColors(globals.NoColor || os.Getenv("NO_COLOR") != "")
	ui.SetVerbosity(globals.Verbose)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(errors.ExitInput)
	}

	command, cmdArgs := args[0], args[1:]
	ui.Debugf("command %q args %q", command, cmdArgs)

	var err error
	switch command {
	case "add", "divide", "remainder":
		err = runOperation(command, cmdArgs, globals)
	case "check":
		err = runCheck(cmdArgs, globals)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(errors.ExitInput)
	}

	if err != nil {
		errors.FatalError(err, globals.JSON)
	}
}
