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

// Package ui provides terminal output helpers for the calc CLI.
//
// Colors respect the --no-color flag and the NO_COLOR environment variable,
// and are disabled automatically when output is not a TTY.
//
// Color usage:
//   - Red: failed cases
//   - Yellow: warnings
//   - Green: passed cases, success
//   - Cyan: debug output
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Pre-configured color instances; they honor color.NoColor when called.
var (
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
)

// Out receives regular output, Err receives diagnostics. Tests replace them.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// verbosity is set from -v flags; Debugf prints only when it is > 0.
var verbosity int

// InitColors configures global color output based on the noColor flag.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// SetVerbosity sets the level consulted by Debugf.
func SetVerbosity(level int) {
	verbosity = level
}

// Warningf prints a formatted yellow warning to Err.
func Warningf(format string, args ...any) {
	_, _ = Yellow.Fprintf(Err, "⚠ "+format+"\n", args...)
}

// Debugf prints a cyan diagnostic line to Err when verbosity > 0.
func Debugf(format string, args ...any) {
	if verbosity <= 0 {
		return
	}
	_, _ = Cyan.Fprintf(Err, "debug: "+format+"\n", args...)
}

// CaseRun prints the gtest-style "[ RUN      ]" marker for a case.
func CaseRun(name string) {
	fmt.Fprintf(Out, "%s %s\n", Green.Sprint("[ RUN      ]"), name)
}

// CaseOK prints the "[       OK ]" marker with the elapsed time.
func CaseOK(name string, d time.Duration) {
	fmt.Fprintf(Out, "%s %s (%s)\n", Green.Sprint("[       OK ]"), name, formatDuration(d))
}

// CaseFailed prints the "[  FAILED  ]" marker followed by the indented detail.
func CaseFailed(name string, d time.Duration, detail string) {
	if detail != "" {
		for _, line := range strings.Split(strings.TrimRight(detail, "\n"), "\n") {
			fmt.Fprintf(Out, "    %s\n", line)
		}
	}
	fmt.Fprintf(Out, "%s %s (%s)\n", Red.Sprint("[  FAILED  ]"), name, formatDuration(d))
}

// Summary prints the closing "[  PASSED  ]" / "[  FAILED  ]" block.
func Summary(total, passed int, failedNames []string) {
	fmt.Fprintf(Out, "%s %d cases ran.\n", Green.Sprint("[==========]"), total)
	fmt.Fprintf(Out, "%s %d cases.\n", Green.Sprint("[  PASSED  ]"), passed)
	if len(failedNames) == 0 {
		return
	}
	fmt.Fprintf(Out, "%s %d cases, listed below:\n", Red.Sprint("[  FAILED  ]"), len(failedNames))
	for _, n := range failedNames {
		fmt.Fprintf(Out, "%s %s\n", Red.Sprint("[  FAILED  ]"), n)
	}
}

// formatDuration renders d in microseconds for sub-millisecond values and
// milliseconds otherwise.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	}
	return fmt.Sprintf("%d ms", d.Milliseconds())
}
