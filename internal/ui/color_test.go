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

package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
)

// capture redirects Out and Err to buffers and disables colors for the test.
func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()

	origNoColor, origOut, origErr, origVerbosity := color.NoColor, Out, Err, verbosity
	t.Cleanup(func() {
		color.NoColor, Out, Err, verbosity = origNoColor, origOut, origErr, origVerbosity
	})

	color.NoColor = true
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	Out, Err = out, errOut
	return out, errOut
}

func TestInitColors(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	InitColors(true)
	if !color.NoColor {
		t.Error("InitColors(true) should disable colors")
	}
	InitColors(false)
	if color.NoColor {
		t.Error("InitColors(false) should enable colors")
	}
}

func TestDebugf(t *testing.T) {
	_, errOut := capture(t)

	Debugf("hidden %d", 1)
	if errOut.Len() != 0 {
		t.Errorf("Debugf wrote output at verbosity 0: %q", errOut.String())
	}

	SetVerbosity(1)
	Debugf("shown %d", 2)
	if got := errOut.String(); got != "debug: shown 2\n" {
		t.Errorf("Debugf() = %q", got)
	}
}

func TestMessages(t *testing.T) {
	out, errOut := capture(t)

	Warningf("careful %s", "now")

	if out.Len() != 0 {
		t.Errorf("Warningf wrote to stdout: %q", out.String())
	}
	if got := errOut.String(); got != "⚠ careful now\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestCaseMarkers(t *testing.T) {
	out, _ := capture(t)

	CaseRun("AddTest.HandlesPositiveNumbers")
	CaseOK("AddTest.HandlesPositiveNumbers", 3*time.Microsecond)
	CaseFailed("AddTest.Broken", 2*time.Millisecond, "line one\nline two\n")
	Summary(2, 1, []string{"AddTest.Broken"})

	want := "[ RUN      ] AddTest.HandlesPositiveNumbers\n" +
		"[       OK ] AddTest.HandlesPositiveNumbers (3 µs)\n" +
		"    line one\n" +
		"    line two\n" +
		"[  FAILED  ] AddTest.Broken (2 ms)\n" +
		"[==========] 2 cases ran.\n" +
		"[  PASSED  ] 1 cases.\n" +
		"[  FAILED  ] 1 cases, listed below:\n" +
		"[  FAILED  ] AddTest.Broken\n"
	if got := out.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
