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
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/calc/internal/errors"
	"github.com/kraklabs/calc/internal/output"
	"github.com/kraklabs/calc/internal/suite"
	"github.com/kraklabs/calc/internal/ui"
)

// casesEnv names the environment variable holding the default case file.
const casesEnv = "CALC_CASES"

// runCheck executes the 'check' CLI command, evaluating assertion cases.
//
// Without a file argument it runs the file named by CALC_CASES, or the builtin
// AddTest and DivideTest suites when that is unset.
//
// Flags:
//   - --builtin: Ignore CALC_CASES and run the builtin suites
//   - --stream: With --json, emit one JSON line per case
//   - --metrics: Print calc_* Prometheus metrics after the run (to stderr with --json)
//   - --timeout: Abort the run after this long (default: 30s)
//
// Examples:
//
//	calc check
//	calc -v check testdata/cases.yaml
//	calc --json check --stream cases.yaml
//
// All regular output, human or JSON, goes to ui.Out.
func runCheck(args []string, globals GlobalFlags) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	builtin := fs.Bool("builtin", false, "Ignore "+casesEnv+" and run the builtin suites")
	stream := fs.Bool("stream", false, "With --json, emit one JSON line per case instead of a final report")
	metrics := fs.Bool("metrics", false, "Print Prometheus metrics after the run")
	timeout := fs.Duration("timeout", 30*time.Second, "Abort the run after this long")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: calc check [options] [cases.yaml]

Runs assertion cases and reports each as OK or FAILED.
Exits with code 1 when any case fails.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errors.NewInputError("Invalid arguments for 'check'", err.Error(), "Run 'calc check --help' for usage")
	}
	if fs.NArg() > 1 {
		return errors.NewInputError(
			"'check' takes at most one case file",
			fmt.Sprintf("Got %d: %q", fs.NArg(), fs.Args()),
			"Merge the suites into a single file",
		)
	}

	if *stream && !globals.JSON {
		ui.Warningf("--stream has no effect without --json")
	}

	path := fs.Arg(0)
	if path == "" && !*builtin {
		path = os.Getenv(casesEnv)
	}

	suites, err := loadSuites(path)
	if err != nil {
		return err
	}
	total := suite.Count(suites)

	human := !globals.JSON
	verbose := globals.Verbose > 0
	bar := NewProgressBar(NewProgressConfig(globals), int64(total), "Checking")

	if human {
		fmt.Fprintf(ui.Out, "%s Running %d cases from %d suites.\n", ui.Green.Sprint("[==========]"), total, len(suites))
	}

	runner := suite.NewRunner()
	if human && verbose {
		runner.OnStart = func(s string, c suite.Case) { ui.CaseRun(s + "." + c.Name) }
	}

	var streamErr error
	runner.OnResult = func(res suite.Result) {
		if bar != nil {
			_ = bar.Add(1)
		}
		switch {
		case globals.JSON && *stream:
			if err := output.JSONLineTo(ui.Out, res); err != nil && streamErr == nil {
				streamErr = err
			}
		case human && !res.Passed:
			ui.CaseFailed(res.FullName(), res.Duration, res.Message)
		case human && verbose:
			ui.CaseOK(res.FullName(), res.Duration)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	report, runErr := runner.Run(ctx, suites)
	if bar != nil {
		_ = bar.Finish()
	}
	if runErr != nil {
		cause := fmt.Sprintf("Stopped after %d of %d cases", report.Total, total)
		if stderrors.Is(runErr, context.DeadlineExceeded) {
			return errors.NewAbortedError("Check run timed out", cause, "Increase --timeout", runErr)
		}
		return errors.NewInternalError("Check run aborted", cause, "", runErr)
	}
	if streamErr != nil {
		return streamErr
	}

	switch {
	case globals.JSON && !*stream:
		if err := output.JSONTo(ui.Out, report); err != nil {
			return err
		}
	case human:
		failed := make([]string, 0, report.Failed)
		for _, res := range report.FailedResults() {
			failed = append(failed, res.FullName())
		}
		ui.Summary(report.Total, report.Passed, failed)
	}

	if *metrics {
		// Keep stdout a single JSON document in --json mode.
		mw := ui.Out
		if globals.JSON {
			mw = ui.Err
		}
		if err := writeMetrics(mw, prometheus.DefaultGatherer); err != nil {
			return errors.NewInternalError("Cannot write metrics", err.Error(), "", err)
		}
	}

	if !report.OK() {
		return errors.NewCheckFailedError(report.Failed, report.Total)
	}
	return nil
}

// loadSuites reads path, or returns the builtin suites when path is empty.
func loadSuites(path string) ([]suite.Suite, error) {
	if path == "" {
		ui.Debugf("using builtin suites")
		return suite.Builtin(), nil
	}

	ui.Debugf("loading case file %s", path)
	suites, err := suite.LoadFile(path)
	if err == nil {
		return suites, nil
	}

	if stderrors.Is(err, suite.ErrInvalidFile) {
		return nil, errors.NewConfigError(
			"Invalid case file",
			err.Error(),
			"Each case needs a name, an op (add, divide, remainder) and exactly one of want or want_error",
			err,
		)
	}
	return nil, errors.NewConfigError(
		"Cannot load case file",
		err.Error(),
		"Pass an existing file, or unset "+casesEnv+" to run the builtin suites",
		err,
	)
}

// writeMetrics writes the calc_* metric families in Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "calc_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
