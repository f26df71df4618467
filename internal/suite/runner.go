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
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/kraklabs/calc/pkg/arith"
)

// Result is the outcome of evaluating one case.
type Result struct {
	Suite    string        `json:"suite"`
	Case     string        `json:"case"`
	Op       Op            `json:"op"`
	A        int           `json:"a"`
	B        int           `json:"b"`
	Got      *int          `json:"got,omitempty"`
	Err      string        `json:"error,omitempty"`
	ErrKind  string        `json:"error_kind,omitempty"`
	Passed   bool          `json:"passed"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// FullName returns "Suite.Case".
func (r Result) FullName() string {
	return r.Suite + "." + r.Case
}

// Report aggregates the results of a run.
type Report struct {
	Results  []Result      `json:"results"`
	Total    int           `json:"total"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration_ns"`
}

// OK reports whether every evaluated case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// FailedResults returns the results that did not pass, in run order.
func (r *Report) FailedResults() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// Runner evaluates suites case by case.
type Runner struct {
	// OnStart, if set, is called before each case is evaluated.
	OnStart func(suite string, c Case)

	// OnResult, if set, is called after each case is evaluated.
	OnResult func(Result)

	now func() time.Time
}

// NewRunner returns a Runner with no callbacks.
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// Run evaluates every case of suites in order.
//
// Cancellation is checked between cases; on cancellation the partial report
// is returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context, suites []Suite) (*Report, error) {
	now := r.now
	if now == nil {
		now = time.Now
	}

	start := now()
	report := &Report{Results: make([]Result, 0, Count(suites))}

	for _, s := range suites {
		for _, c := range s.Cases {
			if err := ctx.Err(); err != nil {
				report.Duration = now().Sub(start)
				return report, err
			}

			if r.OnStart != nil {
				r.OnStart(s.Name, c)
			}

			caseStart := now()
			res := Evaluate(c)
			res.Suite = s.Name
			res.Duration = now().Sub(caseStart)

			recordCase(c.Op, res.Passed, res.Duration)

			report.Results = append(report.Results, res)
			report.Total++
			if res.Passed {
				report.Passed++
			} else {
				report.Failed++
			}

			if r.OnResult != nil {
				r.OnResult(res)
			}
		}
	}

	report.Duration = now().Sub(start)
	recordRun(report.Duration)
	return report, nil
}

// Evaluate runs a single case and compares the outcome with its expectation.
// The returned Result has no Suite or Duration set.
func Evaluate(c Case) Result {
	res := Result{Case: c.Name, Op: c.Op, A: c.A, B: c.B}

	got, err := c.Op.Apply(c.A, c.B)
	if err != nil {
		res.Err = err.Error()
		if k := arith.KindOf(err); k != arith.KindNone {
			res.ErrKind = k.String()
		}
	} else {
		res.Got = &got
	}

	res.Passed = matches(c, res)
	if !res.Passed {
		res.Message = mismatch(c, res)
	}
	return res
}

func matches(c Case, res Result) bool {
	if c.WantError != "" {
		return res.ErrKind == c.WantError
	}
	return res.Got != nil && c.Want != nil && *res.Got == *c.Want
}

// mismatch renders expected and actual outcomes as a unified diff.
func mismatch(c Case, res Result) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(describeExpected(c)),
		B:        difflib.SplitLines(describeActual(res)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil || text == "" {
		return fmt.Sprintf("expected %s, got %s", describeExpected(c), describeActual(res))
	}
	return fmt.Sprintf("%s(%d, %d)\n%s", c.Op, c.A, c.B, text)
}

func describeExpected(c Case) string {
	if c.WantError != "" {
		return "error: " + c.WantError + "\n"
	}
	if c.Want == nil {
		return "value: <none>\n"
	}
	return "value: " + strconv.Itoa(*c.Want) + "\n"
}

func describeActual(res Result) string {
	if res.Err != "" {
		kind := res.ErrKind
		if kind == "" {
			kind = "unknown"
		}
		return "error: " + kind + " (" + res.Err + ")\n"
	}
	if res.Got == nil {
		return "value: <none>\n"
	}
	return "value: " + strconv.Itoa(*res.Got) + "\n"
}
