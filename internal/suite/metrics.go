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
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsSuite holds Prometheus metrics for case evaluation.
type metricsSuite struct {
	once sync.Once

	evaluated *prometheus.CounterVec
	passed    *prometheus.CounterVec
	failed    *prometheus.CounterVec
	runs      prometheus.Counter

	caseDuration prometheus.Histogram
	runDuration  prometheus.Histogram
}

var suiteMetrics metricsSuite

func (m *metricsSuite) init() {
	m.once.Do(func() {
		m.evaluated = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "calc_cases_evaluated_total", Help: "Cases evaluated, by operation"}, []string{"op"})
		m.passed = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "calc_cases_passed_total", Help: "Cases whose expectation held, by operation"}, []string{"op"})
		m.failed = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "calc_cases_failed_total", Help: "Cases whose expectation did not hold, by operation"}, []string{"op"})
		m.runs = prometheus.NewCounter(prometheus.CounterOpts{Name: "calc_runs_total", Help: "Completed suite runs"})

		m.caseDuration = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "calc_case_seconds", Help: "Duration of a single case evaluation", Buckets: []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 0.01}})
		m.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "calc_run_seconds", Help: "Duration of a full run", Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1}})

		prometheus.MustRegister(
			m.evaluated, m.passed, m.failed, m.runs,
			m.caseDuration, m.runDuration,
		)
	})
}

func recordCase(op Op, passed bool, d time.Duration) {
	suiteMetrics.init()
	suiteMetrics.evaluated.WithLabelValues(string(op)).Inc()
	if passed {
		suiteMetrics.passed.WithLabelValues(string(op)).Inc()
	} else {
		suiteMetrics.failed.WithLabelValues(string(op)).Inc()
	}
	suiteMetrics.caseDuration.Observe(d.Seconds())
}

func recordRun(d time.Duration) {
	suiteMetrics.init()
	suiteMetrics.runs.Inc()
	suiteMetrics.runDuration.Observe(d.Seconds())
}
