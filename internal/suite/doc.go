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

// Package suite runs assertion cases against the arith operations.
//
// A case names an operation, two operands and exactly one expectation: either
// the value the operation must return or the error kind it must fail with.
// Cases are grouped into named suites, the way gtest groups TEST(Suite, Case).
//
// # Case Files
//
// Suites can be loaded from YAML:
//
//	suites:
//	  - name: DivideTest
//	    cases:
//	      - name: HandlesValidDivision
//	        op: divide
//	        a: 10
//	        b: 2
//	        want: 5
//	      - name: HandlesDivisionByZero
//	        op: divide
//	        a: 10
//	        b: 0
//	        want_error: invalid_argument
//
// Builtin returns the AddTest and DivideTest suites without reading a file.
//
// # Running
//
//	runner := suite.NewRunner()
//	report, err := runner.Run(ctx, suites)
//	if report.Failed > 0 {
//	    // at least one expectation did not hold
//	}
//
// Every run updates the package's Prometheus metrics on the default registry.
package suite
