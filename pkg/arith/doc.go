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

// Package arith provides the integer operations exercised by calc.
//
// Every function is pure: results depend only on the arguments, nothing is
// shared between calls, and the functions are safe to call from any number of
// goroutines.
//
// # Errors
//
// Operations that can reject their input return an error instead of panicking.
// Rejected input is reported as an *ArgumentError of kind InvalidArgument, which
// matches ErrInvalidArgument under errors.Is:
//
//	q, err := arith.Divide(10, 0)
//	if errors.Is(err, arith.ErrInvalidArgument) {
//	    // q is 0 and carries no meaning
//	}
package arith
