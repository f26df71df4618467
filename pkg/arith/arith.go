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

package arith

// Add returns the sum of a and b.
//
// Overflow wraps around following Go's int arithmetic.
func Add(a, b int) int {
	return a + b
}

// Divide returns the quotient of a and b, truncated toward zero.
//
// A zero divisor yields an InvalidArgument error matching ErrDivisionByZero,
// and the returned quotient is 0.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, divisionByZero("divide")
	}
	return a / b, nil
}

// Remainder returns a % b, carrying the sign of the dividend.
// For non-zero b, Divide(a, b)*b + Remainder(a, b) == a.
func Remainder(a, b int) (int, error) {
	if b == 0 {
		return 0, divisionByZero("remainder")
	}
	return a % b, nil
}
