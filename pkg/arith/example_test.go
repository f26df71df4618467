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

package arith_test

import (
	"errors"
	"fmt"

	"github.com/kraklabs/calc/pkg/arith"
)

func ExampleAdd() {
	fmt.Println(arith.Add(-2, 3))
	// Output: 1
}

// ExampleDivide shows how a zero divisor is reported to the caller.
func ExampleDivide() {
	q, err := arith.Divide(10, 2)
	fmt.Println(q, err)

	_, err = arith.Divide(10, 0)
	fmt.Println(err, errors.Is(err, arith.ErrInvalidArgument))
	// Output:
	// 5 <nil>
	// Division by zero true
}
