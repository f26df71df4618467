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
	"os"
	"strconv"
)

// DefaultMaxFileBytes is the largest case file LoadFile accepts.
const DefaultMaxFileBytes = 1 << 20 // 1 MiB

// MaxFileBytes returns the effective case file size limit.
// Controlled via env CALC_MAX_CASE_FILE_BYTES; falls back to DefaultMaxFileBytes.
func MaxFileBytes() int64 {
	if v := os.Getenv("CALC_MAX_CASE_FILE_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxFileBytes
}
