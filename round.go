/*
* Significant figure rounding module
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package entropy

import (
	"math"

	"github.com/montanaflynn/stats"
)

// RoundSF rounds num to the specified number of significant figures.
// Zero rounds to zero; NaN and infinities are returned unchanged.
func RoundSF(num float64, sigfigs int) float64 {
	if num == 0 {
		return 0
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return num
	}

	places := sigfigs - 1 - int(math.Floor(math.Log10(math.Abs(num))))
	rounded, err := stats.Round(num, places)
	if err != nil {
		return num
	}
	return rounded
}
