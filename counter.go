/*
* Value counter module
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

import "math"

// CountValues counts the occurrences of each distinct value.
func CountValues[T comparable](values []T) map[T]int {
	counter := make(map[T]int)
	for _, v := range values {
		counter[v]++
	}
	return counter
}

// MergeCounters sums two counters key-wise into a new counter. The inputs
// are left untouched.
func MergeCounters[T comparable](counter1 map[T]int, counter2 map[T]int) map[T]int {
	result := map[T]int{}
	for k, v := range counter1 {
		result[k] += v
	}
	for k, v := range counter2 {
		result[k] += v
	}
	return result
}

// EntropyFromCounter calculates the entropy of an occurrence counter over
// sampleSize observations, in bits. Zero counts contribute no information.
func EntropyFromCounter[T comparable](counter map[T]int, sampleSize int) (float64, error) {
	if sampleSize < 1 || len(counter) == 0 {
		return 0, ErrEmptyDistribution
	}

	var hx float64
	for _, count := range counter {
		if count < 0 {
			return 0, ErrNegativeValue
		}
		px := float64(count) / float64(sampleSize)
		if px > 0 {
			hx -= px * math.Log2(px)
		}
	}
	return hx, nil
}
