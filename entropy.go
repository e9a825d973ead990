/*
* Shannon entropy module
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

// Package entropy computes Shannon entropy and related
// information-theoretic quantities, in bits.
package entropy

import (
	"math"

	"github.com/montanaflynn/stats"
)

// sumsToOne reports whether total equals 1.0 after rounding to two decimal
// places.
func sumsToOne(total float64) bool {
	rounded, err := stats.Round(total, 2)
	if err != nil {
		return false
	}
	return rounded == 1.0
}

func hasNegative(distribution []float64) bool {
	minimum, err := stats.Min(distribution)
	if err != nil {
		return false
	}
	return minimum < 0
}

// EntropyFromProbabilityDistribution calculates the entropy of the passed
// probabilities, in bits. The probabilities must be non-negative and sum to
// 1.0 to two decimal places.
func EntropyFromProbabilityDistribution(distribution []float64) (float64, error) {
	total, err := stats.Sum(distribution)
	if err != nil {
		return 0, ErrEmptyDistribution
	}
	if !sumsToOne(total) {
		return 0, ErrNotNormalized
	}
	if hasNegative(distribution) {
		return 0, ErrNegativeValue
	}

	var hx float64
	for _, px := range distribution {
		// zero probabilities contribute no information
		if px > 0 {
			hx -= px * math.Log2(px)
		}
	}
	return hx, nil
}

// EntropyFromFrequencyDistribution calculates the entropy of the passed
// frequencies, in bits. The frequencies are normalized by their total and
// need not sum to anything in particular.
func EntropyFromFrequencyDistribution(frequencies []float64) (float64, error) {
	totalFrequency, err := stats.Sum(frequencies)
	if err != nil {
		return 0, ErrEmptyDistribution
	}
	if hasNegative(frequencies) {
		return 0, ErrNegativeValue
	}

	var hx float64
	for _, frequency := range frequencies {
		px := frequency / totalFrequency
		if px > 0 {
			hx -= px * math.Log2(px)
		}
	}
	return hx, nil
}

// EntropyFromSampleDistribution calculates the entropy of a sequence of
// sample outcomes, in bits, from the empirical frequency of each distinct
// value, e.g.
//
//	[1, 2, 5, 2, 2, 1, 4, 4, 2, 2, 2, 2]
//	["H", "T", "H", "T", "H", "H", "H", "H", "H"]
func EntropyFromSampleDistribution[T comparable](samples []T) (float64, error) {
	if len(samples) < 1 {
		return 0, ErrEmptyDistribution
	}
	return EntropyFromCounter(CountValues(samples), len(samples))
}
