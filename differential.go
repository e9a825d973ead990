/*
* Differential entropy module
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

// Where bins are used in the production of histograms from discrete data
// approximating a probability density function, the bin width is passed in
// and the term log2(binSize) is added to the summed entropy value.
// http://www2.warwick.ac.uk/fac/soc/economics/staff/academic/wallis/publications/entropy.pdf

// DifferentialEntropyFromProbabilityDistribution calculates the entropy of
// a binned probability density, in bits. The densities must be non-negative
// and their sum times binSize must equal 1.0 to two decimal places.
func DifferentialEntropyFromProbabilityDistribution(distribution []float64, binSize float64) (float64, error) {
	total, err := stats.Sum(distribution)
	if err != nil {
		return 0, ErrEmptyDistribution
	}
	if !sumsToOne(total * binSize) {
		return 0, ErrNotNormalized
	}
	if hasNegative(distribution) {
		return 0, ErrNegativeValue
	}
	if binSize < 0 {
		return 0, ErrInvalidBinSize
	}
	if len(distribution) <= 1 {
		// a single bin carries no information
		return 0, nil
	}

	var hx float64
	for _, density := range distribution {
		px := density * binSize
		if px > 0 {
			hx -= px * math.Log2(px)
		}
	}
	return hx + math.Log2(binSize), nil
}

// DifferentialEntropyFromFrequencyDistribution calculates the entropy of a
// binned frequency histogram, in bits. The frequencies are normalized by
// their total; binSize must be strictly positive.
func DifferentialEntropyFromFrequencyDistribution(frequencies []float64, binSize float64) (float64, error) {
	totalFrequency, err := stats.Sum(frequencies)
	if err != nil {
		return 0, ErrEmptyDistribution
	}
	if hasNegative(frequencies) {
		return 0, ErrNegativeValue
	}
	if binSize <= 0 {
		return 0, ErrInvalidBinSize
	}
	if len(frequencies) <= 1 {
		return 0, nil
	}

	var hx float64
	for _, frequency := range frequencies {
		px := frequency / totalFrequency
		if px > 0 {
			hx -= px * math.Log2(px)
		}
	}
	return hx + math.Log2(binSize), nil
}
