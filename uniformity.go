/*
* Distribution uniformity test module
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

// KsResult holds the Kolmogorov-Smirnov statistic of a frequency
// distribution against the discrete uniform distribution over the same
// support, the index where the maximum deviation occurs, and the critical
// values at the 1% and 5% significance levels.
type KsResult struct {
	Statistic        float64
	Position         int
	CriticalValue001 float64
	CriticalValue005 float64
}

// KsTestFromFrequencyDistribution compares the empirical CDF of the passed
// frequencies with the uniform CDF over the same number of bins.
func KsTestFromFrequencyDistribution(frequencies []float64) (KsResult, error) {
	total, err := stats.Sum(frequencies)
	if err != nil {
		return KsResult{}, ErrEmptyDistribution
	}
	if hasNegative(frequencies) {
		return KsResult{}, ErrNegativeValue
	}
	if total == 0 {
		// a CDF needs mass
		return KsResult{}, ErrEmptyDistribution
	}

	bins := float64(len(frequencies))

	var empiricalCumSum, theoreticalCumSum, ksStatistic float64
	var maxDiffPosition int

	for idx, frequency := range frequencies {
		empiricalCumSum += frequency / total
		theoreticalCumSum += 1 / bins
		if diff := math.Abs(empiricalCumSum - theoreticalCumSum); diff > ksStatistic {
			ksStatistic = diff
			maxDiffPosition = idx
		}
	}

	return KsResult{
		Statistic:        ksStatistic,
		Position:         maxDiffPosition,
		CriticalValue001: 1.63 / math.Sqrt(total),
		CriticalValue005: 1.36 / math.Sqrt(total),
	}, nil
}

// ChiSquareFromFrequencyDistribution calculates the Pearson chi-squared
// statistic of the passed frequencies against the uniform expectation.
func ChiSquareFromFrequencyDistribution(frequencies []float64) (float64, error) {
	total, err := stats.Sum(frequencies)
	if err != nil {
		return 0, ErrEmptyDistribution
	}
	if hasNegative(frequencies) {
		return 0, ErrNegativeValue
	}
	if total == 0 {
		return 0, ErrEmptyDistribution
	}

	expected := total / float64(len(frequencies))

	var chiSquare float64
	for _, observed := range frequencies {
		chiSquare += math.Pow(observed-expected, 2) / expected
	}
	return chiSquare, nil
}

// AutoCorrelation calculates the mean absolute lagged correlation of the
// mean-centered samples over lags 1..maxLag-1. The lag ceiling is clamped
// to the sample length.
func AutoCorrelation(samples []float64, maxLag int) (float64, error) {
	if len(samples) < 3 || maxLag < 2 {
		return 0, ErrEmptyDistribution
	}

	maxLag = min(maxLag, len(samples))

	inputMean, err := stats.Mean(samples)
	if err != nil {
		return 0, ErrEmptyDistribution
	}

	centered := make([]float64, len(samples))
	for i, value := range samples {
		centered[i] = value - inputMean
	}

	var results []float64
	for lag := 1; lag < maxLag; lag++ {
		correlation, corrErr := stats.Correlation(centered[lag:], centered[:len(centered)-lag])
		if corrErr != nil {
			return 0, corrErr
		}
		results = append(results, math.Abs(correlation))
	}

	return stats.Mean(results)
}
