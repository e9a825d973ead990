/*
* Joint entropy and mutual information module
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

// Result holds one entropy quantity in bits. When Err is set, the inputs
// for the quantity were invalid and Bits carries the legacy error value -1.
type Result struct {
	Bits float64
	Err  error
}

// EntropyValues bundles the quantities derived from a flat frequency
// sequence treated as a rows x columns matrix in row-major order. Each
// value is rounded to three significant figures.
type EntropyValues struct {
	HXY  Result // joint entropy
	HX   Result // entropy of the row totals
	HY   Result // entropy of the column totals
	HXgY Result // conditional entropy of X given Y
	HYgX Result // conditional entropy of Y given X
	IXY  Result // mutual information
}

func newResult(bits float64, err error) Result {
	if err != nil {
		return Result{Bits: -1, Err: err}
	}
	return Result{Bits: RoundSF(bits, 3)}
}

// EntropyHXFromFrequencyDistribution calculates the entropy of the row
// totals of a flat frequency sequence of rows x columns values, in bits.
func EntropyHXFromFrequencyDistribution(frequencies []float64, rows int) (float64, error) {
	if len(frequencies) < 1 {
		return 0, ErrEmptyDistribution
	}

	rows = max(rows, 1)
	columns := len(frequencies) / rows

	// rows must be a factor of the size of the distribution so that the
	// data forms a proper matrix with whole rows and columns
	if columns*rows != len(frequencies) {
		return 0, ErrShapeMismatch
	}

	rowTotals := make([]float64, rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			rowTotals[row] += frequencies[row*columns+col]
		}
	}

	return EntropyFromFrequencyDistribution(rowTotals)
}

// EntropyHYFromFrequencyDistribution calculates the entropy of the column
// totals of a flat frequency sequence of rows x columns values, in bits.
func EntropyHYFromFrequencyDistribution(frequencies []float64, rows int) (float64, error) {
	if len(frequencies) < 1 {
		return 0, ErrEmptyDistribution
	}

	rows = max(rows, 1)
	columns := len(frequencies) / rows

	if columns*rows != len(frequencies) {
		return 0, ErrShapeMismatch
	}

	columnTotals := make([]float64, columns)
	for col := 0; col < columns; col++ {
		for row := 0; row < rows; row++ {
			columnTotals[col] += frequencies[row*columns+col]
		}
	}

	return EntropyFromFrequencyDistribution(columnTotals)
}

// EntropyValuesFromFrequencyDistribution calculates the joint, marginal and
// conditional entropies and the mutual information of a flat frequency
// sequence of rows x columns values. A quantity whose inputs are invalid
// carries the validation error; the remaining quantities are unaffected.
func EntropyValuesFromFrequencyDistribution(frequencies []float64, rows int) EntropyValues {
	hxy, errXY := EntropyFromFrequencyDistribution(frequencies)
	hx, errX := EntropyHXFromFrequencyDistribution(frequencies, rows)
	hy, errY := EntropyHYFromFrequencyDistribution(frequencies, rows)

	values := EntropyValues{
		HXY: newResult(hxy, errXY),
		HX:  newResult(hx, errX),
		HY:  newResult(hy, errY),
	}

	switch {
	case errX != nil:
		values.HYgX = newResult(0, errX)
	case errXY != nil:
		values.HYgX = newResult(0, errXY)
	default:
		values.HYgX = newResult(hxy-hx, nil)
	}

	switch {
	case errY != nil:
		values.HXgY = newResult(0, errY)
	case errXY != nil:
		values.HXgY = newResult(0, errXY)
	default:
		values.HXgY = newResult(hxy-hy, nil)
	}

	switch {
	case errX != nil:
		values.IXY = newResult(0, errX)
	case errY != nil:
		values.IXY = newResult(0, errY)
	case errXY != nil:
		values.IXY = newResult(0, errXY)
	default:
		values.IXY = newResult(hx+hy-hxy, nil)
	}

	return values
}
