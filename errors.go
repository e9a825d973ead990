/*
* Validation error definitions
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

import "errors"

var (
	ErrEmptyDistribution = errors.New("entropy: empty distribution")
	ErrNotNormalized     = errors.New("entropy: probabilities do not sum to 1.0")
	ErrNegativeValue     = errors.New("entropy: negative value in distribution")
	ErrInvalidBinSize    = errors.New("entropy: invalid bin size")
	ErrShapeMismatch     = errors.New("entropy: rows do not evenly divide the distribution")
)
