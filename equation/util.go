//----------------------------------------------------------------------
// This file is part of Diophantus.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Diophantus is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Diophantus is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package equation

import "github.com/bfix/diophantus/bigint"

// MakeEquation is a convenience constructor for tests and small
// programs: coefficients[i] is the coefficient of variable i, zero
// coefficients are omitted from the left side.
func MakeEquation(coefficients []int64, rightSide int64) Equation {
	terms := make([]Term, 0, len(coefficients))
	for i, c := range coefficients {
		if c != 0 {
			terms = append(terms, NewTerm(bigint.NewInt(c), VarID(i)))
		}
	}
	return NewEquation(NewSum(terms), bigint.NewInt(rightSide))
}
