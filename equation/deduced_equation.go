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

import (
	"fmt"

	"github.com/bfix/diophantus/bigint"
)

// DeducedEquation is a solved form x[Target] = RightSideTerms +
// RightSideConstant, produced only by Equation.SolveFor/Eliminate.
// Target never changes once the DeducedEquation is created.
type DeducedEquation struct {
	Target            VarID
	RightSideTerms    Sum
	RightSideConstant *bigint.Int
}

// AddTerm adds a term to the right side of the deduced equation.
func (d *DeducedEquation) AddTerm(t Term) {
	d.RightSideTerms.AddTerm(t)
}

// CoefficientsModulo takes every right-side coefficient modulo m
// (symmetrically).
func (d *DeducedEquation) CoefficientsModulo(m *bigint.Int) {
	d.RightSideTerms.CoefficientsModulo(m)
}

// Substitute replaces the variable named by the assignment, if
// present on the right side, folding its value into the constant.
func (d *DeducedEquation) Substitute(a Assignment) {
	coefficient, ok := d.RightSideTerms.SetCoefficientOfVariableToZero(a.Variable)
	if !ok {
		return
	}
	d.RightSideConstant = d.RightSideConstant.Add(coefficient.Mul(a.Value))
}

// String renders "x[target] = <sum> + <constant>".
func (d DeducedEquation) String() string {
	return fmt.Sprintf("x[%d] = %s + %s", d.Target, d.RightSideTerms, d.RightSideConstant)
}
