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

// Equation is leftSide = rightSide, leftSide a Sum over distinct
// variables, rightSide a constant. No invariant on coefficient sign.
type Equation struct {
	LeftSide  Sum
	RightSide *bigint.Int
}

// NewEquation builds an Equation from a left-hand Sum and a constant.
func NewEquation(leftSide Sum, rightSide *bigint.Int) Equation {
	return Equation{LeftSide: leftSide, RightSide: rightSide}
}

// Simplify reduces the left side by its coefficient GCD and divides
// the right side by the same factor, detecting IsEmpty/Conflict per
// spec.md §4.3.
func (e *Equation) Simplify() SimplificationResult {
	gcd, ok := e.LeftSide.Simplify()
	if !ok {
		if e.RightSide.Sign() == 0 {
			return IsEmpty
		}
		return Conflict
	}
	if e.RightSide.Mod(gcd).Sign() != 0 {
		return Conflict
	}
	e.RightSide = e.RightSide.Div(gcd)
	return Ok
}

// Invert multiplies every left-side coefficient and the right side by
// -1, used to normalize the pivot's sign.
func (e *Equation) Invert() {
	minusOne := bigint.NewInt(-1)
	e.LeftSide.DivideCoefficientsBy(minusOne)
	e.RightSide = e.RightSide.Mul(minusOne)
}

// LowestCoefficientTerm delegates to the left side.
func (e *Equation) LowestCoefficientTerm() Term {
	return e.LeftSide.LowestCoefficientTerm()
}

// HighestCoefficientTerm delegates to the left side.
func (e *Equation) HighestCoefficientTerm() Term {
	return e.LeftSide.HighestCoefficientTerm()
}

// SolveFor reshapes leftSide = rightSide into a DeducedEquation for
// t's variable, assuming |t.Coefficient| = 1. See spec.md §4.3.
func (e *Equation) SolveFor(t Term, doNormalInversion bool) DeducedEquation {
	newTerms := make([]Term, 0, len(e.LeftSide.Terms))
	for _, srcTerm := range e.LeftSide.Terms {
		if srcTerm.Variable != t.Variable {
			newTerms = append(newTerms, srcTerm)
		}
	}

	coefficientPositive := t.Coefficient.Sign() > 0
	if doNormalInversion && coefficientPositive {
		minusOne := bigint.NewInt(-1)
		for i := range newTerms {
			newTerms[i].DivideCoefficientBy(minusOne)
		}
	}

	newRight := e.RightSide
	if !(!doNormalInversion || coefficientPositive) {
		newRight = e.RightSide.Neg()
	}

	return DeducedEquation{
		Target:            t.Variable,
		RightSideTerms:    NewSum(newTerms),
		RightSideConstant: newRight,
	}
}

// Eliminate introduces a fresh variable v to absorb the remainder of
// dividing by |t.Coefficient|, shrinking every other coefficient to
// magnitude <= (|t.Coefficient|+1)/2. Pre: |t.Coefficient| >= 2 and
// t.Coefficient > 0 (the solver guarantees positivity before calling).
func (e *Equation) Eliminate(t Term, freshVar VarID) DeducedEquation {
	m := t.Coefficient.Add(bigint.ONE)

	d := e.SolveFor(t, false)
	d.CoefficientsModulo(m)
	d.AddTerm(NewTerm(m.Neg(), freshVar))
	d.RightSideConstant = d.RightSideConstant.SymMod(m).Neg()

	return d
}

// SubstituteDeduced broadcasts a DeducedEquation into this equation,
// merging the two sorted-by-VarID term lists (spec.md §4.3).
func (e *Equation) SubstituteDeduced(d DeducedEquation) {
	vc, ok := e.LeftSide.SetCoefficientOfVariableToZero(d.Target)
	if !ok {
		return
	}

	equationTerms := e.LeftSide.Terms
	deducedTerms := d.RightSideTerms.Terms
	newTerms := make([]Term, 0, len(equationTerms)+len(deducedTerms))

	ei, di := 0, 0
	for di < len(deducedTerms) || ei < len(equationTerms) {
		switch {
		case di < len(deducedTerms) && ei < len(equationTerms) &&
			deducedTerms[di].Variable == equationTerms[ei].Variable:
			coeff := equationTerms[ei].Coefficient.Add(deducedTerms[di].Coefficient.Mul(vc))
			if coeff.Sign() != 0 {
				newTerms = append(newTerms, NewTerm(coeff, deducedTerms[di].Variable))
			}
			di++
			ei++
		case di < len(deducedTerms) &&
			(ei == len(equationTerms) || deducedTerms[di].Variable < equationTerms[ei].Variable):
			// Kept unconditionally, even if the product happens to be
			// zero; a lingering zero term is swept by the next Simplify.
			coeff := deducedTerms[di].Coefficient.Mul(vc)
			newTerms = append(newTerms, NewTerm(coeff, deducedTerms[di].Variable))
			di++
		case ei < len(equationTerms):
			if equationTerms[ei].Coefficient.Sign() != 0 {
				newTerms = append(newTerms, equationTerms[ei])
			}
			ei++
		}
	}

	e.LeftSide = NewSum(newTerms)
	e.RightSide = e.RightSide.Sub(vc.Mul(d.RightSideConstant))
}

// SubstituteAssignment broadcasts an Assignment into this equation.
func (e *Equation) SubstituteAssignment(a Assignment) {
	coefficient, ok := e.LeftSide.SetCoefficientOfVariableToZero(a.Variable)
	if !ok {
		return
	}
	e.RightSide = e.RightSide.Sub(coefficient.Mul(a.Value))
}

// String renders "leftSide = rightSide".
func (e Equation) String() string {
	return fmt.Sprintf("%s = %s", e.LeftSide, e.RightSide)
}
