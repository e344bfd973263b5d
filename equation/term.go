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

// Package equation implements the data model of a system of linear
// Diophantine equations: Term, Sum, Equation, DeducedEquation,
// Assignment, Solution and EquationSystem.
package equation

import (
	"fmt"

	"github.com/bfix/diophantus/bigint"
)

// VarID identifies a variable. Ids 0..N-1 are the variables declared
// by the input; ids >= N are auxiliary variables minted by the solver.
type VarID int

// Term is a (coefficient, variable-id) pair. The invariant that no two
// terms in a Sum share a variable-id, and that terms stay ordered by
// ascending VarID, is held by Sum, not by Term in isolation.
type Term struct {
	Coefficient *bigint.Int
	Variable    VarID
}

// NewTerm creates a term for the given variable and coefficient.
func NewTerm(coefficient *bigint.Int, variable VarID) Term {
	return Term{Coefficient: coefficient, Variable: variable}
}

// DivideCoefficientBy divides the term's coefficient in place.
func (t *Term) DivideCoefficientBy(divisor *bigint.Int) {
	t.Coefficient = t.Coefficient.Div(divisor)
}

// CoefficientMod reduces the term's coefficient to its symmetric
// residue modulo m, in place.
func (t *Term) CoefficientMod(m *bigint.Int) {
	t.Coefficient = t.Coefficient.SymMod(m)
}

// SetCoefficientToZero zeroes the term's coefficient in place, keeping
// the slot (and thus the variable ordering) intact.
func (t *Term) SetCoefficientToZero() {
	t.Coefficient = bigint.ZERO
}

// String renders a term as "(c)*x[v]".
func (t Term) String() string {
	return fmt.Sprintf("(%s)*x[%d]", t.Coefficient, t.Variable)
}
