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

import "strings"

// System owns the variable set and the equations of a linear
// Diophantine system. Equations may be erased during Simplify but
// never reordered; minting a variable only ever appends.
type System struct {
	variables []VarID
	Equations []Equation
}

// NewSystem builds a System over nVariables original variables
// (ids 0..nVariables-1) and the given equations.
func NewSystem(nVariables int, equations []Equation) *System {
	vars := make([]VarID, nVariables)
	for i := range vars {
		vars[i] = VarID(i)
	}
	return &System{variables: vars, Equations: equations}
}

// Clone makes a deep-enough copy for the Validator: a system whose
// Equations slice, and its equations' Sums, are independent of the
// original (substitution mutates Sum.Terms in place).
func (s *System) Clone() *System {
	eqs := make([]Equation, len(s.Equations))
	for i, e := range s.Equations {
		terms := make([]Term, len(e.LeftSide.Terms))
		copy(terms, e.LeftSide.Terms)
		eqs[i] = Equation{LeftSide: NewSum(terms), RightSide: e.RightSide}
	}
	vars := make([]VarID, len(s.variables))
	copy(vars, s.variables)
	return &System{variables: vars, Equations: eqs}
}

// VariableCount returns the number of variables known to the system,
// including auxiliary ones minted so far.
func (s *System) VariableCount() int {
	return len(s.variables)
}

// EquationCount returns the number of live equations.
func (s *System) EquationCount() int {
	return len(s.Equations)
}

// AddNewVariable mints a fresh variable-id and returns it.
func (s *System) AddNewVariable() VarID {
	id := VarID(len(s.variables))
	s.variables = append(s.variables, id)
	return id
}

// SubstituteAssignment broadcasts an Assignment to every equation.
func (s *System) SubstituteAssignment(a Assignment) {
	for i := range s.Equations {
		s.Equations[i].SubstituteAssignment(a)
	}
}

// SubstituteDeduced broadcasts a DeducedEquation to every equation.
func (s *System) SubstituteDeduced(d DeducedEquation) {
	for i := range s.Equations {
		s.Equations[i].SubstituteDeduced(d)
	}
}

// Simplify simplifies every equation in place, dropping those that
// become empty. A Conflict on any equation aborts and is propagated.
func (s *System) Simplify() SimplificationResult {
	kept := s.Equations[:0]
	for i := range s.Equations {
		switch result := s.Equations[i].Simplify(); result {
		case Conflict:
			return Conflict
		case IsEmpty:
			// drop this equation
		case Ok:
			kept = append(kept, s.Equations[i])
		}
	}
	s.Equations = kept

	if len(s.Equations) == 0 {
		return IsEmpty
	}
	return Ok
}

// String renders one equation per line.
func (s *System) String() string {
	if len(s.Equations) == 0 {
		return "Empty equation system"
	}
	lines := make([]string, len(s.Equations))
	for i, e := range s.Equations {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
