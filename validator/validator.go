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

// Package validator re-checks a Solution against the original system
// independently of the solver, so a bug in the elimination algorithm
// cannot silently produce a wrong answer that goes unnoticed.
package validator

import "github.com/bfix/diophantus/equation"

// IsValidSolution substitutes every assignment in sol into a disposable
// clone of sys and reports whether the resulting system is vacuously
// true (every equation reduces to 0 = 0). sys itself is never mutated.
func IsValidSolution(sys *equation.System, sol equation.Solution) bool {
	check := sys.Clone()
	for _, a := range sol.Assignments {
		check.SubstituteAssignment(a)
	}
	return check.Simplify() == equation.IsEmpty
}
