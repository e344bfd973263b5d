package validator

//----------------------------------------------------------------------
// This file is part of Diophantus.
// Copyright (C) 2011-present, Bernd Fix
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

import (
	"testing"

	"github.com/bfix/diophantus/bigint"
	"github.com/bfix/diophantus/equation"
	"github.com/bfix/diophantus/solver"
)

func TestIsValidSolutionAcceptsWitness(t *testing.T) {
	sys := equation.NewSystem(3, []equation.Equation{
		equation.MakeEquation([]int64{7, 12, 31}, 17),
		equation.MakeEquation([]int64{3, 5, 14}, 7),
	})
	sol := equation.Solution{Assignments: []equation.Assignment{
		{Variable: 0, Value: bigint.NewInt(12)},
		{Variable: 1, Value: bigint.NewInt(-3)},
		{Variable: 2, Value: bigint.NewInt(-1)},
	}}
	if !IsValidSolution(sys, sol) {
		t.Fatal("expected known witness to validate")
	}
}

func TestIsValidSolutionRejectsBogusAssignment(t *testing.T) {
	sys := equation.NewSystem(3, []equation.Equation{
		equation.MakeEquation([]int64{7, 12, 31}, 17),
		equation.MakeEquation([]int64{3, 5, 14}, 7),
	})
	sol := equation.Solution{Assignments: []equation.Assignment{
		{Variable: 0, Value: bigint.NewInt(0)},
		{Variable: 1, Value: bigint.NewInt(0)},
		{Variable: 2, Value: bigint.NewInt(0)},
	}}
	if IsValidSolution(sys, sol) {
		t.Fatal("expected all-zero assignment to fail validation")
	}
}

func TestIsValidSolutionDoesNotMutateOriginal(t *testing.T) {
	sys := equation.NewSystem(1, []equation.Equation{
		equation.MakeEquation([]int64{3}, 9),
	})
	before := sys.Equations[0].RightSide
	IsValidSolution(sys, equation.Solution{Assignments: []equation.Assignment{
		{Variable: 0, Value: bigint.NewInt(3)},
	}})
	if !sys.Equations[0].RightSide.Equals(before) {
		t.Fatal("IsValidSolution must not mutate the original system")
	}
}

func TestValidatorAgreesWithSolver(t *testing.T) {
	orig := equation.NewSystem(2, []equation.Equation{
		equation.MakeEquation([]int64{7, 12}, 17),
	})
	sys := equation.NewSystem(2, []equation.Equation{
		equation.MakeEquation([]int64{7, 12}, 17),
	})
	sol, err := solver.Solve(sys, nil)
	if err != nil {
		t.Fatalf("unexpected solver error: %v", err)
	}
	sol = solver.FilterOriginal(sol, 2)
	if !IsValidSolution(orig, sol) {
		t.Fatal("validator disagreed with a solution the solver itself produced")
	}
}
