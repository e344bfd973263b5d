package equation

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
)

// S1 from spec.md §8: a solvable 3-variable system with a known witness.
func TestSystemSubstituteAssignmentSatisfiesAll(t *testing.T) {
	sys := NewSystem(3, []Equation{
		MakeEquation([]int64{7, 12, 31}, 17),
		MakeEquation([]int64{3, 5, 14}, 7),
	})
	witness := []Assignment{
		{Variable: 0, Value: bigint.NewInt(12)},
		{Variable: 1, Value: bigint.NewInt(-3)},
		{Variable: 2, Value: bigint.NewInt(-1)},
	}
	for _, a := range witness {
		sys.SubstituteAssignment(a)
	}
	if result := sys.Simplify(); result != IsEmpty {
		t.Fatalf("expected witness to satisfy system (IsEmpty), got %v: %s", result, sys)
	}
}

// S3 from spec.md §8: an all-vacuous system simplifies to empty.
func TestSystemSimplifyEmptySystem(t *testing.T) {
	sys := NewSystem(1, []Equation{
		MakeEquation([]int64{0}, 0),
	})
	if result := sys.Simplify(); result != IsEmpty {
		t.Fatalf("expected IsEmpty, got %v", result)
	}
	if sys.EquationCount() != 0 {
		t.Fatalf("expected all equations dropped, got %d", sys.EquationCount())
	}
}

// S4 from spec.md §8: a single unsatisfiable equation propagates Conflict.
func TestSystemSimplifyConflictPropagates(t *testing.T) {
	sys := NewSystem(1, []Equation{
		MakeEquation([]int64{2}, 3),
		MakeEquation([]int64{1}, 5),
	})
	if result := sys.Simplify(); result != Conflict {
		t.Fatalf("expected Conflict, got %v", result)
	}
}

func TestSystemSimplifyDropsVacuousKeepsLive(t *testing.T) {
	sys := NewSystem(2, []Equation{
		MakeEquation([]int64{0}, 0),
		MakeEquation([]int64{2, 4}, 6),
	})
	if result := sys.Simplify(); result != Ok {
		t.Fatalf("expected Ok, got %v", result)
	}
	if sys.EquationCount() != 1 {
		t.Fatalf("expected one surviving equation, got %d", sys.EquationCount())
	}
}

func TestSystemAddNewVariable(t *testing.T) {
	sys := NewSystem(2, nil)
	if sys.VariableCount() != 2 {
		t.Fatalf("expected 2 variables, got %d", sys.VariableCount())
	}
	fresh := sys.AddNewVariable()
	if fresh != 2 {
		t.Fatalf("expected fresh variable id 2, got %d", fresh)
	}
	if sys.VariableCount() != 3 {
		t.Fatalf("expected 3 variables after minting, got %d", sys.VariableCount())
	}
}

// Clone must be independent: mutating the clone must not affect the
// original (needed so the validator can simplify a throwaway copy).
func TestSystemCloneIndependence(t *testing.T) {
	sys := NewSystem(2, []Equation{
		MakeEquation([]int64{2, 4}, 6),
	})
	clone := sys.Clone()
	clone.SubstituteAssignment(Assignment{Variable: 0, Value: bigint.NewInt(3)})
	clone.Simplify()

	if sys.Equations[0].RightSide.Int64() != 6 {
		t.Fatalf("original system was mutated by clone's substitution: %s", sys)
	}
}

func TestSystemSubstituteDeducedBroadcast(t *testing.T) {
	sys := NewSystem(2, []Equation{
		MakeEquation([]int64{1, 4}, 9),
		MakeEquation([]int64{1, -2}, 3),
	})
	pivot := sys.Equations[0].LeftSide.Terms[0]
	deduced := sys.Equations[0].SolveFor(pivot, true)
	sys.SubstituteDeduced(deduced)

	if result := sys.Simplify(); result == Conflict {
		t.Fatalf("unexpected conflict after broadcasting deduced equation: %s", sys)
	}
	for _, e := range sys.Equations {
		for _, term := range e.LeftSide.Terms {
			if term.Variable == pivot.Variable {
				t.Fatalf("pivot variable %d should have been eliminated from %s", pivot.Variable, e)
			}
		}
	}
}
