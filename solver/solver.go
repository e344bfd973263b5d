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

// Package solver implements the elimination algorithm that reduces a
// System of linear Diophantine equations to a Solution (or reports
// that none exists).
package solver

import (
	"github.com/bfix/diophantus/bigint"
	"github.com/bfix/diophantus/data"
	"github.com/bfix/diophantus/equation"
)

// NoSolution is returned by Solve when the system has no integer
// solution (an equation reduced to Conflict).
type NoSolution struct {
	reason string
}

func (e *NoSolution) Error() string {
	return "no solution: " + e.reason
}

// Progress is called once per elimination step, after the pivot
// equation for that step has been chosen and substituted. iteration is
// 1-based; remaining is the number of live equations left in the
// system at that point. A nil Progress is valid and disables the hook.
type Progress func(iteration, remaining int)

// Solve runs the elimination algorithm on sys until either every
// equation has been consumed (success) or a Conflict is found (no
// solution). sys is mutated in place; pass a Clone if the caller still
// needs the original. onProgress may be nil.
func Solve(sys *equation.System, onProgress Progress) (equation.Solution, error) {
	if result := sys.Simplify(); result == equation.Conflict {
		return equation.Solution{}, &NoSolution{reason: "initial simplification found a contradiction"}
	}

	nOriginal := sys.VariableCount()
	deduced := data.NewStack()
	iteration := 0

	for sys.EquationCount() > 0 {
		iteration++

		idx := pickEquation(sys)
		pivotEq := &sys.Equations[idx]

		d, err := deduceNewEquation(sys, pivotEq)
		if err != nil {
			return equation.Solution{}, err
		}
		deduced.Push(d)

		sys.SubstituteDeduced(d)
		if result := sys.Simplify(); result == equation.Conflict {
			return equation.Solution{}, &NoSolution{reason: "elimination step found a contradiction"}
		}

		if onProgress != nil {
			onProgress(iteration, sys.EquationCount())
		}
	}

	return FilterOriginal(backPropagate(deduced), nOriginal), nil
}

// pickEquation implements the heuristic of spec.md §4.5: an equation
// with exactly one term wins immediately (it yields a direct
// assignment); otherwise the equation whose lowest-magnitude
// coefficient is smallest overall wins, first occurrence breaking
// ties.
func pickEquation(sys *equation.System) int {
	best := -1
	var bestCoeff *bigint.Int

	for i, eq := range sys.Equations {
		if len(eq.LeftSide.Terms) == 1 {
			return i
		}
		lo := eq.LowestCoefficientTerm()
		if best < 0 || lo.Coefficient.AbsCmp(bestCoeff) < 0 {
			best = i
			bestCoeff = lo.Coefficient
		}
	}
	return best
}

// deduceNewEquation derives one DeducedEquation from the chosen pivot
// equation: a direct solveFor when the pivot's lowest-coefficient term
// has magnitude 1, otherwise an elimination step that mints a fresh
// auxiliary variable.
func deduceNewEquation(sys *equation.System, pivotEq *equation.Equation) (equation.DeducedEquation, error) {
	pivot := pivotEq.LowestCoefficientTerm()

	if pivot.Coefficient.Sign() < 0 {
		pivotEq.Invert()
		pivot = pivotEq.LowestCoefficientTerm()
	}

	if pivot.Coefficient.AbsCmp(bigint.ONE) == 0 {
		return pivotEq.SolveFor(pivot, true), nil
	}

	fresh := sys.AddNewVariable()
	return pivotEq.Eliminate(pivot, fresh), nil
}

// backPropagate pops the deduced-equation stack in LIFO order, folding
// each already-known assignment into the remaining deduced equations
// until every one collapses to a plain Assignment. A term that still
// carries a nonzero coefficient after that folding names a free
// variable no equation ever pivoted on; it is pinned to 0 (spec.md
// §4.5 back-prop step 2) before the target's own assignment is
// recorded.
func backPropagate(deduced *data.Stack) equation.Solution {
	var assignments []equation.Assignment

	for deduced.Len() > 0 {
		d := deduced.Pop().(equation.DeducedEquation)

		for _, a := range assignments {
			d.Substitute(a)
		}

		for _, term := range d.RightSideTerms.Terms {
			if term.Coefficient.Sign() == 0 {
				continue
			}
			assignments = append(assignments, equation.Assignment{
				Variable: term.Variable,
				Value:    bigint.ZERO,
			})
		}

		assignments = append(assignments, equation.Assignment{
			Variable: d.Target,
			Value:    d.RightSideConstant,
		})
	}

	return getSolutionFromAssignments(assignments)
}

// getSolutionFromAssignments wraps the full assignment list, which may
// include auxiliary variables minted by Eliminate, as a Solution. Solve
// then restricts it to the original variables via FilterOriginal.
func getSolutionFromAssignments(assignments []equation.Assignment) equation.Solution {
	return equation.Solution{Assignments: assignments}
}

// FilterOriginal restricts a Solution to variables with id < n,
// dropping the auxiliary variables minted during elimination. Callers
// pass the System's original variable count (the N captured before any
// AddNewVariable calls).
func FilterOriginal(sol equation.Solution, n int) equation.Solution {
	kept := make([]equation.Assignment, 0, len(sol.Assignments))
	for _, a := range sol.Assignments {
		if int(a.Variable) < n {
			kept = append(kept, a)
		}
	}
	return equation.Solution{Assignments: kept}
}
