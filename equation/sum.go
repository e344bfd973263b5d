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
	"strings"

	"github.com/bfix/diophantus/bigint"
)

// Sum is an ordered sequence of Terms over distinct variables, kept
// sorted by ascending VarID. The ordering is load-bearing for the
// merge performed by Equation.SubstituteDeduced.
type Sum struct {
	Terms []Term
}

// NewSum wraps a term slice as a Sum. Callers must supply terms
// already sorted by ascending VarID with unique variables.
func NewSum(terms []Term) Sum {
	return Sum{Terms: terms}
}

// AddTerm appends a term. The caller ensures variable-id uniqueness
// within the Sum.
func (s *Sum) AddTerm(t Term) {
	s.Terms = append(s.Terms, t)
}

// LowestCoefficientTerm returns the term minimizing |coefficient| over
// nonzero coefficients only. Undefined (panics) on an all-zero Sum.
func (s *Sum) LowestCoefficientTerm() Term {
	var best *Term
	for i := range s.Terms {
		t := &s.Terms[i]
		if t.Coefficient.Sign() == 0 {
			continue
		}
		if best == nil || t.Coefficient.AbsCmp(best.Coefficient) < 0 {
			best = t
		}
	}
	if best == nil {
		panic("equation: LowestCoefficientTerm on all-zero Sum")
	}
	return *best
}

// HighestCoefficientTerm returns the term maximizing |coefficient|
// over nonzero coefficients. Not on the solver's critical path (see
// spec.md §9); kept for callers that want it for diagnostics.
func (s *Sum) HighestCoefficientTerm() Term {
	var best *Term
	for i := range s.Terms {
		t := &s.Terms[i]
		if t.Coefficient.Sign() == 0 {
			continue
		}
		if best == nil || t.Coefficient.AbsCmp(best.Coefficient) > 0 {
			best = t
		}
	}
	if best == nil {
		panic("equation: HighestCoefficientTerm on all-zero Sum")
	}
	return *best
}

// Simplify deletes zero-coefficient terms, then divides every
// remaining coefficient by their GCD. It returns the GCD and true, or
// (nil, false) if no terms remain (the logical value is then 0).
func (s *Sum) Simplify() (*bigint.Int, bool) {
	s.removeZeroTerms()

	gcd := s.gcdOfCoefficients()
	if gcd.Sign() == 0 {
		return nil, false
	}
	s.DivideCoefficientsBy(gcd)
	return gcd, true
}

// DivideCoefficientsBy divides every coefficient by divisor.
func (s *Sum) DivideCoefficientsBy(divisor *bigint.Int) {
	for i := range s.Terms {
		s.Terms[i].DivideCoefficientBy(divisor)
	}
}

// CoefficientsModulo replaces every coefficient a with SymMod(a, m).
// Zeroed entries are left in place until the next Simplify.
func (s *Sum) CoefficientsModulo(m *bigint.Int) {
	for i := range s.Terms {
		s.Terms[i].CoefficientMod(m)
	}
}

// SetCoefficientOfVariableToZero finds the term with variable-id v,
// zeroes its coefficient in place (preserving the slot) and returns
// the old coefficient. Returns (nil, false) if v is absent.
func (s *Sum) SetCoefficientOfVariableToZero(v VarID) (*bigint.Int, bool) {
	for i := range s.Terms {
		if s.Terms[i].Variable == v {
			old := s.Terms[i].Coefficient
			s.Terms[i].SetCoefficientToZero()
			return old, true
		}
	}
	return nil, false
}

func (s *Sum) gcdOfCoefficients() *bigint.Int {
	gcd := bigint.ZERO
	first := true
	for _, t := range s.Terms {
		if t.Coefficient.Sign() == 0 {
			continue
		}
		if first {
			gcd = t.Coefficient.Abs()
			first = false
			continue
		}
		gcd = gcd.GCD(t.Coefficient)
	}
	return gcd
}

func (s *Sum) removeZeroTerms() {
	kept := s.Terms[:0]
	for _, t := range s.Terms {
		if t.Coefficient.Sign() != 0 {
			kept = append(kept, t)
		}
	}
	s.Terms = kept
}

// String renders the sum as "(c1)*x[v1] + (c2)*x[v2] + ...", or "0"
// when empty.
func (s Sum) String() string {
	if len(s.Terms) == 0 {
		return "0"
	}
	parts := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}
