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

func mkSum(coeffs ...int64) Sum {
	terms := make([]Term, len(coeffs))
	for i, c := range coeffs {
		terms[i] = NewTerm(bigint.NewInt(c), VarID(i))
	}
	return NewSum(terms)
}

// S5 from spec.md §8: 4x0 + 8x1 + 16x2 simplifies to x0 + 2x1 + 4x2.
func TestSumSimplifyGCD(t *testing.T) {
	s := mkSum(4, 8, 16)
	gcd, ok := s.Simplify()
	if !ok || gcd.Int64() != 4 {
		t.Fatalf("expected gcd 4, got %v (ok=%v)", gcd, ok)
	}
	want := []int64{1, 2, 4}
	for i, c := range want {
		if s.Terms[i].Coefficient.Int64() != c {
			t.Fatalf("term %d: got %s, want %d", i, s.Terms[i].Coefficient, c)
		}
	}
}

func TestSumSimplifyAllZero(t *testing.T) {
	s := mkSum(0, 0, 0)
	_, ok := s.Simplify()
	if ok {
		t.Fatal("expected empty (no gcd) for all-zero sum")
	}
}

func TestSumSimplifyDropsZeroTerms(t *testing.T) {
	s := mkSum(6, 0, 9)
	gcd, ok := s.Simplify()
	if !ok || gcd.Int64() != 3 {
		t.Fatalf("expected gcd 3, got %v", gcd)
	}
	if len(s.Terms) != 2 {
		t.Fatalf("expected 2 terms after dropping zero, got %d", len(s.Terms))
	}
}

func TestLowestHighestCoefficientTerm(t *testing.T) {
	s := mkSum(7, -2, 31)
	lo := s.LowestCoefficientTerm()
	if lo.Variable != 1 || lo.Coefficient.Int64() != -2 {
		t.Fatalf("unexpected lowest term: %v", lo)
	}
	hi := s.HighestCoefficientTerm()
	if hi.Variable != 2 || hi.Coefficient.Int64() != 31 {
		t.Fatalf("unexpected highest term: %v", hi)
	}
}

func TestLowestCoefficientTermSkipsZero(t *testing.T) {
	s := mkSum(0, 5, 2)
	lo := s.LowestCoefficientTerm()
	if lo.Variable != 2 {
		t.Fatalf("expected to skip zero coefficient, got %v", lo)
	}
}

func TestSetCoefficientOfVariableToZero(t *testing.T) {
	s := mkSum(3, 5, 7)
	old, ok := s.SetCoefficientOfVariableToZero(1)
	if !ok || old.Int64() != 5 {
		t.Fatalf("expected old coefficient 5, got %v (ok=%v)", old, ok)
	}
	if s.Terms[1].Coefficient.Sign() != 0 {
		t.Fatal("coefficient was not zeroed")
	}
	if s.Terms[1].Variable != 1 {
		t.Fatal("slot/order invariant broken by zeroing")
	}
	_, ok = s.SetCoefficientOfVariableToZero(99)
	if ok {
		t.Fatal("expected absent variable to report false")
	}
}

// Invariant 8 of spec.md §8: terms stay sorted by ascending VarID
// after mutation.
func TestSumOrderingInvariant(t *testing.T) {
	s := mkSum(1, 2, 3, 4)
	s.SetCoefficientOfVariableToZero(2)
	s.CoefficientsModulo(bigint.NewInt(3))
	for i := 1; i < len(s.Terms); i++ {
		if s.Terms[i-1].Variable >= s.Terms[i].Variable {
			t.Fatalf("ordering invariant violated at %d: %v", i, s.Terms)
		}
	}
}

func TestCoefficientsModulo(t *testing.T) {
	s := mkSum(13, -13, 12)
	s.CoefficientsModulo(bigint.NewInt(5))
	if s.Terms[0].Coefficient.Int64() != -2 {
		t.Fatalf("symMod(13,5) in sum: got %s", s.Terms[0].Coefficient)
	}
	if s.Terms[1].Coefficient.Int64() != 2 {
		t.Fatalf("symMod(-13,5) in sum: got %s", s.Terms[1].Coefficient)
	}
}
