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

// Package bigint wraps math/big.Int with the operators the Diophantine
// solver needs, most notably a symmetric ("balanced") modulo.
package bigint

import (
	"crypto/rand"
	"math/big"

	"github.com/bfix/diophantus/errors"
)

var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
)

// ErrDivideByZero is the base error for a zero divisor passed to Div,
// Mod or SymMod. It is a programmer error, not a Conflict.
var ErrDivideByZero = divideByZero("division by zero")

type divideByZero string

func (e divideByZero) Error() string { return string(e) }

// Int is an integer of arbitrary size.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a string representation of an integer.
func NewIntFromString(s string) *Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(errors.New(errors.ErrInput, "not a valid integer: %q", s))
	}
	return &Int{v: v}
}

// NewIntFromBytes converts a binary array into an unsigned integer.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// NewIntRnd creates a new random value between [0,j[. Used by tests to
// generate property-check operands.
func NewIntRnd(j *Int) *Int {
	r, err := rand.Int(rand.Reader, j.v)
	if err != nil {
		panic(err)
	}
	return &Int{v: r}
}

// String converts an Int to a string representation.
func (i *Int) String() string {
	return i.v.String()
}

// Int64 returns the int64 value of an Int.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// Bytes returns a byte array representation of the integer.
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// Add returns i+j.
func (i *Int) Add(j *Int) *Int {
	return &Int{v: new(big.Int).Add(i.v, j.v)}
}

// Sub returns i-j.
func (i *Int) Sub(j *Int) *Int {
	return &Int{v: new(big.Int).Sub(i.v, j.v)}
}

// Mul returns i*j.
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// Div returns the truncated quotient i/j. The solver only ever calls
// this when j is a proven divisor of i, so the result is exact.
func (i *Int) Div(j *Int) *Int {
	if j.Sign() == 0 {
		panic(errors.New(ErrDivideByZero, "Div(%s, 0)", i))
	}
	return &Int{v: new(big.Int).Quo(i.v, j.v)}
}

// Mod returns the Euclidean modulus of i by j (0 <= result < |j|).
func (i *Int) Mod(j *Int) *Int {
	if j.Sign() == 0 {
		panic(errors.New(ErrDivideByZero, "Mod(%s, 0)", i))
	}
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// SymMod returns the symmetric (balanced) residue of i modulo m: the
// unique r with r === i (mod m) and -m/2 <= r < m/2 for even m, or
// |r| <= (m-1)/2 for odd m. SymMod(i, 0) panics.
func (i *Int) SymMod(m *Int) *Int {
	if m.Sign() == 0 {
		panic(errors.New(ErrDivideByZero, "SymMod(%s, 0)", i))
	}
	mAbs := m.Abs()
	r := i.Mod(mAbs)
	half := mAbs.Div(TWO) // floor(|m|/2)
	if mAbs.v.Bit(0) == 0 {
		// even modulus: balanced window is [-m/2, m/2)
		if r.Cmp(half) < 0 {
			return r
		}
		return r.Sub(mAbs)
	}
	// odd modulus: balanced window is [-(m-1)/2, (m-1)/2]
	if r.Cmp(half) <= 0 {
		return r
	}
	return r.Sub(mAbs)
}

// Sign returns -1, 0 or 1 depending on the sign of i.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// Cmp compares i and j (-1, 0, 1).
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Equals reports whether i and j denote the same integer.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// Abs returns the unsigned value of i.
func (i *Int) Abs() *Int {
	return &Int{v: new(big.Int).Abs(i.v)}
}

// AbsCmp compares |i| to |j| (-1, 0, 1); used for pivot selection.
func (i *Int) AbsCmp(j *Int) int {
	return i.Abs().v.Cmp(j.Abs().v)
}

// Neg flips the sign of i.
func (i *Int) Neg() *Int {
	return &Int{v: new(big.Int).Neg(i.v)}
}

// GCD returns the nonnegative greatest common divisor of i and j.
// GCD(0, 0) = 0.
func (i *Int) GCD(j *Int) *Int {
	ai := new(big.Int).Abs(i.v)
	aj := new(big.Int).Abs(j.v)
	return &Int{v: new(big.Int).GCD(nil, nil, ai, aj)}
}
