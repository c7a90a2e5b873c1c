// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package mpoly

import (
	"math/big"
	"slices"
)

// Fraction represents an element of the field of fractions of a
// multivariate polynomial ring: a numerator/denominator pair of Polys.
// The denominator is never zero (a zero denominator must instead be
// represented by the engine's special-value tags, per spec.md §4.7) and
// is canonicalised to have a positive leading (numerically largest
// integer) content, mirroring fmpz_mpoly_q's normal form in
// original_source/src/ca/merge_fields.c.
type Fraction struct {
	Num *Poly
	Den *Poly
}

// NewFraction constructs a fraction from a numerator/denominator pair,
// canonicalising the sign of the denominator. Panics if den is the zero
// polynomial, since that is always a programming error at this layer --
// the ca engine must route such cases through its special-value tags
// before ever constructing a Fraction.
func NewFraction(num, den *Poly) Fraction {
	if den.IsZero() {
		panic("mpoly: zero denominator")
	}

	return Fraction{num, den}.canonicalise()
}

// NewFractionFromPoly lifts a bare polynomial into a fraction with
// denominator 1.
func NewFractionFromPoly(p *Poly) Fraction {
	return Fraction{p, NewConstant(big.NewInt(1))}
}

// NewFractionFromConstant lifts a rational constant into a fraction.
func NewFractionFromConstant(v *big.Rat) Fraction {
	num := new(big.Int).Set(v.Num())
	den := new(big.Int).Set(v.Denom())

	return NewFraction(NewConstant(num), NewConstant(den))
}

// canonicalise ensures the denominator's leading term has a positive
// coefficient, flipping the sign of both numerator and denominator if
// required.
func (f Fraction) canonicalise() Fraction {
	if f.Den.Len() > 0 && f.Den.terms[0].Coeff.Sign() < 0 {
		return Fraction{f.Num.Neg(), f.Den.Neg()}
	}

	return f
}

// IsZero determines whether this fraction's numerator is (syntactically)
// zero.
func (f Fraction) IsZero() bool {
	return f.Num.IsZero()
}

// Add computes f + o, without reducing the resulting fraction (reduction
// modulo a field's ideal is the caller's responsibility, see
// pkg/ca/arithmetic.go).
func (f Fraction) Add(o Fraction) Fraction {
	num := f.Num.Mul(o.Den).Add(o.Num.Mul(f.Den))
	den := f.Den.Mul(o.Den)

	return NewFraction(num, den)
}

// Sub computes f - o.
func (f Fraction) Sub(o Fraction) Fraction {
	num := f.Num.Mul(o.Den).Sub(o.Num.Mul(f.Den))
	den := f.Den.Mul(o.Den)

	return NewFraction(num, den)
}

// Mul computes f * o.
func (f Fraction) Mul(o Fraction) Fraction {
	return NewFraction(f.Num.Mul(o.Num), f.Den.Mul(o.Den))
}

// Div computes f / o. The caller must have already established o is
// non-zero (see ca.Element's special-value handling); this only panics
// against an outright zero numerator, which would indicate the caller
// failed that precondition.
func (f Fraction) Div(o Fraction) Fraction {
	if o.Num.IsZero() {
		panic("mpoly: division by zero fraction")
	}

	return NewFraction(f.Num.Mul(o.Den), f.Den.Mul(o.Num))
}

// Neg negates this fraction.
func (f Fraction) Neg() Fraction {
	return Fraction{f.Num.Neg(), f.Den}
}

// PowInt raises this fraction to an integer power (positive or negative).
func (f Fraction) PowInt(n int) Fraction {
	if n >= 0 {
		return NewFraction(f.Num.PowUint(uint(n)), f.Den.PowUint(uint(n)))
	}

	return NewFraction(f.Den.PowUint(uint(-n)), f.Num.PowUint(uint(-n)))
}

// Generators returns the sorted set of generator indices appearing in
// either the numerator or denominator.
func (f Fraction) Generators() []uint {
	seen := map[uint]bool{}

	for _, v := range f.Num.Generators() {
		seen[v] = true
	}

	for _, v := range f.Den.Generators() {
		seen[v] = true
	}

	out := make([]uint, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}

	slices.Sort(out)

	return out
}

func (f Fraction) String() string {
	if cst, ok := f.Den.IsConstant(); ok && cst.Cmp(big.NewInt(1)) == 0 {
		return f.Num.String()
	}

	return "(" + f.Num.String() + ")/(" + f.Den.String() + ")"
}
