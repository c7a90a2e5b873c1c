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
package qqbar

import (
	"fmt"
	"math/big"

	"github.com/anthropic-sandbox/ca/pkg/acb"
)

// Value is a closed algebraic number: an annihilating polynomial together
// with a numeric enclosure singling out which of the polynomial's roots
// this value denotes. minPoly need not be the minimal polynomial -- any
// polynomial with the true value among its roots is sufficient, since
// degree/height bookkeeping only needs an upper bound and isolation only
// needs enough separation to disambiguate roots within the enclosure's
// working precision. This mirrors qqbar_t's role as the external collaborator
// described in spec.md §4.9, grounded on original_source/src/ca/merge_fields.c's
// treatment of algebraic generators as opaque payloads with an attached
// enclosure.
type Value struct {
	minPoly    upoly
	enclosure  acb.CBall
	isRational bool
	ratValue   big.Rat
}

// FromRat builds a rational Value.
func FromRat(v *big.Rat) Value {
	return Value{
		minPoly:    linearXMinus(v),
		enclosure:  acb.RealCBall(acb.FromRat(v, 64)),
		isRational: true,
		ratValue:   *v,
	}
}

// FromInt64 builds an integer-valued Value.
func FromInt64(v int64) Value {
	return FromRat(big.NewRat(v, 1))
}

// FromIUnit builds the value i = sqrt(-1), the generator of the
// distinguished QQ(i) field (spec.md §3.1).
func FromIUnit() Value {
	one := *big.NewRat(1, 1)
	return Value{
		minPoly:   upoly{one, *big.NewRat(0, 1), one},
		enclosure: acb.NewCBall(acb.FromInt64(0, 64), acb.FromInt64(1, 64)),
	}
}

// Degree returns the degree of the stored annihilating polynomial -- an
// upper bound on the true algebraic degree.
func (v Value) Degree() int {
	return v.minPoly.degree()
}

// IsRational reports whether this value was constructed (or has been
// simplified) to a known rational value.
func (v Value) IsRational() (big.Rat, bool) {
	if v.isRational {
		return v.ratValue, true
	}

	return big.Rat{}, false
}

// IsInteger reports whether the value is a known rational with denominator 1.
func (v Value) IsInteger() (big.Int, bool) {
	r, ok := v.IsRational()
	if !ok || !r.IsInt() {
		return big.Int{}, false
	}

	return *r.Num(), true
}

// Enclosure returns the numeric interval enclosure of the value at its
// current working precision.
func (v Value) Enclosure() acb.CBall {
	return v.enclosure
}

// Refine re-evaluates the enclosure at a higher precision by isolating the
// unique root of minPoly inside the current enclosure via interval Newton
// iteration (see rootisolation.go).
func (v Value) Refine(prec uint) Value {
	refined := refineRoot(v.minPoly, v.enclosure, prec)
	v.enclosure = refined

	return v
}

// combine is the shared implementation behind Add/Mul: build a valid
// annihilating polynomial for the combination via resultant
// sampling+interpolation, then combine the enclosures directly (which does
// not depend on the annihilating polynomial at all, and so remains exact
// regardless of whether minPoly is minimal).
func combine(a, b Value, poly func(f, g upoly) upoly, op func(acb.CBall, acb.CBall) acb.CBall) Value {
	return Value{
		minPoly:   poly(a.minPoly, b.minPoly),
		enclosure: op(a.enclosure, b.enclosure),
	}
}

// Add computes a+b.
func Add(a, b Value) Value {
	if ra, ok := a.IsRational(); ok {
		if rb, ok := b.IsRational(); ok {
			var sum big.Rat

			sum.Add(&ra, &rb)

			return FromRat(&sum)
		}
	}

	return combine(a, b, resultantPolyForSum, func(x, y acb.CBall) acb.CBall { return x.Add(y) })
}

// Mul computes a*b.
func Mul(a, b Value) Value {
	if ra, ok := a.IsRational(); ok {
		if rb, ok := b.IsRational(); ok {
			var prod big.Rat

			prod.Mul(&ra, &rb)

			return FromRat(&prod)
		}
	}

	return combine(a, b, resultantPolyForProduct, func(x, y acb.CBall) acb.CBall { return x.Mul(y) })
}

// Neg computes -a.
func Neg(a Value) Value {
	if ra, ok := a.IsRational(); ok {
		var n big.Rat

		n.Neg(&ra)

		return FromRat(&n)
	}

	return Value{
		minPoly:   a.minPoly.scale(big.NewRat(-1, 1)).mulSignFlipOddDegrees(),
		enclosure: a.enclosure.Neg(),
	}
}

// mulSignFlipOddDegrees transforms p(x) into a polynomial with the same
// roots negated, i.e. q(x) = p(-x) up to an overall sign, by flipping the
// sign of odd-degree coefficients.
func (p upoly) mulSignFlipOddDegrees() upoly {
	r := p.clone()

	for i := 1; i < len(r); i += 2 {
		r[i].Neg(&r[i])
	}

	return trim(r)
}

// Sub computes a-b.
func Sub(a, b Value) Value {
	return Add(a, Neg(b))
}

// Inv computes 1/a for a non-zero a, by reversing the coefficient order of
// the annihilating polynomial (roots are inverted) and inverting the
// enclosure.
func Inv(a Value) (Value, bool) {
	if a.enclosure.ContainsZero() {
		return Value{}, false
	}

	if ra, ok := a.IsRational(); ok {
		if ra.Sign() == 0 {
			return Value{}, false
		}

		var inv big.Rat

		inv.Inv(&ra)

		return FromRat(&inv), true
	}

	n := len(a.minPoly)
	rev := make(upoly, n)

	for i, c := range a.minPoly {
		rev[n-1-i] = c
	}

	one := acb.RealCBall(acb.FromInt64(1, a.enclosure.Prec()))

	encl, ok := one.Div(a.enclosure)
	if !ok {
		return Value{}, false
	}

	return Value{minPoly: trim(rev), enclosure: encl}, true
}

// PowInt raises a to an integer power.
func PowInt(a Value, n int) (Value, bool) {
	if n == 0 {
		return FromInt64(1), true
	}

	if n < 0 {
		inv, ok := Inv(a)
		if !ok {
			return Value{}, false
		}

		return PowInt(inv, -n)
	}

	result := FromInt64(1)
	base := a

	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, base)
		}

		base = Mul(base, base)
		n >>= 1
	}

	return result, true
}

// Sign returns -1, 0, or 1 if the enclosure is tight enough to decide the
// value's sign against zero, reporting false when the ball still straddles
// zero at its current precision (the caller, pkg/ca, is responsible for
// escalating precision via Refine and retrying).
func (v Value) Sign() (int, bool) {
	if !v.enclosure.IsReal() {
		return 0, false
	}

	re := v.enclosure.Re
	if re.ExcludesZero() {
		if re.IsPositive() {
			return 1, true
		}

		return -1, true
	}

	if ra, ok := v.IsRational(); ok {
		return ra.Sign(), true
	}

	return 0, false
}

// String renders the value via its numeric enclosure, for diagnostics.
func (v Value) String() string {
	if ra, ok := v.IsRational(); ok {
		return ra.RatString()
	}

	return fmt.Sprintf("qqbar(deg<=%d, %s)", v.Degree(), v.enclosure.String())
}

// Equals is structural equality on the stored annihilating polynomial and
// rational fast path, used by the engine's extension cache to decide
// whether two algebraic atoms denote the same generator (spec.md §3.2
// treats algebraic atoms as identified by minimal polynomial).
func (v Value) Equals(o Value) bool {
	if v.isRational != o.isRational {
		return false
	}

	if v.isRational {
		return v.ratValue.Cmp(&o.ratValue) == 0
	}

	if len(v.minPoly) != len(o.minPoly) {
		return false
	}

	for i := range v.minPoly {
		if v.minPoly[i].Cmp(&o.minPoly[i]) != 0 {
			return false
		}
	}

	return v.enclosure.Re.Midpoint().Cmp(o.enclosure.Re.Midpoint()) == 0 &&
		v.enclosure.Im.Midpoint().Cmp(o.enclosure.Im.Midpoint()) == 0
}

// Cmp provides a total, arbitrary-but-stable order over values, used by
// the extension elimination order (spec.md §3.2) to break ties between
// two algebraic-atom extensions. Degree first, then rational value or
// coefficient-wise comparison of the annihilating polynomial, then the
// enclosure's midpoint.
func (v Value) Cmp(o Value) int {
	if v.Degree() != o.Degree() {
		return v.Degree() - o.Degree()
	}

	if v.isRational && o.isRational {
		return v.ratValue.Cmp(&o.ratValue)
	}

	for i := 0; i < len(v.minPoly) && i < len(o.minPoly); i++ {
		if c := v.minPoly[i].Cmp(&o.minPoly[i]); c != 0 {
			return c
		}
	}

	if len(v.minPoly) != len(o.minPoly) {
		return len(v.minPoly) - len(o.minPoly)
	}

	return v.enclosure.Re.Midpoint().Cmp(o.enclosure.Re.Midpoint())
}

// IntegerMinPoly returns the stored annihilating polynomial's coefficients
// (lowest degree first) cleared of denominators via their LCD, for
// callers (the ideal builder) that need an integer-coefficient relation.
// Clearing denominators does not change the polynomial's roots.
func (v Value) IntegerMinPoly() []big.Int {
	lcd := big.NewInt(1)

	for _, c := range v.minPoly {
		var g big.Int

		g.GCD(nil, nil, lcd, c.Denom())
		lcd.Div(new(big.Int).Mul(lcd, c.Denom()), &g)
	}

	out := make([]big.Int, len(v.minPoly))

	for i, c := range v.minPoly {
		var scaled big.Rat

		scaled.Mul(&c, new(big.Rat).SetInt(lcd))
		out[i] = *scaled.Num()
	}

	return out
}

// ConjugatePair returns the complex-conjugate value (same annihilating
// polynomial, conjugated enclosure) and whether it differs from v (a
// real value is its own conjugate).
func (v Value) ConjugatePair() (Value, bool) {
	if v.enclosure.IsReal() {
		return v, false
	}

	c := v
	c.enclosure = v.enclosure.Conj()

	return c, true
}

// Hash returns a structural hash of the stored annihilating polynomial
// (or the rational fast path), suitable for the extension cache's hash
// buckets.
func (v Value) Hash() uint64 {
	var h uint64 = 1469598103934665603

	mix := func(b byte) {
		h ^= uint64(b)
		h *= 1099511628211
	}

	if v.isRational {
		mix(1)

		for _, b := range v.ratValue.Num().Bytes() {
			mix(b)
		}

		mix(0xff)

		for _, b := range v.ratValue.Denom().Bytes() {
			mix(b)
		}

		return h
	}

	mix(2)

	for _, c := range v.minPoly {
		for _, b := range c.Num().Bytes() {
			mix(b)
		}

		mix(0xfe)

		for _, b := range c.Denom().Bytes() {
			mix(b)
		}

		mix(0xfd)
	}

	return h
}
