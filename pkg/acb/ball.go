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

// Package acb provides an arbitrary-precision real/complex interval
// ("ball") arithmetic evaluator. It plays the role of the oracle consulted
// by the ca engine whenever symbolic canonical reduction cannot decide
// whether an element is zero.
package acb

import (
	"fmt"
	"math/big"
)

// guardBits is the number of extra bits of working precision carried
// internally by multiplication/division/elementary functions so that the
// final outward-rounded endpoints remain a valid (if not bit-optimal)
// enclosure.
const guardBits = 64

// Ball represents a closed real interval [Lo, Hi] at some working
// precision. An uninitialised Ball is not valid; use Zero or FromInt64.
type Ball struct {
	Lo big.Float
	Hi big.Float
}

// Prec returns the working precision (in bits) of this ball, taken as the
// maximum of its two endpoints' precisions.
func (b Ball) Prec() uint {
	return max(b.Lo.Prec(), b.Hi.Prec())
}

// Zero returns the exact ball [0, 0] at the given precision.
func Zero(prec uint) Ball {
	var b Ball

	b.Lo.SetPrec(prec).SetInt64(0)
	b.Hi.SetPrec(prec).SetInt64(0)

	return b
}

// FromInt64 returns the exact ball [v, v] at the given precision.
func FromInt64(v int64, prec uint) Ball {
	var b Ball

	b.Lo.SetPrec(prec).SetInt64(v)
	b.Hi.SetPrec(prec).SetInt64(v)

	return b
}

// FromRat returns the smallest ball at the given precision which encloses
// the exact rational value v.
func FromRat(v *big.Rat, prec uint) Ball {
	var (
		b   Ball
		lo  big.Float
		hi  big.Float
	)

	lo.SetPrec(prec).SetMode(big.ToNegativeInf).SetRat(v)
	hi.SetPrec(prec).SetMode(big.ToPositiveInf).SetRat(v)
	b.Lo = lo
	b.Hi = hi

	return b
}

// Exact returns the degenerate ball [v, v] at v's own precision.
func Exact(v *big.Float) Ball {
	var b Ball

	b.Lo.Set(v)
	b.Hi.Set(v)

	return b
}

// IsExact determines whether this ball's endpoints coincide.
func (b Ball) IsExact() bool {
	return b.Lo.Cmp(&b.Hi) == 0
}

// Contains checks whether a given exact value lies within this ball.
func (b Ball) Contains(v *big.Float) bool {
	return b.Lo.Cmp(v) <= 0 && b.Hi.Cmp(v) >= 0
}

// ContainsZero checks whether zero lies within this ball.
func (b Ball) ContainsZero() bool {
	return b.Lo.Sign() <= 0 && b.Hi.Sign() >= 0
}

// ExcludesZero checks whether this ball definitely does not contain zero,
// i.e. whether the interval lies strictly on one side of zero.
func (b Ball) ExcludesZero() bool {
	return !b.ContainsZero()
}

// IsPositive checks whether every value in this ball is strictly positive.
func (b Ball) IsPositive() bool {
	return b.Lo.Sign() > 0
}

// IsNegative checks whether every value in this ball is strictly negative.
func (b Ball) IsNegative() bool {
	return b.Hi.Sign() < 0
}

// Midpoint returns an approximation of the centre of this ball.
func (b Ball) Midpoint() big.Float {
	var mid big.Float

	mid.SetPrec(b.Prec())
	mid.Add(&b.Lo, &b.Hi)
	mid.Quo(&mid, big.NewFloat(2).SetPrec(b.Prec()))

	return mid
}

// Neg negates this ball.
func (b Ball) Neg() Ball {
	var r Ball

	r.Lo.SetPrec(b.Prec()).Neg(&b.Hi)
	r.Hi.SetPrec(b.Prec()).Neg(&b.Lo)

	return r
}

// Add computes the sum of two balls, rounding outward.
func (b Ball) Add(o Ball) Ball {
	var (
		r    Ball
		prec = max(b.Prec(), o.Prec())
	)

	r.Lo.SetPrec(prec).SetMode(big.ToNegativeInf).Add(&b.Lo, &o.Lo)
	r.Hi.SetPrec(prec).SetMode(big.ToPositiveInf).Add(&b.Hi, &o.Hi)

	return r
}

// Sub computes the difference of two balls, rounding outward.
func (b Ball) Sub(o Ball) Ball {
	return b.Add(o.Neg())
}

// Mul computes the product of two balls. The four corner products are
// evaluated at guard precision and the result is widened by one ULP in
// each direction, which is a simplification of full directed-rounding
// interval multiplication but remains a valid enclosure.
func (b Ball) Mul(o Ball) Ball {
	var (
		prec = max(b.Prec(), o.Prec()) + guardBits
		x1, x2, x3, x4 big.Float
	)

	x1.SetPrec(prec).Mul(&b.Lo, &o.Lo)
	x2.SetPrec(prec).Mul(&b.Lo, &o.Hi)
	x3.SetPrec(prec).Mul(&b.Hi, &o.Lo)
	x4.SetPrec(prec).Mul(&b.Hi, &o.Hi)

	lo := minOf(&x1, &x2, &x3, &x4)
	hi := maxOf(&x1, &x2, &x3, &x4)

	return widen(lo, hi, max(b.Prec(), o.Prec()))
}

// Div computes the quotient of two balls. Returns ok=false when the divisor
// ball contains zero (division would be unbounded).
func (b Ball) Div(o Ball) (Ball, bool) {
	if o.ContainsZero() {
		return Ball{}, false
	}

	var (
		prec           = max(b.Prec(), o.Prec()) + guardBits
		x1, x2, x3, x4 big.Float
	)

	x1.SetPrec(prec).Quo(&b.Lo, &o.Lo)
	x2.SetPrec(prec).Quo(&b.Lo, &o.Hi)
	x3.SetPrec(prec).Quo(&b.Hi, &o.Lo)
	x4.SetPrec(prec).Quo(&b.Hi, &o.Hi)

	lo := minOf(&x1, &x2, &x3, &x4)
	hi := maxOf(&x1, &x2, &x3, &x4)

	return widen(lo, hi, max(b.Prec(), o.Prec())), true
}

// Inv computes the reciprocal of this ball.
func (b Ball) Inv(prec uint) (Ball, bool) {
	one := FromInt64(1, prec)
	return one.Div(b)
}

// Union returns the smallest ball enclosing both input balls.
func (b Ball) Union(o Ball) Ball {
	var r Ball

	prec := max(b.Prec(), o.Prec())
	r.Lo.SetPrec(prec)
	r.Hi.SetPrec(prec)

	if b.Lo.Cmp(&o.Lo) <= 0 {
		r.Lo.Set(&b.Lo)
	} else {
		r.Lo.Set(&o.Lo)
	}

	if b.Hi.Cmp(&o.Hi) >= 0 {
		r.Hi.Set(&b.Hi)
	} else {
		r.Hi.Set(&o.Hi)
	}

	return r
}

// PowUint raises this ball to a non-negative integer power by repeated
// squaring.
func (b Ball) PowUint(n uint) Ball {
	result := FromInt64(1, b.Prec())
	base := b

	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}

		base = base.Mul(base)
		n >>= 1
	}

	return result
}

// Width returns hi - lo as a plain float64, useful for deciding whether an
// oracle loop has converged enough to be worth another precision doubling.
func (b Ball) Width() float64 {
	var w big.Float

	w.Sub(&b.Hi, &b.Lo)
	f, _ := w.Float64()

	return f
}

func (b Ball) String() string {
	return fmt.Sprintf("[%s, %s]", b.Lo.Text('g', 10), b.Hi.Text('g', 10))
}

func minOf(vs ...*big.Float) *big.Float {
	m := vs[0]

	for _, v := range vs[1:] {
		if v.Cmp(m) < 0 {
			m = v
		}
	}

	return m
}

func maxOf(vs ...*big.Float) *big.Float {
	m := vs[0]

	for _, v := range vs[1:] {
		if v.Cmp(m) > 0 {
			m = v
		}
	}

	return m
}

// widen takes a tight [lo, hi] pair computed at guard precision and
// produces an enclosure at the requested precision, nudged outward by one
// ULP to absorb the rounding performed when dropping the guard bits.
func widen(lo, hi *big.Float, prec uint) Ball {
	var r Ball

	r.Lo.SetPrec(prec).SetMode(big.ToNegativeInf).Set(lo)
	r.Hi.SetPrec(prec).SetMode(big.ToPositiveInf).Set(hi)

	ulpLo := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1).SetPrec(prec), r.Lo.MantExp(nil)-int(prec)+1)
	ulpHi := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1).SetPrec(prec), r.Hi.MantExp(nil)-int(prec)+1)

	r.Lo.Sub(&r.Lo, ulpLo)
	r.Hi.Add(&r.Hi, ulpHi)

	return r
}
