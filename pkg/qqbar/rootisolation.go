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
	"math/big"

	"github.com/anthropic-sandbox/ca/pkg/acb"
)

// evalBall evaluates p at a ball argument via Horner's rule, using ball
// arithmetic so the result is a rigorous enclosure of p(z) for any point z
// in the input ball.
func evalBall(p upoly, z acb.CBall, prec uint) acb.CBall {
	if len(p) == 0 {
		return acb.RealCBall(acb.FromInt64(0, prec))
	}

	acc := acb.RealCBall(acb.FromRat(&p[len(p)-1], prec))

	for i := len(p) - 2; i >= 0; i-- {
		acc = acc.Mul(z)
		acc = acc.Add(acb.RealCBall(acb.FromRat(&p[i], prec)))
	}

	return acc
}

// evalBallDerivative evaluates p' at z, reusing derivative().
func evalBallDerivative(p upoly, z acb.CBall, prec uint) acb.CBall {
	return evalBall(p.derivative(), z, prec)
}

// refineRoot narrows an enclosure known to contain exactly one root of p
// via interval Newton iteration: z_{n+1} = z_n - p(m_n)/p'(z_n), where m_n
// is the ball's midpoint, intersected back with z_n. This is the same
// certified-refinement shape as arb's root polishing, simplified since
// this package does not carry a full certified Newton-validation library;
// if the derivative's enclosure at any step contains zero (a multiple or
// nearby root), refinement stops early and returns the best enclosure
// found so far, leaving final disambiguation to the caller's interval
// oracle escalation.
func refineRoot(p upoly, start acb.CBall, prec uint) acb.CBall {
	if p.degree() <= 0 {
		return start
	}

	z := start
	if z.Prec() < prec {
		z = widenCBallPrec(z, prec)
	}

	for iter := 0; iter < 40; iter++ {
		mid := z.Re.Midpoint()
		midIm := z.Im.Midpoint()
		m := acb.NewCBall(acb.Exact(mid), acb.Exact(midIm))

		fm := evalBall(p, m, prec)
		fp := evalBallDerivative(p, z, prec)

		step, ok := fm.Div(fp)
		if !ok {
			break
		}

		candidate := m.Sub(step)

		next, intersects := intersectCBall(z, candidate)
		if !intersects {
			// Newton step escaped the current enclosure: the iteration no
			// longer certifies containment, so stop and keep the last
			// good enclosure rather than propagate a bogus one.
			break
		}

		width := next.Re.Width() + next.Im.Width()
		z = next

		if width < widthTargetForPrec(prec) {
			break
		}
	}

	return z
}

func widthTargetForPrec(prec uint) float64 {
	// 2^-prec, clamped away from zero/inf for the float64 comparison.
	if prec > 1000 {
		prec = 1000
	}

	v := 1.0
	for i := uint(0); i < prec; i++ {
		v /= 2
	}

	return v
}

func widenCBallPrec(z acb.CBall, prec uint) acb.CBall {
	re := acb.FromRat(ballMidpointRat(z.Re), prec)
	im := acb.FromRat(ballMidpointRat(z.Im), prec)

	return acb.NewCBall(z.Re.Union(re), z.Im.Union(im))
}

func ballMidpointRat(b acb.Ball) *big.Rat {
	mid := b.Midpoint()

	r, _ := mid.Rat(nil)
	if r == nil {
		r = new(big.Rat)
	}

	return r
}

// intersectCBall intersects two enclosures component-wise, reporting false
// if either component's intersection is empty (the candidate step escaped
// the trusted region).
func intersectCBall(a, b acb.CBall) (acb.CBall, bool) {
	re, ok1 := intersectBall(a.Re, b.Re)
	im, ok2 := intersectBall(a.Im, b.Im)

	if !ok1 || !ok2 {
		return acb.CBall{}, false
	}

	return acb.NewCBall(re, im), true
}

func intersectBall(a, b acb.Ball) (acb.Ball, bool) {
	lo := a.Lo
	if b.Lo.Cmp(&lo) > 0 {
		lo = b.Lo
	}

	hi := a.Hi
	if b.Hi.Cmp(&hi) < 0 {
		hi = b.Hi
	}

	if lo.Cmp(&hi) > 0 {
		return acb.Ball{}, false
	}

	return acb.Ball{Lo: lo, Hi: hi}, true
}
