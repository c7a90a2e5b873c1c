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

// Package qqbar implements the closed algebraic-number layer consumed by
// the ca engine as an external collaborator (spec.md §4.9): minimal
// polynomial manipulation, root isolation, and closed evaluation of
// rational-function-in-generators expressions under degree/bit ceilings.
package qqbar

import "math/big"

// upoly is a dense univariate polynomial with rational coefficients,
// coeffs[i] being the coefficient of x^i, with no trailing zero
// coefficients (except for the zero polynomial, represented as nil/empty).
type upoly []big.Rat

func trim(p upoly) upoly {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}

	return p[:n]
}

func (p upoly) degree() int {
	return len(p) - 1
}

func constPoly(v *big.Rat) upoly {
	return trim(upoly{*v})
}

func linearXMinus(v *big.Rat) upoly {
	var negV big.Rat

	negV.Neg(v)

	return upoly{negV, *big.NewRat(1, 1)}
}

func (p upoly) add(q upoly) upoly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}

	r := make(upoly, n)

	for i := 0; i < n; i++ {
		var pi, qi big.Rat

		if i < len(p) {
			pi = p[i]
		}

		if i < len(q) {
			qi = q[i]
		}

		r[i].Add(&pi, &qi)
	}

	return trim(r)
}

func (p upoly) scale(c *big.Rat) upoly {
	r := make(upoly, len(p))

	for i := range p {
		r[i].Mul(&p[i], c)
	}

	return trim(r)
}

func (p upoly) mulX(power int) upoly {
	r := make(upoly, len(p)+power)

	for i := range p {
		r[i+power].Set(&p[i])
	}

	return trim(r)
}

func (p upoly) mul(q upoly) upoly {
	if len(p) == 0 || len(q) == 0 {
		return upoly{}
	}

	r := make(upoly, len(p)+len(q)-1)

	for i := range r {
		r[i].SetInt64(0)
	}

	var t big.Rat

	for i := range p {
		if p[i].Sign() == 0 {
			continue
		}

		for j := range q {
			t.Mul(&p[i], &q[j])
			r[i+j].Add(&r[i+j], &t)
		}
	}

	return trim(r)
}

// shiftSub computes p(c - x) as a polynomial in x, via repeated
// multiplication by the linear factor (c - x).
func (p upoly) shiftSub(c *big.Rat) upoly {
	var result upoly

	factor := linearXMinus(c) // represents x - c; we want (c - x) = -(x - c)
	negOne := big.NewRat(-1, 1)
	base := factor.scale(negOne)

	power := upoly{*big.NewRat(1, 1)}

	for i := 0; i <= p.degree(); i++ {
		result = result.add(power.scale(&p[i]))

		if i != p.degree() {
			power = power.mul(base)
		}
	}

	return trim(result)
}

// scaleVarsByPower builds G_k(x) = sum_i q[i] * z^i * x^(degQ - i), the
// polynomial used by the resultant-based multiplication construction, for
// a fixed value of z.
func scaleVarsByPower(q upoly, z *big.Rat) upoly {
	degQ := q.degree()
	r := make(upoly, degQ+1)

	zpow := big.NewRat(1, 1)

	for i := 0; i <= degQ; i++ {
		var t big.Rat

		t.Mul(&q[i], zpow)
		r[degQ-i] = t

		if i != degQ {
			zpow = new(big.Rat).Mul(zpow, z)
		}
	}

	return trim(r)
}

// eval evaluates p at a rational point via Horner's rule.
func (p upoly) eval(x *big.Rat) big.Rat {
	var acc big.Rat

	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(&acc, x)
		acc.Add(&acc, &p[i])
	}

	return acc
}

// derivative computes p'(x).
func (p upoly) derivative() upoly {
	if len(p) <= 1 {
		return upoly{}
	}

	r := make(upoly, len(p)-1)

	for i := 1; i < len(p); i++ {
		var c big.Rat

		c.SetInt64(int64(i))
		r[i-1].Mul(&p[i], &c)
	}

	return trim(r)
}

func (p upoly) isZero() bool {
	return len(trim(p)) == 0
}

func (p upoly) clone() upoly {
	r := make(upoly, len(p))
	copy(r, p)

	return r
}
