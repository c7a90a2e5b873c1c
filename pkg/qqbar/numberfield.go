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

import "math/big"

// NumberFieldDescriptor describes a single simple algebraic extension
// Q(alpha), alpha a root of Defining, used as the NumberField field payload
// fast path (spec.md §5, "Field" kinds): arithmetic on elements of this
// field reduces to polynomial arithmetic modulo Defining instead of the
// general ideal-reduction machinery in pkg/ca/ideal, mirroring FLINT's
// nf_elem_t representation referenced by
// original_source/src/ca/merge_fields.c's shallow fmpz_poly extraction.
type NumberFieldDescriptor struct {
	Defining upoly
	Degree   int
}

// NewNumberFieldDescriptor builds a descriptor from a monic-izable defining
// polynomial (any nonzero leading coefficient is accepted; arithmetic below
// works directly with the stored rational coefficients so monic form is
// not required).
func NewNumberFieldDescriptor(defining upoly) NumberFieldDescriptor {
	return NumberFieldDescriptor{Defining: trim(defining), Degree: defining.degree()}
}

// NewNumberFieldFromValue builds the NumberFieldDescriptor for the simple
// extension Q(alpha) generated by alpha's annihilating polynomial, used by
// pkg/ca when a single-generator field is interned as a NumberField
// (spec.md §3.3).
func NewNumberFieldFromValue(v Value) NumberFieldDescriptor {
	return NewNumberFieldDescriptor(v.minPoly)
}

// AlphaAsElement returns the NFElem representing the generator alpha
// itself (coefficients [0, 1]), the starting point for lifting algebraic
// atoms into NumberField field payloads.
func (d NumberFieldDescriptor) AlphaAsElement() NFElem {
	if d.Degree <= 1 {
		return NFElem{Coeffs: upoly{}}
	}

	coeffs := make(upoly, 2)
	coeffs[0].SetInt64(0)
	coeffs[1].SetInt64(1)

	return NFElem{Coeffs: coeffs}
}

// ConstantElement returns the NFElem representing the rational constant v.
func (d NumberFieldDescriptor) ConstantElement(v *big.Rat) NFElem {
	return NFElem{Coeffs: constPoly(v)}
}

// NFElem is an element of a NumberFieldDescriptor's field: a polynomial of
// degree < Degree over the rationals, representing alpha's minimal
// polynomial quotient class.
type NFElem struct {
	Coeffs upoly
}

// NewNFElem wraps a coefficient slice (coeffs[i] being alpha^i's
// coefficient), reducing it modulo the descriptor's defining polynomial.
func (d NumberFieldDescriptor) NewNFElem(coeffs upoly) NFElem {
	return NFElem{Coeffs: d.reduce(coeffs)}
}

// reduce computes p mod Defining via plain polynomial long division over
// big.Rat (exact, since big.Rat is a field).
func (d NumberFieldDescriptor) reduce(p upoly) upoly {
	rem := p.clone()
	lead := d.Defining[d.Degree]

	for rem.degree() >= d.Degree {
		shift := rem.degree() - d.Degree

		var factor big.Rat

		factor.Quo(&rem[rem.degree()], &lead)

		term := d.Defining.mulX(shift).scale(&factor)
		rem = rem.add(term.scale(big.NewRat(-1, 1)))
	}

	return trim(rem)
}

// Add computes a+b within this field.
func (d NumberFieldDescriptor) Add(a, b NFElem) NFElem {
	return NFElem{Coeffs: d.reduce(a.Coeffs.add(b.Coeffs))}
}

// Sub computes a-b within this field.
func (d NumberFieldDescriptor) Sub(a, b NFElem) NFElem {
	return NFElem{Coeffs: d.reduce(a.Coeffs.add(b.Coeffs.scale(big.NewRat(-1, 1))))}
}

// Mul computes a*b within this field, reducing the raw product modulo the
// defining polynomial.
func (d NumberFieldDescriptor) Mul(a, b NFElem) NFElem {
	return NFElem{Coeffs: d.reduce(a.Coeffs.mul(b.Coeffs))}
}

// Neg computes -a.
func (d NumberFieldDescriptor) Neg(a NFElem) NFElem {
	return NFElem{Coeffs: a.Coeffs.scale(big.NewRat(-1, 1))}
}

// IsZero reports whether a is the zero element.
func (a NFElem) IsZero() bool {
	return a.Coeffs.isZero()
}

// Inv computes 1/a via the extended Euclidean algorithm on a.Coeffs and
// Defining, reporting false if a is zero.
func (d NumberFieldDescriptor) Inv(a NFElem) (NFElem, bool) {
	if a.IsZero() {
		return NFElem{}, false
	}

	_, s, _ := extendedGCD(a.Coeffs, d.Defining)

	return NFElem{Coeffs: d.reduce(s)}, true
}

// extendedGCD computes (g, s, t) such that s*a + t*b = g = gcd(a, b), over
// the field of rational-coefficient univariate polynomials.
func extendedGCD(a, b upoly) (g, s, t upoly) {
	oldR, r := a.clone(), b.clone()
	oldS, s1 := upoly{*big.NewRat(1, 1)}, upoly{}
	oldT, t1 := upoly{}, upoly{*big.NewRat(1, 1)}

	for !r.isZero() {
		q := polyDiv(oldR, r)
		oldR, r = r, oldR.add(q.mul(r).scale(big.NewRat(-1, 1)))
		oldS, s1 = s1, oldS.add(q.mul(s1).scale(big.NewRat(-1, 1)))
		oldT, t1 = t1, oldT.add(q.mul(t1).scale(big.NewRat(-1, 1)))
	}

	return oldR, oldS, oldT
}

// polyDiv returns the quotient of a/b (exact polynomial division over
// big.Rat coefficients, requiring b nonzero).
func polyDiv(a, b upoly) upoly {
	rem := a.clone()
	quot := upoly{}
	lead := b[b.degree()]

	for rem.degree() >= b.degree() && !rem.isZero() {
		shift := rem.degree() - b.degree()

		var factor big.Rat

		factor.Quo(&rem[rem.degree()], &lead)

		qterm := make(upoly, shift+1)
		qterm[shift] = factor
		quot = quot.add(qterm)

		rem = rem.add(b.mulX(shift).scale(&factor).scale(big.NewRat(-1, 1)))
	}

	return trim(quot)
}

// ToValue lifts an NFElem into a Value via its defining relation's root
// enclosure and the element's polynomial evaluated at that enclosure.
func (d NumberFieldDescriptor) ToValue(a NFElem, alphaEnclosure Value) Value {
	acc := FromInt64(0)
	power := FromInt64(1)

	for i := 0; i <= a.Coeffs.degree(); i++ {
		if a.Coeffs[i].Sign() != 0 {
			term := Mul(FromRat(&a.Coeffs[i]), power)
			acc = Add(acc, term)
		}

		if i != a.Coeffs.degree() {
			power = Mul(power, alphaEnclosure)
		}
	}

	return acc
}
