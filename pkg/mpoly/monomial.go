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

// Package mpoly provides a multivariate polynomial and rational-function
// layer over big.Int coefficients, generators identified by a small
// integer index. It generalises pkg/util/poly's Monomial/ArrayPoly (whose
// monomials are order-sensitive repeated-variable lists suited to
// constraint-system terms) to a canonical sorted-exponent-vector monomial
// suited to ideal membership reduction.
package mpoly

import (
	"bytes"
	"fmt"
	"math/big"
	"slices"
)

// Monomial is a product of generator powers, represented as a sparse,
// sorted-by-generator-index list of (generator, exponent) pairs. The empty
// monomial represents 1.
type Monomial struct {
	// vars holds generator indices in strictly increasing order.
	vars []uint
	// exps holds the corresponding (non-zero) exponents.
	exps []uint
}

// One is the empty monomial (degree zero, representing the constant 1).
var One = Monomial{}

// NewMonomial constructs a monomial from a (possibly unsorted, possibly
// repeated) list of generator indices, collapsing repeats into exponents.
func NewMonomial(vars ...uint) Monomial {
	counts := map[uint]uint{}
	for _, v := range vars {
		counts[v]++
	}

	return monomialFromCounts(counts)
}

// NewMonomialPow constructs the monomial consisting of a single generator
// raised to a given power (power zero yields One).
func NewMonomialPow(gen uint, exp uint) Monomial {
	if exp == 0 {
		return One
	}

	return Monomial{vars: []uint{gen}, exps: []uint{exp}}
}

func monomialFromCounts(counts map[uint]uint) Monomial {
	vars := make([]uint, 0, len(counts))

	for v, e := range counts {
		if e > 0 {
			vars = append(vars, v)
		}
	}

	slices.Sort(vars)

	exps := make([]uint, len(vars))
	for i, v := range vars {
		exps[i] = counts[v]
	}

	return Monomial{vars, exps}
}

// Degree returns the total degree of this monomial.
func (m Monomial) Degree() uint {
	var d uint
	for _, e := range m.exps {
		d += e
	}

	return d
}

// IsOne determines whether this monomial is the empty (constant) monomial.
func (m Monomial) IsOne() bool {
	return len(m.vars) == 0
}

// Exponent returns the exponent of a given generator within this monomial.
func (m Monomial) Exponent(gen uint) uint {
	for i, v := range m.vars {
		if v == gen {
			return m.exps[i]
		}
	}

	return 0
}

// Generators returns the (sorted, distinct) generators appearing in this
// monomial.
func (m Monomial) Generators() []uint {
	return slices.Clone(m.vars)
}

// Mul returns the product of two monomials.
func (m Monomial) Mul(o Monomial) Monomial {
	counts := map[uint]uint{}

	for i, v := range m.vars {
		counts[v] += m.exps[i]
	}

	for i, v := range o.vars {
		counts[v] += o.exps[i]
	}

	return monomialFromCounts(counts)
}

// Divides determines whether this monomial divides another, i.e. whether
// every generator exponent here is <= the corresponding exponent there.
func (m Monomial) Divides(o Monomial) bool {
	for i, v := range m.vars {
		if m.exps[i] > o.Exponent(v) {
			return false
		}
	}

	return true
}

// Div divides this monomial by another which must divide it.
func (m Monomial) Div(o Monomial) Monomial {
	counts := map[uint]uint{}

	for i, v := range m.vars {
		counts[v] += m.exps[i]
	}

	for i, v := range o.vars {
		counts[v] -= o.exps[i]
	}

	return monomialFromCounts(counts)
}

// Equals performs structural equality between two monomials.
func (m Monomial) Equals(o Monomial) bool {
	return slices.Equal(m.vars, o.vars) && slices.Equal(m.exps, o.exps)
}

// Cmp orders monomials for a graded lexicographic ordering: higher total
// degree first, then lexicographically by (generator, exponent) pairs.
// This is the ordering used when selecting "leading" monomials for
// reduction modulo the field's ideal (see mpoly.Reduce), which matches the
// engine's elimination order preference for more complex generators.
func (m Monomial) Cmp(o Monomial) int {
	if d1, d2 := m.Degree(), o.Degree(); d1 != d2 {
		if d1 > d2 {
			return -1
		}

		return 1
	}

	for i := 0; i < len(m.vars) && i < len(o.vars); i++ {
		if m.vars[i] != o.vars[i] {
			if m.vars[i] > o.vars[i] {
				return -1
			}

			return 1
		}

		if m.exps[i] != o.exps[i] {
			if m.exps[i] > o.exps[i] {
				return -1
			}

			return 1
		}
	}

	return len(o.vars) - len(m.vars)
}

func (m Monomial) String() string {
	if m.IsOne() {
		return "1"
	}

	var buf bytes.Buffer

	for i, v := range m.vars {
		if i != 0 {
			buf.WriteString("*")
		}

		if m.exps[i] == 1 {
			fmt.Fprintf(&buf, "x%d", v)
		} else {
			fmt.Fprintf(&buf, "x%d^%d", v, m.exps[i])
		}
	}

	return buf.String()
}

// Term is a coefficient paired with a monomial.
type Term struct {
	Coeff big.Int
	Mono  Monomial
}

// NewTerm constructs a term from a coefficient and monomial.
func NewTerm(coeff big.Int, mono Monomial) Term {
	return Term{coeff, mono}
}

// IsZero determines whether this term's coefficient is zero.
func (t Term) IsZero() bool {
	return t.Coeff.Sign() == 0
}

// Clone performs a deep copy of this term.
func (t Term) Clone() Term {
	var c big.Int

	c.Set(&t.Coeff)

	return Term{c, t.Mono}
}

// Neg returns the negation of this term.
func (t Term) Neg() Term {
	var c big.Int

	c.Neg(&t.Coeff)

	return Term{c, t.Mono}
}

// Mul returns the product of two terms.
func (t Term) Mul(o Term) Term {
	var c big.Int

	c.Mul(&t.Coeff, &o.Coeff)

	return Term{c, t.Mono.Mul(o.Mono)}
}
