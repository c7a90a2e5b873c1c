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
	"bytes"
	"math/big"
	"slices"
)

// Poly represents a multivariate polynomial with big.Int coefficients as a
// sorted (by Monomial.Cmp, leading term first) slice of non-zero terms. The
// nil/empty Poly represents zero, following pkg/util/poly/array_poly.go's
// convention that an uninitialised polynomial is zero.
type Poly struct {
	terms []Term
}

// Zero is the zero polynomial.
var Zero = &Poly{}

// NewPoly constructs a polynomial from zero or more terms, combining
// repeated monomials and dropping zero coefficients.
func NewPoly(terms ...Term) *Poly {
	var p Poly

	for _, t := range terms {
		p.AddTerm(t)
	}

	return &p
}

// NewConstant constructs a constant polynomial.
func NewConstant(v *big.Int) *Poly {
	if v.Sign() == 0 {
		return &Poly{}
	}

	return &Poly{[]Term{{*v, One}}}
}

// NewGen constructs the polynomial consisting of a single generator.
func NewGen(gen uint) *Poly {
	return &Poly{[]Term{{*big.NewInt(1), NewMonomialPow(gen, 1)}}}
}

// Len returns the number of (non-zero) terms in this polynomial.
func (p *Poly) Len() uint {
	if p == nil {
		return 0
	}

	return uint(len(p.terms))
}

// Term returns the ith term (0 being the leading term under Monomial.Cmp).
func (p *Poly) Term(i uint) Term {
	return p.terms[i]
}

// IsZero determines whether this is the zero polynomial. Unlike the
// three-valued Polynomial.IsZero of pkg/util/poly, this is syntactic: it
// reflects only whether every term has cancelled, not whether the
// polynomial is semantically zero modulo some ideal (that question is
// answered by mpoly.Reduce plus the ca engine's interval oracle).
func (p *Poly) IsZero() bool {
	return p.Len() == 0
}

// IsConstant determines whether this polynomial is a (possibly zero)
// constant, returning that constant.
func (p *Poly) IsConstant() (big.Int, bool) {
	if p.Len() == 0 {
		return *big.NewInt(0), true
	}

	if p.Len() == 1 && p.terms[0].Mono.IsOne() {
		return p.terms[0].Coeff, true
	}

	return big.Int{}, false
}

// Clone performs a deep copy of this polynomial.
func (p *Poly) Clone() *Poly {
	if p == nil {
		return &Poly{}
	}

	terms := make([]Term, len(p.terms))
	for i := range terms {
		terms[i] = p.terms[i].Clone()
	}

	return &Poly{terms}
}

// Equals performs structural equality between two polynomials (not ideal
// membership equality).
func (p *Poly) Equals(o *Poly) bool {
	if p.Len() != o.Len() {
		return false
	}

	for i := range p.terms {
		if p.terms[i].Coeff.Cmp(&o.terms[i].Coeff) != 0 || !p.terms[i].Mono.Equals(o.terms[i].Mono) {
			return false
		}
	}

	return true
}

// AddTerm inserts a single term into this polynomial in place, maintaining
// the sorted-by-leading-monomial invariant and merging/cancelling matching
// monomials.
func (p *Poly) AddTerm(t Term) {
	if t.IsZero() {
		return
	}

	for i := range p.terms {
		if p.terms[i].Mono.Equals(t.Mono) {
			p.terms[i].Coeff.Add(&p.terms[i].Coeff, &t.Coeff)

			if p.terms[i].Coeff.Sign() == 0 {
				p.terms = append(p.terms[:i], p.terms[i+1:]...)
			}

			return
		}
	}

	idx, _ := slices.BinarySearchFunc(p.terms, t, func(a, b Term) int { return a.Mono.Cmp(b.Mono) })
	p.terms = slices.Insert(p.terms, idx, t.Clone())
}

// Add returns the sum of two polynomials.
func (p *Poly) Add(o *Poly) *Poly {
	res := p.Clone()

	for i := range o.terms {
		res.AddTerm(o.terms[i])
	}

	return res
}

// Sub returns the difference of two polynomials.
func (p *Poly) Sub(o *Poly) *Poly {
	res := p.Clone()

	for i := range o.terms {
		res.AddTerm(o.terms[i].Neg())
	}

	return res
}

// Neg returns the negation of this polynomial.
func (p *Poly) Neg() *Poly {
	var zero Poly
	return zero.Sub(p)
}

// Mul returns the product of two polynomials.
func (p *Poly) Mul(o *Poly) *Poly {
	var res Poly

	for i := range p.terms {
		for j := range o.terms {
			res.AddTerm(p.terms[i].Mul(o.terms[j]))
		}
	}

	return &res
}

// MulScalar returns this polynomial multiplied by an integer scalar.
func (p *Poly) MulScalar(scalar *big.Int) *Poly {
	if scalar.Sign() == 0 {
		return &Poly{}
	}

	var res Poly

	for i := range p.terms {
		var c big.Int

		c.Mul(&p.terms[i].Coeff, scalar)
		res.terms = append(res.terms, Term{c, p.terms[i].Mono})
	}

	return &res
}

// PowUint raises this polynomial to a non-negative integer power by
// repeated squaring.
func (p *Poly) PowUint(n uint) *Poly {
	result := NewConstant(big.NewInt(1))
	base := p

	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}

		base = base.Mul(base)
		n >>= 1
	}

	return result
}

// Generators returns the sorted, distinct set of generator indices
// appearing anywhere in this polynomial.
func (p *Poly) Generators() []uint {
	seen := map[uint]bool{}

	for _, t := range p.terms {
		for _, v := range t.Mono.Generators() {
			seen[v] = true
		}
	}

	out := make([]uint, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}

	slices.Sort(out)

	return out
}

// Eval evaluates this polynomial given an assignment of generator index to
// value.
func Eval[V any](p *Poly, zero V, add func(V, V) V, mul func(V, V) V, pow func(V, uint) V, fromInt func(*big.Int) V, env func(uint) V) V {
	acc := zero

	for _, t := range p.terms {
		term := fromInt(&t.Coeff)

		for i, v := range t.Mono.vars {
			term = mul(term, pow(env(v), t.Mono.exps[i]))
		}

		acc = add(acc, term)
	}

	return acc
}

func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}

	var buf bytes.Buffer

	for i, t := range p.terms {
		if i != 0 && t.Coeff.Sign() >= 0 {
			buf.WriteString("+")
		}

		if t.Mono.IsOne() {
			buf.WriteString(t.Coeff.String())
		} else if t.Coeff.Cmp(big.NewInt(1)) == 0 {
			buf.WriteString(t.Mono.String())
		} else if t.Coeff.Cmp(big.NewInt(-1)) == 0 {
			buf.WriteString("-")
			buf.WriteString(t.Mono.String())
		} else {
			buf.WriteString(t.Coeff.String())
			buf.WriteString("*")
			buf.WriteString(t.Mono.String())
		}
	}

	return buf.String()
}
