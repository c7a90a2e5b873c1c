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

import "math/big"

// ReduceBudget bounds the work a single Reduce call may perform, matching
// spec.md §4.6's requirement that reduction work be budgeted against the
// Gröbner option ceilings rather than run to completion unconditionally.
type ReduceBudget struct {
	// MaxSteps bounds the number of leading-term division steps performed.
	MaxSteps uint
	// MaxPolyLen bounds the number of terms the working remainder may grow
	// to before reduction gives up (returning the partially-reduced
	// result).
	MaxPolyLen uint
	// MaxCoeffBits bounds the bit-length of any coefficient produced
	// during reduction.
	MaxCoeffBits uint
}

// Reduce computes p modulo the ideal generated by gens, using repeated
// leading-monomial division (no Gröbner basis completion is performed, per
// spec.md §4.5/§4.6 — the stored generators are used as-is). This is not
// guaranteed to detect every element of the ideal; it is a best-effort,
// budget-limited pass whose failure to reduce a true zero to the literal
// zero polynomial is expected to be compensated by the interval oracle
// (see pkg/ca/arithmetic.go IsZero).
func Reduce(p *Poly, gens []*Poly, budget ReduceBudget) *Poly {
	rem := p.Clone()
	steps := uint(0)

	for steps < budget.MaxSteps {
		reducedOnce := false

		for _, g := range gens {
			if g.IsZero() {
				continue
			}

			lead := g.terms[0]

			for _, t := range rem.terms {
				if lead.Mono.Divides(t.Mono) && exactDivides(&t.Coeff, &lead.Coeff) {
					quotCoeff := new(big.Int).Quo(&t.Coeff, &lead.Coeff)
					quotMono := t.Mono.Div(lead.Mono)
					factor := NewPoly(Term{*quotCoeff, quotMono})

					rem = rem.Sub(factor.Mul(g))
					reducedOnce = true
					steps++

					break
				}
			}

			if reducedOnce {
				break
			}
		}

		if !reducedOnce {
			break
		}

		if rem.Len() > budget.MaxPolyLen || exceedsBits(rem, budget.MaxCoeffBits) {
			break
		}
	}

	return rem
}

func exactDivides(a, b *big.Int) bool {
	if b.Sign() == 0 {
		return false
	}

	var r big.Int

	r.Rem(a, b)

	return r.Sign() == 0
}

func exceedsBits(p *Poly, maxBits uint) bool {
	if maxBits == 0 {
		return false
	}

	for _, t := range p.terms {
		if uint(t.Coeff.BitLen()) > maxBits {
			return true
		}
	}

	return false
}

// DefaultReduceBudget returns a reasonable reduction budget derived from
// the field-wide option ceilings.
func DefaultReduceBudget(lengthLimit, polyLenLimit, bitsLimit uint) ReduceBudget {
	return ReduceBudget{MaxSteps: lengthLimit, MaxPolyLen: polyLenLimit, MaxCoeffBits: bitsLimit}
}

// ReduceFraction reduces both the numerator and denominator of a fraction
// modulo the given ideal generators.
func ReduceFraction(f Fraction, gens []*Poly, budget ReduceBudget) Fraction {
	return NewFraction(Reduce(f.Num, gens, budget), Reduce(f.Den, gens, budget))
}
