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

// ComposeGen substitutes each generator i of src's ring with the generator
// genMap[i] of the destination ring, leaving coefficients unchanged. This
// is the Go equivalent of fmpz_mpoly_compose_fmpz_mpoly_gen used by
// original_source/src/ca/merge_fields.c to lift an operand's payload into
// the merged field's larger generator list.
func ComposeGen(src *Poly, genMap []uint) *Poly {
	var res Poly

	for _, t := range src.terms {
		mono := One

		for i, v := range t.Mono.vars {
			mono = mono.Mul(NewMonomialPow(genMap[v], t.Mono.exps[i]))
		}

		res.AddTerm(Term{t.Coeff, mono})
	}

	return &res
}

// ComposeGenFraction applies ComposeGen to both the numerator and
// denominator of a fraction.
func ComposeGenFraction(src Fraction, genMap []uint) Fraction {
	return NewFraction(ComposeGen(src.Num, genMap), ComposeGen(src.Den, genMap))
}

// SetFromUnivariate promotes a univariate polynomial (coefficients
// coeffs[0] + coeffs[1]*X + ...) in a single named generator into this
// (possibly multivariate) ring, matching fmpz_mpoly_set_gen_fmpz_poly's
// role in the §6 external interface to the polynomial layer.
func SetFromUnivariate(gen uint, coeffs []big.Int) *Poly {
	var res Poly

	for i, c := range coeffs {
		if c.Sign() == 0 {
			continue
		}

		res.AddTerm(Term{c, NewMonomialPow(gen, uint(i))})
	}

	return &res
}
