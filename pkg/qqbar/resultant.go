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

// sylvesterResultant computes the resultant of two univariate polynomials
// with rational coefficients as the determinant of their Sylvester matrix.
// Since big.Rat is an exact field, plain Gaussian elimination (no pivoting
// needed for correctness, only to avoid dividing by a zero pivot) computes
// the determinant exactly.
func sylvesterResultant(f, g upoly) big.Rat {
	df := f.degree()
	dg := g.degree()

	if df < 0 || dg < 0 {
		return *big.NewRat(0, 1)
	}

	n := df + dg
	m := make([][]big.Rat, n)

	for i := range m {
		m[i] = make([]big.Rat, n)
		for j := range m[i] {
			m[i][j].SetInt64(0)
		}
	}

	// dg copies of f's coefficients (highest degree first, per row)
	for r := 0; r < dg; r++ {
		for i, c := range f {
			m[r][r+i].Set(&c)
		}
	}

	// df copies of g's coefficients
	for r := 0; r < df; r++ {
		for i, c := range g {
			m[dg+r][r+i].Set(&c)
		}
	}

	return determinant(m)
}

// determinant computes the determinant of a square matrix of big.Rat via
// Gaussian elimination with row swaps on zero pivots.
func determinant(m [][]big.Rat) big.Rat {
	n := len(m)
	det := big.NewRat(1, 1)

	for col := 0; col < n; col++ {
		pivot := -1

		for row := col; row < n; row++ {
			if m[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}

		if pivot == -1 {
			return *big.NewRat(0, 1)
		}

		if pivot != col {
			m[pivot], m[col] = m[col], m[pivot]
			det.Neg(det)
		}

		det.Mul(det, &m[col][col])

		var inv big.Rat

		inv.Inv(&m[col][col])

		for row := col + 1; row < n; row++ {
			if m[row][col].Sign() == 0 {
				continue
			}

			var factor big.Rat

			factor.Mul(&m[row][col], &inv)

			for k := col; k < n; k++ {
				var t big.Rat

				t.Mul(&factor, &m[col][k])
				m[row][k].Sub(&m[row][k], &t)
			}
		}
	}

	return *det
}

// lagrangeInterpolate reconstructs the unique polynomial of degree <=
// len(points)-1 passing through the given (x, y) sample pairs.
func lagrangeInterpolate(xs []big.Rat, ys []big.Rat) upoly {
	n := len(xs)
	result := upoly{}

	for i := 0; i < n; i++ {
		term := upoly{*big.NewRat(1, 1)}
		denom := big.NewRat(1, 1)

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}

			term = term.mul(linearXMinus(&xs[j]))

			var diff big.Rat

			diff.Sub(&xs[i], &xs[j])
			denom.Mul(denom, &diff)
		}

		var invDenom big.Rat

		invDenom.Inv(denom)

		var coeff big.Rat

		coeff.Mul(&ys[i], &invDenom)

		result = result.add(term.scale(&coeff))
	}

	return trim(result)
}

// resultantPolyForSum builds a polynomial (in z) annihilating a+b for any
// root a of f and root b of g, via resultant_x(f(x), g(z-x)) computed by
// sampling+interpolation (degree bound deg(f)*deg(g)).
func resultantPolyForSum(f, g upoly) upoly {
	df, dg := f.degree(), g.degree()
	bound := df * dg

	xs := make([]big.Rat, bound+1)
	ys := make([]big.Rat, bound+1)

	for k := 0; k <= bound; k++ {
		xs[k].SetInt64(int64(k))

		shifted := g.shiftSub(&xs[k])
		ys[k] = sylvesterResultant(f, shifted)
	}

	return lagrangeInterpolate(xs, ys)
}

// resultantPolyForProduct builds a polynomial (in z) annihilating a*b for
// any root a of f and root b of g, via
// resultant_x(f(x), x^deg(g) * g(z/x)) computed by sampling+interpolation.
func resultantPolyForProduct(f, g upoly) upoly {
	df, dg := f.degree(), g.degree()
	bound := df * dg

	xs := make([]big.Rat, bound+1)
	ys := make([]big.Rat, bound+1)

	for k := 0; k <= bound; k++ {
		xs[k].SetInt64(int64(k + 1)) // avoid z=0, which degenerates x^dg*g(z/x)

		scaled := scaleVarsByPower(g, &xs[k])
		ys[k] = sylvesterResultant(f, scaled)
	}

	return lagrangeInterpolate(xs, ys)
}
