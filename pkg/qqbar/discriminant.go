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

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// smallPrimeBound bounds the trial-division sweep performed by
// FactorSquarePart before falling back to the modular pre-filter.
const smallPrimeBound = 1 << 16

// FactorSquarePart splits |n| = square * squareFree, where square^2 divides
// n and squareFree is the (believed) square-free cofactor, for the degree-2
// algebraic-number hoist described in spec.md §4.9 (simplifying
// sqrt(n) = square * sqrt(squareFree) whenever the Sqrt extension's radicand
// carries a perfect-square factor). Trial division handles small prime
// powers directly; for the remaining cofactor, likelySquareModP is used as
// a cheap Euler-criterion pre-filter -- computed via gnark-crypto's
// fixed-width bn254 scalar field arithmetic, which is dramatically faster
// than big.Int modular exponentiation at this bit width -- to decide
// whether an expensive exact big.Int ISqrt attempt on the cofactor is worth
// making at all.
func FactorSquarePart(n *big.Int) (square, squareFree *big.Int) {
	if n.Sign() == 0 {
		return big.NewInt(0), big.NewInt(0)
	}

	rem := new(big.Int).Abs(n)
	sq := big.NewInt(1)

	p := big.NewInt(2)
	for p.Cmp(big.NewInt(smallPrimeBound)) < 0 && rem.Cmp(big.NewInt(1)) > 0 {
		for {
			q, r := new(big.Int), new(big.Int)
			q.QuoRem(rem, p, r)

			if r.Sign() != 0 {
				break
			}

			q2, r2 := new(big.Int), new(big.Int)
			q2.QuoRem(q, p, r2)

			if r2.Sign() != 0 {
				break
			}

			rem = q2
			sq.Mul(sq, p)
		}

		p.Add(p, big.NewInt(1))
	}

	if rem.Cmp(big.NewInt(1)) > 0 && likelySquareModP(rem) {
		if root, exact := isqrtExact(rem); exact {
			sq.Mul(sq, root)
			rem = big.NewInt(1)
		}
	}

	return sq, rem
}

// likelySquareModP reports whether n reduces to a quadratic residue modulo
// the bn254 scalar field's prime, via Euler's criterion n^((p-1)/2) == 1,
// computed with gnark-crypto's fr.Element fast fixed-width modular
// exponentiation. A false here conclusively rules out n being a perfect
// square (a square stays a residue under any reduction); a true is only a
// filter pass, not a proof, since the converse need not hold modulo a
// single prime.
func likelySquareModP(n *big.Int) bool {
	var x fr.Element

	x.SetBigInt(n)

	if x.IsZero() {
		return true
	}

	modulus := fr.Modulus()

	exp := new(big.Int).Sub(modulus, big.NewInt(1))
	exp.Rsh(exp, 1)

	var res fr.Element

	res.Exp(x, exp)

	var one fr.Element

	one.SetOne()

	return res.Equal(&one)
}

// isqrtExact returns (sqrt(n), true) if n is a perfect square, else
// (nil, false), via big.Int's Newton-iteration Sqrt plus a verifying
// multiplication.
func isqrtExact(n *big.Int) (*big.Int, bool) {
	root := new(big.Int).Sqrt(n)

	check := new(big.Int).Mul(root, root)
	if check.Cmp(n) == 0 {
		return root, true
	}

	return nil, false
}
