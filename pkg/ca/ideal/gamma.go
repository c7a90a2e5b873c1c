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
package ideal

import (
	"math/big"

	"github.com/anthropic-sandbox/ca/pkg/ca/symbol"
	"github.com/anthropic-sandbox/ca/pkg/mpoly"
)

// gammaShiftRelations implements spec.md §4.5 rule (c): when two
// generators are Gamma(a) and Gamma(a+n) for the same lifted argument a
// and an integer shift n with |n| <= opts.GammaShiftLimit, contribute the
// Pochhammer relation between them (Gamma(a+n) =
// Gamma(a)*a*(a+1)*...*(a+n-1)). n == 0 means the two generators denote
// the same function call under a merely syntactically different
// argument representation, so the relation degenerates to gen_i -
// gen_j = 0 (ground-truth build_ideal_gamma.c handles this sub-case
// explicitly rather than treating it as "no shift found").
func gammaShiftRelations(gens []Generator, opts Options) []*mpoly.Poly {
	var out []*mpoly.Poly

	for i := range gens {
		if gens[i].Kind != symbol.Function || gens[i].Func != symbol.Gamma || len(gens[i].Args) != 1 {
			continue
		}

		for j := i + 1; j < len(gens); j++ {
			if gens[j].Kind != symbol.Function || gens[j].Func != symbol.Gamma || len(gens[j].Args) != 1 {
				continue
			}

			n, ok := integerShift(gens[i].Args[0], gens[j].Args[0])
			if !ok {
				continue
			}

			if n == 0 {
				out = append(out, mpoly.NewGen(uint(i)).Sub(mpoly.NewGen(uint(j))))
				continue
			}

			lo, hi, loGen, hiGen := i, j, uint(i), uint(j)
			if n < 0 {
				lo, hi, loGen, hiGen = j, i, uint(j), uint(i)
				n = -n
			}

			if n > opts.GammaShiftLimit {
				continue
			}

			if p := pochhammerRelation(gens[lo].Args[0].Fraction, loGen, hiGen, n); p != nil {
				out = append(out, p)
			}
		}
	}

	return out
}

// integerShift reports the integer n such that b's argument equals a's
// plus n, when both arguments lift to rational functions over the same
// denominator.
func integerShift(a, b Argument) (int, bool) {
	if !a.Lifted || !b.Lifted {
		return 0, false
	}

	if !a.Fraction.Den.Equals(b.Fraction.Den) {
		return 0, false
	}

	diffNum := b.Fraction.Num.Sub(a.Fraction.Num)

	c, isConst := diffNum.IsConstant()
	if !isConst {
		return 0, false
	}

	d, isConstDen := a.Fraction.Den.IsConstant()
	if !isConstDen {
		return 0, false
	}

	var q, r big.Int

	q.QuoRem(&c, &d, &r)
	if r.Sign() != 0 {
		return 0, false
	}

	return int(q.Int64()), true
}

// pochhammerRelation builds gen_hi * D^n - gen_lo * prod_{k=0}^{n-1}(num + k*D),
// where arg = num/D, as an ideal relation equating Gamma at arg+n with
// Gamma at arg.
func pochhammerRelation(arg mpoly.Fraction, loGen, hiGen uint, n int) *mpoly.Poly {
	d := arg.Den
	num := arg.Num

	prod := mpoly.NewConstant(big.NewInt(1))

	for k := 0; k < n; k++ {
		shifted := num.Add(d.MulScalar(big.NewInt(int64(k))))
		prod = prod.Mul(shifted)
	}

	dPowN := d.PowUint(uint(n))

	lhs := mpoly.NewGen(hiGen).Mul(dPowN)
	rhs := mpoly.NewGen(loGen).Mul(prod)

	return lhs.Sub(rhs)
}
