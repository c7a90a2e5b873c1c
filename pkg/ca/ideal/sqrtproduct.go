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

// sqrtProductRelations extends rule (b): when two generators are
// sqrt(a), sqrt(b) for non-negative rational constants a, b, and some
// generator in the same field is sqrt(a*b), the three principal real
// roots satisfy sqrt(a)*sqrt(b) - sqrt(a*b) = 0. build_ideal.c's own
// sqrt handling only relates a single radical to its own radicand
// (u^2-t); it never links two radicals of the same field to a third,
// so this relation is registered separately rather than folded into
// sqrtRelation, and is restricted to non-negative radicands where the
// principal branch makes the identity unconditional.
func sqrtProductRelations(gens []Generator) []*mpoly.Poly {
	radicand := make([]*big.Rat, len(gens))

	for i, g := range gens {
		radicand[i] = constantNonNegRadicand(g)
	}

	var out []*mpoly.Poly

	for i := range gens {
		if radicand[i] == nil {
			continue
		}

		for j := i + 1; j < len(gens); j++ {
			if radicand[j] == nil {
				continue
			}

			var prod big.Rat

			prod.Mul(radicand[i], radicand[j])

			for k := range gens {
				if radicand[k] == nil || radicand[k].Cmp(&prod) != 0 {
					continue
				}

				rel := mpoly.NewGen(uint(i)).Mul(mpoly.NewGen(uint(j))).Sub(mpoly.NewGen(uint(k)))
				out = append(out, rel)
			}
		}
	}

	return out
}

// constantNonNegRadicand reports g's radicand as a rational, when g is
// sqrt(t) for a lifted constant t >= 0.
func constantNonNegRadicand(g Generator) *big.Rat {
	if g.Kind != symbol.Function || g.Func != symbol.Sqrt || len(g.Args) != 1 {
		return nil
	}

	arg := g.Args[0]
	if !arg.Lifted {
		return nil
	}

	num, ok := arg.Fraction.Num.IsConstant()
	if !ok {
		return nil
	}

	den, ok := arg.Fraction.Den.IsConstant()
	if !ok {
		return nil
	}

	if num.Sign() < 0 || den.Sign() <= 0 {
		return nil
	}

	return new(big.Rat).SetFrac(&num, &den)
}
