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

// ellipticLegendreRelations implements spec.md §4.5 rule (e): the
// Legendre relation E(m)K(1-m) + E(1-m)K(m) - K(m)K(1-m) = pi/2 between
// complete elliptic integrals at complementary moduli m and 1-m,
// contributed whenever all four generators plus a Pi constant generator
// are present among gens.
func ellipticLegendreRelations(gens []Generator) []*mpoly.Poly {
	piGen, hasPi := findConstant(gens, symbol.Pi)
	if !hasPi {
		return nil
	}

	var out []*mpoly.Poly

	for i := range gens {
		if gens[i].Kind != symbol.Function || gens[i].Func != symbol.EllipticK || len(gens[i].Args) != 1 {
			continue
		}

		kmArg := gens[i].Args[0]
		if !kmArg.Lifted {
			continue
		}

		eGen, ok := findFunctionAtArg(gens, symbol.EllipticE, kmArg)
		if !ok {
			continue
		}

		compArg, ok := complementArg(kmArg)
		if !ok {
			continue
		}

		kCompGen, ok := findFunctionAtArg(gens, symbol.EllipticK, compArg)
		if !ok {
			continue
		}

		eCompGen, ok := findFunctionAtArg(gens, symbol.EllipticE, compArg)
		if !ok {
			continue
		}

		kGen, eMGen, kCompG, eCompG := uint(i), eGen, kCompGen, eCompGen

		lhs := mpoly.NewGen(eMGen).Mul(mpoly.NewGen(kCompG)).
			Add(mpoly.NewGen(eCompG).Mul(mpoly.NewGen(kGen))).
			Sub(mpoly.NewGen(kGen).Mul(mpoly.NewGen(kCompG)))

		rel := lhs.MulScalar(big.NewInt(2)).Sub(mpoly.NewGen(piGen))

		out = append(out, rel)
	}

	return out
}

func findConstant(gens []Generator, c symbol.ConstCode) (uint, bool) {
	for i, g := range gens {
		if g.Kind == symbol.Constant && g.Const == c {
			return uint(i), true
		}
	}

	return 0, false
}

func findFunctionAtArg(gens []Generator, fn symbol.FuncCode, arg Argument) (uint, bool) {
	for i, g := range gens {
		if g.Kind != symbol.Function || g.Func != fn || len(g.Args) != 1 {
			continue
		}

		a := g.Args[0]
		if a.Lifted && arg.Lifted && a.Fraction.Num.Equals(arg.Fraction.Num) && a.Fraction.Den.Equals(arg.Fraction.Den) {
			return uint(i), true
		}
	}

	return 0, false
}

// complementArg computes 1-m for a lifted argument m = num/den.
func complementArg(m Argument) (Argument, bool) {
	if !m.Lifted {
		return Argument{}, false
	}

	num := m.Fraction.Den.Sub(m.Fraction.Num)

	return Argument{Lifted: true, Fraction: mpoly.NewFraction(num, m.Fraction.Den)}, true
}
