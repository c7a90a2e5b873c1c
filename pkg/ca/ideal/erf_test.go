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
	"testing"

	"github.com/anthropic-sandbox/ca/pkg/ca/symbol"
	"github.com/anthropic-sandbox/ca/pkg/mpoly"
)

func constArg(p *mpoly.Poly) Argument {
	return Argument{Lifted: true, Fraction: mpoly.NewFraction(p, mpoly.NewConstant(big.NewInt(1)))}
}

func Test_Erf_00_ErfPlusErfcIsOne(t *testing.T) {
	arg := constArg(mpoly.NewGen(3))

	gens := []Generator{
		{Kind: symbol.Function, Func: symbol.Erf, Args: []Argument{arg}},
		{Kind: symbol.Function, Func: symbol.Erfc, Args: []Argument{arg}},
	}

	rels := erfFamilyRelations(gens, Options{})
	if len(rels) != 1 {
		t.Fatalf("erfFamilyRelations() = %d relations, want 1", len(rels))
	}

	env := map[uint]*big.Rat{0: big.NewRat(3, 10), 1: big.NewRat(7, 10)}
	got := evalRat(rels[0], env)
	if got.Sign() != 0 {
		t.Errorf("erf+erfc-1 at (0.3, 0.7) = %s, want 0", got.RatString())
	}
}

func Test_Erf_01_DifferentArgumentsContributeNothing(t *testing.T) {
	argA := constArg(mpoly.NewGen(3))
	argB := constArg(mpoly.NewGen(4))

	gens := []Generator{
		{Kind: symbol.Function, Func: symbol.Erf, Args: []Argument{argA}},
		{Kind: symbol.Function, Func: symbol.Erfc, Args: []Argument{argB}},
	}

	rels := erfFamilyRelations(gens, Options{})
	if len(rels) != 0 {
		t.Errorf("erfFamilyRelations() with distinct arguments = %d, want 0", len(rels))
	}
}

func Test_Erf_02_SameFamilySameArgCollapses(t *testing.T) {
	arg := constArg(mpoly.NewGen(3))

	gens := []Generator{
		{Kind: symbol.Function, Func: symbol.Erf, Args: []Argument{arg}},
		{Kind: symbol.Function, Func: symbol.Erf, Args: []Argument{arg}},
	}

	rels := erfFamilyRelations(gens, Options{})
	if len(rels) != 1 {
		t.Fatalf("erfFamilyRelations() = %d relations, want 1", len(rels))
	}

	env := map[uint]*big.Rat{0: big.NewRat(2, 5), 1: big.NewRat(2, 5)}
	if got := evalRat(rels[0], env); got.Sign() != 0 {
		t.Errorf("erf(x)-erf(x) = %s, want 0", got.RatString())
	}
}

func Test_Erf_03_OppositeArgumentRelations(t *testing.T) {
	x := constArg(mpoly.NewGen(3))
	negX := constArg(mpoly.NewGen(3).Neg())

	cases := []struct {
		name   string
		fi, fj symbol.FuncCode
		env    map[uint]*big.Rat
	}{
		{"erf+erf(-x)=0", symbol.Erf, symbol.Erf, map[uint]*big.Rat{0: big.NewRat(3, 10), 1: big.NewRat(-3, 10)}},
		{"erfc+erfc(-x)=2", symbol.Erfc, symbol.Erfc, map[uint]*big.Rat{0: big.NewRat(7, 10), 1: big.NewRat(13, 10)}},
		{"erf-erfc(-x)+1=0", symbol.Erf, symbol.Erfc, map[uint]*big.Rat{0: big.NewRat(3, 10), 1: big.NewRat(13, 10)}},
		{"erfc-erf(-x)-1=0", symbol.Erfc, symbol.Erf, map[uint]*big.Rat{0: big.NewRat(7, 10), 1: big.NewRat(-3, 10)}},
	}

	for _, c := range cases {
		gens := []Generator{
			{Kind: symbol.Function, Func: c.fi, Args: []Argument{x}},
			{Kind: symbol.Function, Func: c.fj, Args: []Argument{negX}},
		}

		rels := erfFamilyRelations(gens, Options{})
		if len(rels) != 1 {
			t.Fatalf("%s: erfFamilyRelations() = %d relations, want 1", c.name, len(rels))
		}

		if got := evalRat(rels[0], c.env); got.Sign() != 0 {
			t.Errorf("%s at %v = %s, want 0", c.name, c.env, got.RatString())
		}
	}
}

func Test_Erf_04_MixedErfiIScaled(t *testing.T) {
	x := constArg(mpoly.NewGen(3))
	ix := constArg(mpoly.NewGen(3).Mul(mpoly.NewGen(6)))

	gens := []Generator{
		{Kind: symbol.Function, Func: symbol.Erf, Args: []Argument{x}},
		{Kind: symbol.Function, Func: symbol.Erfi, Args: []Argument{ix}},
	}

	rels := erfFamilyRelations(gens, Options{HasI: true, IGenIndex: 6})
	if len(rels) != 3 {
		t.Fatalf("erfFamilyRelations() with HasI = %d relations, want 3 (linear, linear, quadratic)", len(rels))
	}
}

func Test_Erf_05_MixedErfiNegIScaled(t *testing.T) {
	x := constArg(mpoly.NewGen(3))
	negIx := constArg(mpoly.NewGen(3).Mul(mpoly.NewGen(6)).Neg())

	gens := []Generator{
		{Kind: symbol.Function, Func: symbol.Erfc, Args: []Argument{x}},
		{Kind: symbol.Function, Func: symbol.Erfi, Args: []Argument{negIx}},
	}

	rels := erfFamilyRelations(gens, Options{HasI: true, IGenIndex: 6})
	if len(rels) != 3 {
		t.Fatalf("erfFamilyRelations() with HasI = %d relations, want 3 (linear, linear, quadratic)", len(rels))
	}
}

func Test_Erf_06_NoRelationWithoutHasI(t *testing.T) {
	x := constArg(mpoly.NewGen(3))
	ix := constArg(mpoly.NewGen(3).Mul(mpoly.NewGen(6)))

	gens := []Generator{
		{Kind: symbol.Function, Func: symbol.Erf, Args: []Argument{x}},
		{Kind: symbol.Function, Func: symbol.Erfi, Args: []Argument{ix}},
	}

	rels := erfFamilyRelations(gens, Options{HasI: false})
	if len(rels) != 0 {
		t.Errorf("erfFamilyRelations() without HasI = %d, want 0", len(rels))
	}
}
