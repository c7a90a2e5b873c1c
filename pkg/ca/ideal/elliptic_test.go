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

func Test_Elliptic_00_LegendreRelationContributedForFullQuartet(t *testing.T) {
	m := Argument{Lifted: true, Fraction: mpoly.NewFraction(mpoly.NewGen(7), mpoly.NewConstant(big.NewInt(1)))}
	comp := Argument{Lifted: true, Fraction: mpoly.NewFraction(
		mpoly.NewConstant(big.NewInt(1)).Sub(mpoly.NewGen(7)), mpoly.NewConstant(big.NewInt(1)))}

	gens := []Generator{
		{Kind: symbol.Constant, Const: symbol.Pi},
		{Kind: symbol.Function, Func: symbol.EllipticK, Args: []Argument{m}},
		{Kind: symbol.Function, Func: symbol.EllipticE, Args: []Argument{m}},
		{Kind: symbol.Function, Func: symbol.EllipticK, Args: []Argument{comp}},
		{Kind: symbol.Function, Func: symbol.EllipticE, Args: []Argument{comp}},
	}

	rels := ellipticLegendreRelations(gens)
	if len(rels) != 1 {
		t.Fatalf("ellipticLegendreRelations() = %d relations, want 1", len(rels))
	}
}

func Test_Elliptic_01_NoRelationWithoutPiConstant(t *testing.T) {
	m := Argument{Lifted: true, Fraction: mpoly.NewFraction(mpoly.NewGen(7), mpoly.NewConstant(big.NewInt(1)))}
	comp := Argument{Lifted: true, Fraction: mpoly.NewFraction(
		mpoly.NewConstant(big.NewInt(1)).Sub(mpoly.NewGen(7)), mpoly.NewConstant(big.NewInt(1)))}

	gens := []Generator{
		{Kind: symbol.Function, Func: symbol.EllipticK, Args: []Argument{m}},
		{Kind: symbol.Function, Func: symbol.EllipticE, Args: []Argument{m}},
		{Kind: symbol.Function, Func: symbol.EllipticK, Args: []Argument{comp}},
		{Kind: symbol.Function, Func: symbol.EllipticE, Args: []Argument{comp}},
	}

	rels := ellipticLegendreRelations(gens)
	if len(rels) != 0 {
		t.Errorf("ellipticLegendreRelations() without pi = %d, want 0", len(rels))
	}
}

func Test_Elliptic_02_ComplementArgComputesOneMinusM(t *testing.T) {
	m := Argument{Lifted: true, Fraction: mpoly.NewFraction(mpoly.NewGen(7), mpoly.NewConstant(big.NewInt(1)))}

	comp, ok := complementArg(m)
	if !ok {
		t.Fatalf("complementArg(m) failed")
	}

	env := map[uint]*big.Rat{7: big.NewRat(1, 3)}
	got := evalRat(comp.Fraction.Num, env)
	want := big.NewRat(2, 3)

	if got.Cmp(want) != 0 {
		t.Errorf("complementArg(1/3).Num = %s, want %s", got.RatString(), want.RatString())
	}
}

func Test_Elliptic_03_MissingComplementSkipsRelation(t *testing.T) {
	m := Argument{Lifted: true, Fraction: mpoly.NewFraction(mpoly.NewGen(7), mpoly.NewConstant(big.NewInt(1)))}

	gens := []Generator{
		{Kind: symbol.Constant, Const: symbol.Pi},
		{Kind: symbol.Function, Func: symbol.EllipticK, Args: []Argument{m}},
		{Kind: symbol.Function, Func: symbol.EllipticE, Args: []Argument{m}},
	}

	rels := ellipticLegendreRelations(gens)
	if len(rels) != 0 {
		t.Errorf("ellipticLegendreRelations() without the complementary pair = %d, want 0", len(rels))
	}
}
