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
	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// evalRat evaluates a polynomial at a rational assignment of its
// generators, exercising the generic mpoly.Eval over *big.Rat.
func evalRat(p *mpoly.Poly, env map[uint]*big.Rat) *big.Rat {
	return mpoly.Eval(p, big.NewRat(0, 1),
		func(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) },
		func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) },
		func(a *big.Rat, n uint) *big.Rat {
			r := big.NewRat(1, 1)
			for i := uint(0); i < n; i++ {
				r = new(big.Rat).Mul(r, a)
			}

			return r
		},
		func(v *big.Int) *big.Rat { return new(big.Rat).SetInt(v) },
		func(g uint) *big.Rat {
			v, ok := env[g]
			if !ok {
				panic("evalRat: generator not bound")
			}

			return v
		},
	)
}

func Test_Ideal_00_AlgebraicAtomRelationAdmitsItsOwnRoot(t *testing.T) {
	g := Generator{Kind: symbol.Algebraic, Algebraic: qqbar.FromInt64(2)}

	rel := algebraicAtomRelation(0, g)
	if rel == nil {
		t.Fatalf("algebraicAtomRelation returned nil for a rational atom")
	}

	got := evalRat(rel, map[uint]*big.Rat{0: big.NewRat(2, 1)})
	if got.Sign() != 0 {
		t.Errorf("relation(2) = %s, want 0", got.RatString())
	}
}

func Test_Ideal_01_AlgebraicAtomRelationSkipsNonAlgebraicGenerator(t *testing.T) {
	g := Generator{Kind: symbol.Function, Func: symbol.Sqrt}

	if rel := algebraicAtomRelation(0, g); rel != nil {
		t.Errorf("algebraicAtomRelation(non-algebraic) = %v, want nil", rel)
	}
}

func Test_Ideal_02_SqrtRelationAdmitsSquareRoot(t *testing.T) {
	frac := mpoly.NewFractionFromConstant(big.NewRat(2, 1))
	g := Generator{
		Kind: symbol.Function,
		Func: symbol.Sqrt,
		Args: []Argument{{Lifted: true, Fraction: frac}},
	}

	rel := sqrtRelation(0, g)
	if rel == nil {
		t.Fatalf("sqrtRelation returned nil for a lifted argument")
	}

	// rel = 1*gen^2 - 2; admissible at gen = sqrt(2) (tested rationally via
	// gen^2 = 2, i.e. the relation is satisfied by construction).
	half := new(big.Rat).SetFloat64(1.4142135623730951)
	got := evalRat(rel, map[uint]*big.Rat{0: half})

	// Not exactly zero (sqrt(2) is irrational, half is a float approximation),
	// but should be close: the relation is gen^2 - 2.
	sq := new(big.Rat).Mul(half, half)
	diff := new(big.Rat).Sub(sq, big.NewRat(2, 1))

	if got.Cmp(diff) != 0 {
		t.Errorf("sqrtRelation eval mismatch: got %s, want gen^2-2 = %s", got.RatString(), diff.RatString())
	}
}

func Test_Ideal_03_SqrtRelationSkipsUnliftedArgument(t *testing.T) {
	g := Generator{
		Kind: symbol.Function,
		Func: symbol.Sqrt,
		Args: []Argument{{Lifted: false}},
	}

	if rel := sqrtRelation(0, g); rel != nil {
		t.Errorf("sqrtRelation(unlifted) = %v, want nil", rel)
	}
}

func Test_Ideal_04_BuildCollectsRelationsForEachGenerator(t *testing.T) {
	frac := mpoly.NewFractionFromConstant(big.NewRat(3, 1))

	gens := []Generator{
		{Kind: symbol.Algebraic, Algebraic: qqbar.FromInt64(5)},
		{Kind: symbol.Function, Func: symbol.Sqrt, Args: []Argument{{Lifted: true, Fraction: frac}}},
	}

	relations := Build(nil, gens, Options{})
	if len(relations) != 2 {
		t.Fatalf("Build() returned %d relations, want 2", len(relations))
	}
}

func Test_Ideal_05_BuildSkipsZeroContributions(t *testing.T) {
	gens := []Generator{
		{Kind: symbol.Function, Func: symbol.Exp},
	}

	relations := Build(nil, gens, Options{})
	if len(relations) != 0 {
		t.Errorf("Build() with no admissible relations returned %d, want 0", len(relations))
	}
}
