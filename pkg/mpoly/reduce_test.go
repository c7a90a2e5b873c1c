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

import (
	"math/big"
	"testing"
)

func Test_Reduce_00_ReducesModuloLinearRelation(t *testing.T) {
	// ideal: x - 2 (i.e. x == 2); reduce x^2 + 1, expect 5.
	x := NewGen(0)
	rel := x.Sub(NewConstant(big.NewInt(2)))

	p := x.Mul(x).Add(NewConstant(big.NewInt(1)))

	budget := DefaultReduceBudget(64, 64, 4096)
	got := Reduce(p, []*Poly{rel}, budget)

	want := NewConstant(big.NewInt(5))
	if !got.Equals(want) {
		t.Errorf("Reduce(x^2+1, [x-2]) = %s, want %s", got, want)
	}
}

func Test_Reduce_01_ZeroStepsBudgetLeavesUnreduced(t *testing.T) {
	x := NewGen(0)
	rel := x.Sub(NewConstant(big.NewInt(2)))

	budget := ReduceBudget{MaxSteps: 0, MaxPolyLen: 64, MaxCoeffBits: 4096}
	got := Reduce(x, []*Poly{rel}, budget)

	if !got.Equals(x) {
		t.Errorf("Reduce with MaxSteps=0 should be a no-op, got %s", got)
	}
}

func Test_Reduce_02_ReduceFractionReducesBothParts(t *testing.T) {
	x := NewGen(0)
	rel := x.Sub(NewConstant(big.NewInt(3)))

	f := NewFraction(x.Mul(x), x.Add(NewConstant(big.NewInt(1))))

	budget := DefaultReduceBudget(64, 64, 4096)
	got := ReduceFraction(f, []*Poly{rel}, budget)

	want := NewFraction(NewConstant(big.NewInt(9)), NewConstant(big.NewInt(4)))
	if !fractionsEqual(got, want) {
		t.Errorf("ReduceFraction = %s, want %s", got, want)
	}
}
