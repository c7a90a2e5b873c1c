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

func Test_Compose_00_ComposeGenRelabelsGenerators(t *testing.T) {
	// p = x0 + 2*x1^2, remapped so x0 -> x2, x1 -> x0.
	p := NewGen(0).Add(NewGen(1).PowUint(2).MulScalar(big.NewInt(2)))

	genMap := []uint{2, 0}
	got := ComposeGen(p, genMap)

	want := NewGen(2).Add(NewGen(0).PowUint(2).MulScalar(big.NewInt(2)))

	if !got.Equals(want) {
		t.Errorf("ComposeGen = %s, want %s", got, want)
	}
}

func Test_Compose_01_ComposeGenIdentityIsNoOp(t *testing.T) {
	p := NewGen(0).Mul(NewGen(1)).Add(NewConstant(big.NewInt(5)))

	got := ComposeGen(p, []uint{0, 1})
	if !got.Equals(p) {
		t.Errorf("identity ComposeGen changed the polynomial: %s -> %s", p, got)
	}
}

func Test_Compose_02_ComposeGenFractionAppliesToBothParts(t *testing.T) {
	f := NewFraction(NewGen(0), NewGen(1).Add(NewConstant(big.NewInt(1))))

	got := ComposeGenFraction(f, []uint{1, 0})
	want := NewFraction(NewGen(1), NewGen(0).Add(NewConstant(big.NewInt(1))))

	if !fractionsEqual(got, want) {
		t.Errorf("ComposeGenFraction = %s, want %s", got, want)
	}
}

func Test_Compose_03_SetFromUnivariateBuildsExpectedTerms(t *testing.T) {
	coeffs := []big.Int{*big.NewInt(1), *big.NewInt(0), *big.NewInt(3)}
	p := SetFromUnivariate(0, coeffs)

	want := NewConstant(big.NewInt(1)).Add(NewGen(0).PowUint(2).MulScalar(big.NewInt(3)))

	if !p.Equals(want) {
		t.Errorf("SetFromUnivariate = %s, want %s", p, want)
	}
}
