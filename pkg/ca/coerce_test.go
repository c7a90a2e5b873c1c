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
package ca

import (
	"math/big"
	"testing"

	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

func Test_Coerce_00_RationalElementCoerces(t *testing.T) {
	ctx := NewContext()
	x := FromRat(ctx, big.NewRat(2, 3))

	v, ok := ToAlgebraic(x)
	if !ok {
		t.Fatalf("ToAlgebraic(2/3) reported ok=false")
	}

	r, isRat := v.IsRational()
	if !isRat || r.Cmp(big.NewRat(2, 3)) != 0 {
		t.Errorf("ToAlgebraic(2/3) = %s, want 2/3", v.String())
	}
}

func Test_Coerce_01_NumberFieldElementCoerces(t *testing.T) {
	ctx := NewContext()
	x := I(ctx)

	v, ok := ToAlgebraic(x)
	if !ok {
		t.Fatalf("ToAlgebraic(i) reported ok=false")
	}

	sq, ok := qqbar.PowInt(v, 2)
	if !ok {
		t.Fatalf("PowInt(i, 2) failed")
	}

	r, isRat := sq.IsRational()
	if !isRat || r.Cmp(big.NewRat(-1, 1)) != 0 {
		t.Errorf("ToAlgebraic(i)^2 = %s, want -1", sq.String())
	}
}

func Test_Coerce_02_TranscendentalElementDoesNotCoerce(t *testing.T) {
	ctx := NewContext()
	x := Pi(ctx)

	if _, ok := ToAlgebraic(x); ok {
		t.Errorf("ToAlgebraic(pi) reported ok=true, want false")
	}
}

func Test_Coerce_03_SpecialElementDoesNotCoerce(t *testing.T) {
	if _, ok := ToAlgebraic(&Element{tag: Unknown}); ok {
		t.Errorf("ToAlgebraic(Unknown) reported ok=true, want false")
	}
}
