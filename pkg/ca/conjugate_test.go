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
)

func Test_Conjugate_00_DoubleConjugateIsIdentity(t *testing.T) {
	ctx := NewContext()

	x := Add(ctx, Sqrt(ctx, FromInt64(ctx, 2)), Mul(ctx, FromInt64(ctx, 3), I(ctx)))

	got := Conjugate(ctx, Conjugate(ctx, x))
	mustZero(t, ctx, Sub(ctx, got, x), "conj(conj(x)) == x")
}

func Test_Conjugate_01_DistributesOverAdd(t *testing.T) {
	ctx := NewContext()

	x := Mul(ctx, FromInt64(ctx, 2), I(ctx))
	y := Add(ctx, FromInt64(ctx, 1), I(ctx))

	lhs := Conjugate(ctx, Add(ctx, x, y))
	rhs := Add(ctx, Conjugate(ctx, x), Conjugate(ctx, y))

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "conj(x+y) == conj(x)+conj(y)")
}

func Test_Conjugate_02_DistributesOverMul(t *testing.T) {
	ctx := NewContext()

	x := Add(ctx, FromInt64(ctx, 1), I(ctx))
	y := Sub(ctx, FromInt64(ctx, 2), I(ctx))

	lhs := Conjugate(ctx, Mul(ctx, x, y))
	rhs := Mul(ctx, Conjugate(ctx, x), Conjugate(ctx, y))

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "conj(x*y) == conj(x)*conj(y)")
}

func Test_Conjugate_03_TimesConjugateIsAbsSquared(t *testing.T) {
	ctx := NewContext()

	x := Add(ctx, FromInt64(ctx, 3), Mul(ctx, FromInt64(ctx, 4), I(ctx)))

	lhs := Mul(ctx, x, Conjugate(ctx, x))
	rhs := PowInt(ctx, Abs(ctx, x), 2)

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "x*conj(x) == abs(x)^2")
}

func Test_Conjugate_04_RealElementIsOwnConjugate(t *testing.T) {
	ctx := NewContext()

	x := FromRat(ctx, big.NewRat(5, 3))
	got := Conjugate(ctx, x)

	mustZero(t, ctx, Sub(ctx, got, x), "conj(real) == real")
}
