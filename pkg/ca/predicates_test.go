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

func Test_Predicates_00_EulerIdentity(t *testing.T) {
	ctx := NewContext()

	lhs := Add(ctx, Exp(ctx, PiI(ctx)), One(ctx))
	mustZero(t, ctx, lhs, "exp(pi*i) + 1 == 0")
}

func Test_Predicates_01_DeMoivre(t *testing.T) {
	ctx := NewContext()

	for q := 1; q <= 12; q++ {
		theta := Div(ctx, Pi(ctx), FromInt64(ctx, int64(q)))

		lhs := Exp(ctx, Mul(ctx, I(ctx), theta))
		rhs := Add(ctx, Cos(ctx, theta), Mul(ctx, I(ctx), Sin(ctx, theta)))

		mustZero(t, ctx, Sub(ctx, lhs, rhs), "exp(i*pi/q) == cos+i*sin")
	}
}

func Test_Predicates_02_LogOfMinusOne(t *testing.T) {
	ctx := NewContext()

	lhs := Div(ctx, Log(ctx, Neg(ctx, One(ctx))), PiI(ctx))
	mustZero(t, ctx, Sub(ctx, lhs, One(ctx)), "log(-1)/(pi*i) == 1")
}

func Test_Predicates_03_LogPowerOfTenRelation(t *testing.T) {
	ctx := NewContext()

	tenTo123 := PowInt(ctx, FromInt64(ctx, 10), 123)
	arg := Div(ctx, One(ctx), tenTo123)

	lhs := Div(ctx, Log(ctx, arg), Log(ctx, FromInt64(ctx, 100)))
	rhs := FromRat(ctx, big.NewRat(-123, 2))

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "log(1/10^123)/log(100) == -123/2")
}

func Test_Predicates_04_LogOfOnePlusSqrt2Relation(t *testing.T) {
	ctx := NewContext()

	s2 := Sqrt(ctx, FromInt64(ctx, 2))
	num := Log(ctx, Add(ctx, One(ctx), s2))
	den := Log(ctx, Add(ctx, FromInt64(ctx, 3), Mul(ctx, FromInt64(ctx, 2), s2)))

	lhs := Div(ctx, num, den)
	rhs := FromRat(ctx, big.NewRat(1, 2))

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "log(1+sqrt2)/log(3+2sqrt2) == 1/2")
}

func Test_Predicates_05_MonsterIdentityIsFalseNotUnknown(t *testing.T) {
	ctx := NewContext()

	s163 := Sqrt(ctx, FromInt64(ctx, 163))
	lhs := Exp(ctx, Mul(ctx, Pi(ctx), s163))

	cube := PowInt(ctx, FromInt64(ctx, 640320), 3)
	rhs := Add(ctx, cube, FromInt64(ctx, 744))

	x := Sub(ctx, lhs, rhs)

	zero, ok := IsZero(ctx, x)
	if !ok {
		t.Fatalf("Monster identity must be decided FALSE at prec-limit %d, got UNKNOWN", ctx.options.PrecLimit)
	}

	if zero {
		t.Errorf("Monster identity: exp(pi*sqrt163)-(640320^3+744) decided zero, want non-zero")
	}
}

func Test_Predicates_06_IsOneAndSignAndIsReal(t *testing.T) {
	ctx := NewContext()

	one, ok := IsOne(ctx, One(ctx))
	if !ok || !one {
		t.Errorf("IsOne(1) = (%v, %v), want (true, true)", one, ok)
	}

	sign, ok := Sign(ctx, FromRat(ctx, big.NewRat(-3, 4)))
	if !ok || sign != -1 {
		t.Errorf("Sign(-3/4) = (%d, %v), want (-1, true)", sign, ok)
	}

	real, ok := IsReal(ctx, FromInt64(ctx, 5))
	if !ok || !real {
		t.Errorf("IsReal(5) = (%v, %v), want (true, true)", real, ok)
	}

	real, ok = IsReal(ctx, I(ctx))
	if !ok || real {
		t.Errorf("IsReal(i) = (%v, %v), want (false, true)", real, ok)
	}
}

func Test_Predicates_07_IsNegativeReal(t *testing.T) {
	ctx := NewContext()

	neg, ok := IsNegativeReal(ctx, FromInt64(ctx, -2))
	if !ok || !neg {
		t.Errorf("IsNegativeReal(-2) = (%v, %v), want (true, true)", neg, ok)
	}

	neg, ok = IsNegativeReal(ctx, I(ctx))
	if ok && neg {
		t.Errorf("IsNegativeReal(i) should not report true")
	}
}
