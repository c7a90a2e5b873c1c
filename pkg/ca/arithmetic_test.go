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

// mustZero fails the test unless x is decided zero.
func mustZero(t *testing.T, ctx *Context, x *Element, msg string) {
	t.Helper()

	zero, ok := IsZero(ctx, x)
	if !ok {
		t.Fatalf("%s: undecided at prec-limit %d", msg, ctx.options.PrecLimit)
	}

	if !zero {
		t.Errorf("%s: decided non-zero", msg)
	}
}

func threeSample(ctx *Context) (x, y, z *Element) {
	x = FromRat(ctx, big.NewRat(2, 3))
	y = Sqrt(ctx, FromInt64(ctx, 2))
	z = FromRat(ctx, big.NewRat(-5, 7))

	return
}

func Test_Arithmetic_00_AddCommutes(t *testing.T) {
	ctx := NewContext()
	x, y, _ := threeSample(ctx)

	mustZero(t, ctx, Sub(ctx, Add(ctx, x, y), Add(ctx, y, x)), "x+y == y+x")
}

func Test_Arithmetic_01_AddAssociates(t *testing.T) {
	ctx := NewContext()
	x, y, z := threeSample(ctx)

	lhs := Add(ctx, Add(ctx, x, y), z)
	rhs := Add(ctx, x, Add(ctx, y, z))

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "(x+y)+z == x+(y+z)")
}

func Test_Arithmetic_02_MulDistributesOverAdd(t *testing.T) {
	ctx := NewContext()
	x, y, z := threeSample(ctx)

	lhs := Mul(ctx, x, Add(ctx, y, z))
	rhs := Add(ctx, Mul(ctx, x, y), Mul(ctx, x, z))

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "x*(y+z) == x*y+x*z")
}

func Test_Arithmetic_03_ZeroAndOneIdentities(t *testing.T) {
	ctx := NewContext()
	x, _, _ := threeSample(ctx)

	mustZero(t, ctx, Mul(ctx, Zero(ctx), x), "0*x == 0")
	mustZero(t, ctx, Sub(ctx, Mul(ctx, One(ctx), x), x), "1*x == x")
	mustZero(t, ctx, Add(ctx, x, Neg(ctx, x)), "x + (-x) == 0")
}

func Test_Arithmetic_04_DivisionRoundTrips(t *testing.T) {
	ctx := NewContext()
	x, y, _ := threeSample(ctx)

	zero, ok := IsZero(ctx, y)
	if ok && zero {
		t.Fatalf("sample y unexpectedly zero")
	}

	mustZero(t, ctx, Sub(ctx, Mul(ctx, Div(ctx, x, y), y), x), "(x/y)*y == x")
	mustZero(t, ctx, Sub(ctx, Div(ctx, Mul(ctx, x, y), y), x), "(x*y)/y == x")
}

func Test_Arithmetic_05_SqrtIdempotence(t *testing.T) {
	ctx := NewContext()
	x := FromInt64(ctx, 2)

	s := Sqrt(ctx, x)
	mustZero(t, ctx, Sub(ctx, Mul(ctx, s, s), x), "sqrt(x)^2 == x")
}

func Test_Arithmetic_06_SqrtOfSquareIsAbs(t *testing.T) {
	ctx := NewContext()
	x := FromRat(ctx, big.NewRat(-3, 1))

	lhs := Sqrt(ctx, Mul(ctx, x, x))
	rhs := Abs(ctx, x)

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "sqrt(x^2) == abs(x)")
}

func Test_Arithmetic_07_RadicalIdentitySqrt2Sqrt3(t *testing.T) {
	ctx := NewContext()

	s2 := Sqrt(ctx, FromInt64(ctx, 2))
	s3 := Sqrt(ctx, FromInt64(ctx, 3))
	s6 := Sqrt(ctx, FromInt64(ctx, 6))

	mustZero(t, ctx, Sub(ctx, Mul(ctx, s2, s3), s6), "sqrt(2)*sqrt(3) - sqrt(6) == 0")
}

func Test_Arithmetic_08_SquareFactorHoist(t *testing.T) {
	ctx := NewContext()

	lhs := Sqrt(ctx, FromInt64(ctx, 8))
	rhs := Mul(ctx, FromInt64(ctx, 2), Sqrt(ctx, FromInt64(ctx, 2)))

	mustZero(t, ctx, Sub(ctx, lhs, rhs), "sqrt(8) - 2*sqrt(2) == 0")
}

func Test_Arithmetic_09_ISqrtTwoSquared(t *testing.T) {
	ctx := NewContext()

	x := Mul(ctx, Sqrt(ctx, FromInt64(ctx, 2)), I(ctx))
	lhs := Add(ctx, Mul(ctx, x, x), FromInt64(ctx, 2))

	mustZero(t, ctx, lhs, "(sqrt(2)*i)^2 + 2 == 0")
}
