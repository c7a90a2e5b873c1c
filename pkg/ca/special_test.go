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

import "testing"

func Test_Special_00_UnknownPoisonsAdd(t *testing.T) {
	ctx := NewContext()

	got := Add(ctx, &Element{tag: Unknown}, FromInt64(ctx, 1))
	if got.tag != Unknown {
		t.Errorf("Unknown + 1 tag = %v, want Unknown", got.tag)
	}
}

func Test_Special_01_UnknownPoisonsMul(t *testing.T) {
	ctx := NewContext()

	got := Mul(ctx, &Element{tag: Unknown}, FromInt64(ctx, 1))
	if got.tag != Unknown {
		t.Errorf("Unknown * 1 tag = %v, want Unknown", got.tag)
	}
}

func Test_Special_02_UndefinedDominatedOnlyByUnknown(t *testing.T) {
	ctx := NewContext()

	got := Add(ctx, &Element{tag: Undefined}, &Element{tag: Unknown})
	if got.tag != Unknown {
		t.Errorf("Undefined + Unknown tag = %v, want Unknown", got.tag)
	}

	got = Add(ctx, &Element{tag: Undefined}, FromInt64(ctx, 1))
	if got.tag != Undefined {
		t.Errorf("Undefined + 1 tag = %v, want Undefined", got.tag)
	}
}

func Test_Special_03_ZeroTimesUnsignedInfinityIsUndefined(t *testing.T) {
	ctx := NewContext()

	got := Mul(ctx, Zero(ctx), &Element{tag: UnsignedInfinity})
	if got.tag != Undefined {
		t.Errorf("0 * UnsignedInfinity tag = %v, want Undefined", got.tag)
	}
}

func Test_Special_04_NonzeroTimesUnsignedInfinityIsUnsignedInfinity(t *testing.T) {
	ctx := NewContext()

	got := Mul(ctx, FromInt64(ctx, 3), &Element{tag: UnsignedInfinity})
	if got.tag != UnsignedInfinity {
		t.Errorf("3 * UnsignedInfinity tag = %v, want UnsignedInfinity", got.tag)
	}
}

func Test_Special_05_TwoUnsignedInfinitiesAddToUndefined(t *testing.T) {
	ctx := NewContext()

	got := Add(ctx, &Element{tag: UnsignedInfinity}, &Element{tag: UnsignedInfinity})
	if got.tag != Undefined {
		t.Errorf("UnsignedInfinity + UnsignedInfinity tag = %v, want Undefined", got.tag)
	}
}

func Test_Special_06_SameDirectionSignedInfinitiesAdd(t *testing.T) {
	ctx := NewContext()

	dir := One(ctx)
	x := &Element{tag: SignedInfinity, direction: dir}
	y := &Element{tag: SignedInfinity, direction: dir}

	got := Add(ctx, x, y)
	if got.tag != SignedInfinity {
		t.Errorf("same-direction SignedInfinity + SignedInfinity tag = %v, want SignedInfinity", got.tag)
	}
}

func Test_Special_07_OppositeDirectionSignedInfinitiesAreUndefined(t *testing.T) {
	ctx := NewContext()

	x := &Element{tag: SignedInfinity, direction: One(ctx)}
	y := &Element{tag: SignedInfinity, direction: Neg(ctx, One(ctx))}

	got := Add(ctx, x, y)
	if got.tag != Undefined {
		t.Errorf("opposite-direction SignedInfinity + SignedInfinity tag = %v, want Undefined", got.tag)
	}
}

func Test_Special_08_ExpOfZeroIsOne(t *testing.T) {
	ctx := NewContext()

	mustZero(t, ctx, Sub(ctx, Exp(ctx, Zero(ctx)), One(ctx)), "exp(0) == 1")
}
