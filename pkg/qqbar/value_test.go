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
package qqbar

import (
	"math/big"
	"testing"
)

func Test_Value_00_FromRatIsRational(t *testing.T) {
	v := FromRat(big.NewRat(3, 4))

	r, ok := v.IsRational()
	if !ok || r.Cmp(big.NewRat(3, 4)) != 0 {
		t.Errorf("IsRational() = (%s, %v), want (3/4, true)", r.RatString(), ok)
	}
}

func Test_Value_01_IUnitSquaredIsMinusOne(t *testing.T) {
	i := FromIUnit()

	sq, ok := PowInt(i, 2)
	if !ok {
		t.Fatalf("PowInt(i, 2) failed")
	}

	r, ok := sq.IsRational()
	if !ok || r.Cmp(big.NewRat(-1, 1)) != 0 {
		t.Errorf("i^2 = %s, want -1", sq.String())
	}
}

func Test_Value_02_AddMatchesRationalArithmetic(t *testing.T) {
	a := FromRat(big.NewRat(1, 3))
	b := FromRat(big.NewRat(1, 6))

	got := Add(a, b)

	r, ok := got.IsRational()
	if !ok || r.Cmp(big.NewRat(1, 2)) != 0 {
		t.Errorf("1/3 + 1/6 = %s, want 1/2", got.String())
	}
}

func Test_Value_03_InvUndoesMul(t *testing.T) {
	i := FromIUnit()

	inv, ok := Inv(i)
	if !ok {
		t.Fatalf("Inv(i) failed")
	}

	prod := Mul(i, inv)

	r, ok := prod.IsRational()
	if !ok || r.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("i * (1/i) = %s, want 1", prod.String())
	}
}

func Test_Value_04_InvOfZeroFails(t *testing.T) {
	if _, ok := Inv(FromInt64(0)); ok {
		t.Errorf("Inv(0) should report ok=false")
	}
}

func Test_Value_05_NegTwiceIsIdentity(t *testing.T) {
	i := FromIUnit()

	got := Neg(Neg(i))
	if !got.Equals(i) {
		t.Errorf("-(-i) = %s, want i = %s", got.String(), i.String())
	}
}

func Test_Value_06_ConjugatePairOfIUnitIsDistinctAndReal(t *testing.T) {
	i := FromIUnit()

	conj, differs := i.ConjugatePair()
	if !differs {
		t.Errorf("conj(i) should differ from i")
	}

	negI := Neg(i)
	if conj.enclosure.Re.Midpoint().Cmp(negI.enclosure.Re.Midpoint()) != 0 ||
		conj.enclosure.Im.Midpoint().Cmp(negI.enclosure.Im.Midpoint()) != 0 {
		t.Errorf("conj(i) enclosure = %s, want -i's enclosure = %s", conj.String(), negI.String())
	}
}

func Test_Value_07_ConjugatePairOfRealIsUnchanged(t *testing.T) {
	v := FromRat(big.NewRat(5, 2))

	conj, differs := v.ConjugatePair()
	if differs {
		t.Errorf("conj of a real value should not differ")
	}

	if !conj.Equals(v) {
		t.Errorf("conj(real) = %s, want %s", conj.String(), v.String())
	}
}

func Test_Value_08_IntegerMinPolyClearsDenominators(t *testing.T) {
	v := FromRat(big.NewRat(2, 3))

	coeffs := v.IntegerMinPoly()
	// minPoly for 2/3 is (x - 2/3), i.e. [-2/3, 1]; cleared by LCD 3 -> [-2, 3].
	if len(coeffs) != 2 {
		t.Fatalf("IntegerMinPoly() has %d coefficients, want 2", len(coeffs))
	}

	if coeffs[0].Cmp(big.NewInt(-2)) != 0 || coeffs[1].Cmp(big.NewInt(3)) != 0 {
		t.Errorf("IntegerMinPoly() = %v, want [-2 3]", coeffs)
	}
}

func Test_Value_09_DegreeOfRationalIsOne(t *testing.T) {
	v := FromRat(big.NewRat(7, 1))
	if v.Degree() != 1 {
		t.Errorf("Degree() of a rational = %d, want 1", v.Degree())
	}
}

func Test_Value_10_HashIsStableAndDistinguishesValues(t *testing.T) {
	a := FromRat(big.NewRat(1, 2))
	b := FromRat(big.NewRat(1, 2))
	c := FromRat(big.NewRat(1, 3))

	if a.Hash() != b.Hash() {
		t.Errorf("equal values should hash equally")
	}

	if a.Hash() == c.Hash() {
		t.Errorf("1/2 and 1/3 hashed to the same value (not a correctness bug per se, but suspicious for this test's inputs)")
	}
}
