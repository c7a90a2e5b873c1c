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
package acb

import (
	"math/big"
	"testing"
)

func Test_CBall_00_RealCBallIsReal(t *testing.T) {
	c := RealCBall(FromRat(big.NewRat(7, 2), 64))
	if !c.IsReal() {
		t.Errorf("RealCBall should have IsReal() == true")
	}
}

func Test_CBall_01_ConjOfRealIsItself(t *testing.T) {
	c := RealCBall(FromRat(big.NewRat(7, 2), 64))
	conj := c.Conj()

	if conj.Re.Lo.Cmp(&c.Re.Lo) != 0 || conj.Im.Lo.Cmp(&c.Im.Lo) != 0 {
		t.Errorf("conj of a real ball should equal itself, got %s", conj)
	}
}

func Test_CBall_02_MulByConjIsAbsSquared(t *testing.T) {
	re := FromRat(big.NewRat(3, 1), 64)
	im := FromRat(big.NewRat(4, 1), 64)
	c := NewCBall(re, im)

	prod := c.Mul(c.Conj())
	absSq := c.AbsSquared()

	if !prod.IsReal() {
		t.Errorf("c * conj(c) should be real, got %s", prod)
	}

	diff := prod.Re.Sub(absSq)
	if !diff.ContainsZero() {
		t.Errorf("Re(c*conj(c)) and AbsSquared(c) disagree: %s vs %s", prod.Re, absSq)
	}
}

func Test_CBall_03_DivByZeroContainingFails(t *testing.T) {
	c := RealCBall(FromInt64(1, 64))
	zero := RealCBall(Zero(64))

	if _, ok := c.Div(zero); ok {
		t.Errorf("Div by a zero-containing complex ball should report ok=false")
	}
}

func Test_CBall_04_DivUndoesMul(t *testing.T) {
	a := NewCBall(FromRat(big.NewRat(2, 1), 128), FromRat(big.NewRat(3, 1), 128))
	b := NewCBall(FromRat(big.NewRat(1, 1), 128), FromRat(big.NewRat(-1, 1), 128))

	prod := a.Mul(b)

	back, ok := prod.Div(b)
	if !ok {
		t.Fatalf("Div failed unexpectedly")
	}

	diffRe := back.Re.Sub(a.Re)
	diffIm := back.Im.Sub(a.Im)

	if !diffRe.ContainsZero() || !diffIm.ContainsZero() {
		t.Errorf("(a*b)/b = %s does not enclose a = %s", back, a)
	}
}

func Test_CBall_05_PowUintMatchesRepeatedMul(t *testing.T) {
	c := NewCBall(FromRat(big.NewRat(1, 1), 64), FromRat(big.NewRat(1, 1), 64))

	direct := c.Mul(c).Mul(c)
	viaPow := c.PowUint(3)

	if direct.Re.Lo.Cmp(&viaPow.Re.Lo) != 0 || direct.Im.Lo.Cmp(&viaPow.Im.Lo) != 0 {
		t.Errorf("PowUint(3) = %s, repeated Mul = %s", viaPow, direct)
	}
}
