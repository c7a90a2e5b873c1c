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

const testPrec uint = 200

func Test_Elementary_00_ExpZeroIsOne(t *testing.T) {
	z := RealCBall(Zero(testPrec))
	got := Exp(z, testPrec)
	one := RealCBall(FromInt64(1, testPrec))

	diff := got.Sub(one)
	if !diff.Re.ContainsZero() || !diff.Im.ContainsZero() {
		t.Errorf("exp(0) = %s, want 1", got)
	}
}

func Test_Elementary_01_LogOfExpIsIdentity(t *testing.T) {
	x := RealCBall(FromInt64(2, testPrec))
	got := Log(Exp(x, testPrec), testPrec)

	diff := got.Sub(x)
	if !diff.Re.ContainsZero() || !diff.Im.ContainsZero() {
		t.Errorf("log(exp(2)) = %s, want 2", got)
	}
}

func Test_Elementary_02_EulerIdentity(t *testing.T) {
	// exp(pi*i) + 1 == 0
	pi := Pi(testPrec)
	piI := NewCBall(Zero(testPrec), pi)

	lhs := Exp(piI, testPrec).Add(RealCBall(FromInt64(1, testPrec)))

	if !lhs.Re.ContainsZero() || !lhs.Im.ContainsZero() {
		t.Errorf("exp(pi*i)+1 = %s, want 0", lhs)
	}
}

func Test_Elementary_03_DeMoivre(t *testing.T) {
	// exp(i*theta) == cos(theta) + i*sin(theta), theta = pi/5
	pi := Pi(testPrec)
	five := FromInt64(5, testPrec)

	theta, ok := pi.Div(five)
	if !ok {
		t.Fatalf("pi/5 division failed")
	}

	iTheta := NewCBall(Zero(testPrec), theta)
	lhs := Exp(iTheta, testPrec)

	thetaC := RealCBall(theta)
	rhs := NewCBall(Cos(thetaC, testPrec).Re, Sin(thetaC, testPrec).Re)

	diff := lhs.Sub(rhs)
	if !diff.Re.ContainsZero() || !diff.Im.ContainsZero() {
		t.Errorf("exp(i*pi/5) = %s, cos+i*sin = %s", lhs, rhs)
	}
}

func Test_Elementary_04_SqrtSquaredIsIdentity(t *testing.T) {
	x := RealCBall(FromInt64(2, testPrec))
	s := Sqrt(x, testPrec)

	diff := s.Mul(s).Sub(x)
	if !diff.Re.ContainsZero() || !diff.Im.ContainsZero() {
		t.Errorf("sqrt(2)^2 = %s, want 2", s.Mul(s))
	}
}

func Test_Elementary_05_SinSquaredPlusCosSquaredIsOne(t *testing.T) {
	x := RealCBall(FromRat(big.NewRat(1, 3), testPrec))

	s := Sin(x, testPrec)
	c := Cos(x, testPrec)

	sum := s.Mul(s).Add(c.Mul(c))
	one := RealCBall(FromInt64(1, testPrec))

	diff := sum.Sub(one)
	if !diff.Re.ContainsZero() {
		t.Errorf("sin^2+cos^2 = %s, want 1", sum)
	}
}

func Test_Elementary_06_GammaShift(t *testing.T) {
	// Gamma(x+1) == x * Gamma(x), for x = 3/2
	x := RealCBall(FromRat(big.NewRat(3, 2), testPrec))
	one := RealCBall(FromInt64(1, testPrec))

	lhs := Gamma(x.Add(one), testPrec)
	rhs := x.Mul(Gamma(x, testPrec))

	diff := lhs.Sub(rhs)
	if !diff.Re.ContainsZero() || !diff.Im.ContainsZero() {
		t.Errorf("Gamma(x+1) = %s, x*Gamma(x) = %s", lhs, rhs)
	}
}

func Test_Elementary_07_ErfOddFunction(t *testing.T) {
	x := RealCBall(FromRat(big.NewRat(3, 2), testPrec))

	sum := Erf(x, testPrec).Add(Erf(x.Neg(), testPrec))
	if !sum.Re.ContainsZero() {
		t.Errorf("erf(x)+erf(-x) = %s, want 0", sum)
	}
}
