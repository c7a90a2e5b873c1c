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

import "fmt"

// CBall represents a complex interval as a pair of real balls, one for the
// real part and one for the imaginary part (a rectangular, rather than
// disc-shaped, enclosure).
type CBall struct {
	Re Ball
	Im Ball
}

// NewCBall constructs a complex ball from its real and imaginary parts.
func NewCBall(re, im Ball) CBall {
	return CBall{re, im}
}

// RealCBall lifts a real ball into a complex ball with zero imaginary part.
func RealCBall(re Ball) CBall {
	return CBall{re, Zero(re.Prec())}
}

// Prec returns the working precision of this complex ball.
func (c CBall) Prec() uint {
	return max(c.Re.Prec(), c.Im.Prec())
}

// IsReal determines whether the imaginary part of this ball definitely
// contains only zero.
func (c CBall) IsReal() bool {
	return c.Im.IsExact() && c.Im.Lo.Sign() == 0
}

// ExcludesZero determines whether this complex ball definitely does not
// contain zero (i.e. either the real or imaginary part excludes zero).
func (c CBall) ExcludesZero() bool {
	return c.Re.ExcludesZero() || c.Im.ExcludesZero()
}

// ContainsZero determines whether this complex ball may contain zero.
func (c CBall) ContainsZero() bool {
	return !c.ExcludesZero()
}

// Neg negates this complex ball.
func (c CBall) Neg() CBall {
	return CBall{c.Re.Neg(), c.Im.Neg()}
}

// Conj conjugates this complex ball.
func (c CBall) Conj() CBall {
	return CBall{c.Re, c.Im.Neg()}
}

// Add adds two complex balls.
func (c CBall) Add(o CBall) CBall {
	return CBall{c.Re.Add(o.Re), c.Im.Add(o.Im)}
}

// Sub subtracts one complex ball from another.
func (c CBall) Sub(o CBall) CBall {
	return CBall{c.Re.Sub(o.Re), c.Im.Sub(o.Im)}
}

// Mul multiplies two complex balls using the standard (ac-bd, ad+bc) rule.
func (c CBall) Mul(o CBall) CBall {
	ac := c.Re.Mul(o.Re)
	bd := c.Im.Mul(o.Im)
	ad := c.Re.Mul(o.Im)
	bc := c.Im.Mul(o.Re)

	return CBall{ac.Sub(bd), ad.Add(bc)}
}

// Div divides this complex ball by another, returning ok=false when the
// divisor may contain zero.
func (c CBall) Div(o CBall) (CBall, bool) {
	denom := o.Re.Mul(o.Re).Add(o.Im.Mul(o.Im))
	if denom.ContainsZero() {
		return CBall{}, false
	}

	num := c.Mul(o.Conj())

	re, ok1 := num.Re.Div(denom)
	im, ok2 := num.Im.Div(denom)

	return CBall{re, im}, ok1 && ok2
}

// AbsSquared returns the (real) ball enclosing |c|^2.
func (c CBall) AbsSquared() Ball {
	return c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im))
}

// PowUint raises a complex ball to a non-negative integer power.
func (c CBall) PowUint(n uint) CBall {
	result := RealCBall(FromInt64(1, c.Prec()))
	base := c

	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}

		base = base.Mul(base)
		n >>= 1
	}

	return result
}

func (c CBall) String() string {
	return fmt.Sprintf("%s + %si", c.Re.String(), c.Im.String())
}
