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

	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// Special-value propagation (spec.md §4.7): Unknown is the supremum --
// it poisons any expression it appears in, since it stands for "some
// value we failed to pin down" rather than a specific indeterminate
// form. Undefined stands for a genuine mathematical indeterminate form
// (0*inf, inf-inf, 0/0) and is dominated only by Unknown. Infinities
// combine according to the usual extended-arithmetic rules, falling back
// to Undefined or Unknown when the combination is genuinely ambiguous
// (e.g. adding two unsigned infinities) or requires a sign the oracle
// could not resolve.

// combineSpecialAdditive handles Add when either operand is special,
// returning ok=false when neither is (the normal arithmetic path applies).
func combineSpecialAdditive(ctx *Context, x, y *Element, _ bool) (*Element, bool) {
	if !x.IsSpecial() && !y.IsSpecial() {
		return nil, false
	}

	if x.tag == Unknown || y.tag == Unknown {
		return &Element{tag: Unknown}, true
	}

	if x.tag == Undefined || y.tag == Undefined {
		return &Element{tag: Undefined}, true
	}

	switch {
	case x.tag == UnsignedInfinity && y.tag == UnsignedInfinity:
		return &Element{tag: Undefined}, true
	case x.tag == UnsignedInfinity:
		return &Element{tag: UnsignedInfinity}, true
	case y.tag == UnsignedInfinity:
		return &Element{tag: UnsignedInfinity}, true
	case x.tag == SignedInfinity && y.tag == SignedInfinity:
		same, ok := Equal(ctx, x.direction, y.direction)
		if !ok {
			return &Element{tag: Unknown}, true
		}

		if same {
			return &Element{tag: SignedInfinity, direction: x.direction.Clone()}, true
		}

		return &Element{tag: Undefined}, true
	case x.tag == SignedInfinity:
		return &Element{tag: SignedInfinity, direction: x.direction.Clone()}, true
	case y.tag == SignedInfinity:
		return &Element{tag: SignedInfinity, direction: y.direction.Clone()}, true
	default:
		return &Element{tag: Unknown}, true
	}
}

// combineSpecialMultiplicative handles Mul when either operand is
// special.
func combineSpecialMultiplicative(ctx *Context, x, y *Element) (*Element, bool) {
	if !x.IsSpecial() && !y.IsSpecial() {
		return nil, false
	}

	if x.tag == Unknown || y.tag == Unknown {
		return &Element{tag: Unknown}, true
	}

	if x.tag == Undefined || y.tag == Undefined {
		return &Element{tag: Undefined}, true
	}

	xInf, yInf := x.tag != Regular, y.tag != Regular

	if xInf && yInf {
		return combineInfinities(x, y), true
	}

	// exactly one of x, y is an infinity; the other is a regular finite
	// element, whose zeroness decides 0*inf = Undefined vs scaled inf.
	finite, inf := x, y
	if xInf {
		finite, inf = y, x
	}

	zero, ok := IsZero(ctx, finite)
	if !ok {
		return &Element{tag: Unknown}, true
	}

	if zero {
		return &Element{tag: Undefined}, true
	}

	if inf.tag == UnsignedInfinity {
		return &Element{tag: UnsignedInfinity}, true
	}

	sign, ok := Sign(ctx, finite)
	if !ok {
		return &Element{tag: Unknown}, true
	}

	if sign > 0 {
		return &Element{tag: SignedInfinity, direction: inf.direction.Clone()}, true
	}

	return &Element{tag: SignedInfinity, direction: Neg(ctx, inf.direction)}, true
}

func combineInfinities(x, y *Element) *Element {
	if x.tag == UnsignedInfinity || y.tag == UnsignedInfinity {
		return &Element{tag: UnsignedInfinity}
	}

	return &Element{tag: SignedInfinity, direction: x.direction.Clone()}
}

// Exp builds exp(x), the distinguished special cases being 0 -> 1 and
// the infinities.
func Exp(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return One(ctx)
	}

	return internFunction(ctx, FuncExp, x)
}

// Log builds log(x); log(0) is UnsignedInfinity (the source diverges
// without a well-defined direction), log(1) is 0.
func Log(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return &Element{tag: UnsignedInfinity}
	}

	if one, ok := IsOne(ctx, x); ok && one {
		return Zero(ctx)
	}

	return internFunction(ctx, FuncLog, x)
}

// Sin builds sin(x).
func Sin(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return Zero(ctx)
	}

	return internFunction(ctx, FuncSin, x)
}

// Cos builds cos(x).
func Cos(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return One(ctx)
	}

	return internFunction(ctx, FuncCos, x)
}

// Tan builds tan(x).
func Tan(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncTan, x)
}

// Cot builds cot(x).
func Cot(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncCot, x)
}

// Atan builds atan(x).
func Atan(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return Zero(ctx)
	}

	return internFunction(ctx, FuncAtan, x)
}

// Asin builds asin(x).
func Asin(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncAsin, x)
}

// Acos builds acos(x).
func Acos(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncAcos, x)
}

// Sign builds the unit-modulus sign of x (0 for x=0), distinct from the
// real-valued predicate of the same name in predicates.go.
func SignValue(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return Zero(ctx)
	}

	return internFunction(ctx, FuncSign, x)
}

// Abs builds |x|.
func Abs(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return Zero(ctx)
	}

	return internFunction(ctx, FuncAbs, x)
}

// Sqrt builds sqrt(x), merging x's field with the new sqrt generator
// (rule (b) of the ideal builder may capture the relation when x lifts
// into the ambient ring).
func Sqrt(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return Zero(ctx)
	}

	if one, ok := IsOne(ctx, x); ok && one {
		return One(ctx)
	}

	if hoisted := hoistSquareFactor(ctx, x); hoisted != nil {
		return hoisted
	}

	return internFunction(ctx, FuncSqrt, x)
}

// hoistSquareFactor simplifies sqrt(x) for a non-negative rational x by
// pulling its largest perfect-square factor out via
// qqbar.FactorSquarePart (spec.md §4.9's degree-2 algebraic-number
// hoist), e.g. sqrt(8) -> 2*sqrt(2), sqrt(9) -> 3. Returns nil when x is
// not a non-negative rational constant or carries no square factor,
// deferring to the plain symbolic extension.
func hoistSquareFactor(ctx *Context, x *Element) *Element {
	r, ok := x.Rational()
	if !ok || r.Sign() < 0 {
		return nil
	}

	n := new(big.Int).Mul(r.Num(), r.Denom())

	square, squareFree := qqbar.FactorSquarePart(n)
	if square.Cmp(big.NewInt(1)) == 0 {
		return nil
	}

	scale := new(big.Rat).SetFrac(square, r.Denom())

	if squareFree.Cmp(big.NewInt(1)) == 0 {
		return FromRat(ctx, scale)
	}

	radical := internFunction(ctx, FuncSqrt, FromRat(ctx, new(big.Rat).SetInt(squareFree)))

	return Mul(ctx, FromRat(ctx, scale), radical)
}

// Re builds the real part of x.
func Re(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncRe, x)
}

// Im builds the imaginary part of x.
func Im(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncIm, x)
}

// Conjugate builds the complex conjugate of x (see conjugate.go for the
// per-extension conjugation rule table this eventually defers to).
func Conjugate(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return conjugateElement(ctx, x)
}

// Floor builds floor(x) (real x only).
func Floor(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncFloor, x)
}

// Ceil builds ceil(x) (real x only).
func Ceil(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncCeil, x)
}

// Arg builds the principal argument of x.
func Arg(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return &Element{tag: Undefined}
	}

	return internFunction(ctx, FuncArg, x)
}

// Gamma builds Gamma(x); poles at non-positive integers are reported as
// UnsignedInfinity.
func Gamma(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncGamma, x)
}

// LogGamma builds log(Gamma(x)).
func LogGamma(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	return internFunction(ctx, FuncLogGamma, x)
}

// Erf builds erf(x).
func Erf(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return Zero(ctx)
	}

	return internFunction(ctx, FuncErf, x)
}

// Erfc builds erfc(x).
func Erfc(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return One(ctx)
	}

	return internFunction(ctx, FuncErfc, x)
}

// Erfi builds erfi(x).
func Erfi(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, x); ok && zero {
		return Zero(ctx)
	}

	return internFunction(ctx, FuncErfi, x)
}

// RiemannZeta builds zeta(x); zeta(1) is UnsignedInfinity (the pole).
func RiemannZeta(ctx *Context, x *Element) *Element {
	if special := specialTranscendentalArg(ctx, x); special != nil {
		return special
	}

	if one, ok := IsOne(ctx, x); ok && one {
		return &Element{tag: UnsignedInfinity}
	}

	return internFunction(ctx, FuncRiemannZeta, x)
}

// HurwitzZeta builds zeta(s, a).
func HurwitzZeta(ctx *Context, s, a *Element) *Element {
	if sp := specialTranscendentalArg(ctx, s); sp != nil {
		return sp
	}

	if sp := specialTranscendentalArg(ctx, a); sp != nil {
		return sp
	}

	return internFunction(ctx, FuncHurwitzZeta, s, a)
}

// EllipticK builds the complete elliptic integral of the first kind.
func EllipticK(ctx *Context, m *Element) *Element {
	if special := specialTranscendentalArg(ctx, m); special != nil {
		return special
	}

	return internFunction(ctx, FuncEllipticK, m)
}

// EllipticE builds the complete elliptic integral of the second kind.
func EllipticE(ctx *Context, m *Element) *Element {
	if special := specialTranscendentalArg(ctx, m); special != nil {
		return special
	}

	return internFunction(ctx, FuncEllipticE, m)
}

// Pow builds base^exp for a non-integer or symbolic exponent, via
// exp(exp*log(base)); PowInt (arithmetic.go) handles literal integer
// exponents without an extra Log/Exp round trip.
func Pow(ctx *Context, base, exp *Element) *Element {
	if special := specialTranscendentalArg(ctx, base); special != nil {
		return special
	}

	if special := specialTranscendentalArg(ctx, exp); special != nil {
		return special
	}

	if zero, ok := IsZero(ctx, exp); ok && zero {
		return One(ctx)
	}

	return internFunction(ctx, FuncPow, base, exp)
}

// specialTranscendentalArg poisons a function application whose argument
// is Unknown/Undefined (Unknown wins); a genuine infinite argument is
// left for the specific constructor above to interpret (most of this
// engine's functions have no closed-form limit at infinity worth
// hard-coding, so they fall through to Unknown).
func specialTranscendentalArg(ctx *Context, x *Element) *Element {
	switch x.tag {
	case Unknown:
		return &Element{tag: Unknown}
	case Undefined:
		return &Element{tag: Undefined}
	case UnsignedInfinity, SignedInfinity:
		return &Element{tag: Unknown}
	default:
		return nil
	}
}
