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

	"github.com/anthropic-sandbox/ca/pkg/acb"
	"github.com/anthropic-sandbox/ca/pkg/mpoly"
	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// Add computes x+y, merging fields as needed (spec.md §4.4, §4.6).
func Add(ctx *Context, x, y *Element) *Element {
	if special, ok := combineSpecialAdditive(ctx, x, y, false); ok {
		return special
	}

	xp, yp := MergeFields(ctx, x, y)

	return mapSameField(xp, yp, func(a, b big.Rat) big.Rat {
		var r big.Rat
		r.Add(&a, &b)

		return r
	}, func(nf *qqbar.NumberFieldDescriptor, a, b qqbar.NFElem) qqbar.NFElem {
		return nf.Add(a, b)
	}, func(a, b mpoly.Fraction) mpoly.Fraction {
		return a.Add(b)
	})
}

// Sub computes x-y.
func Sub(ctx *Context, x, y *Element) *Element {
	return Add(ctx, x, Neg(ctx, y))
}

// Neg computes -x.
func Neg(ctx *Context, x *Element) *Element {
	if x.IsSpecial() {
		if x.tag == SignedInfinity {
			return &Element{tag: SignedInfinity, direction: Neg(ctx, x.direction)}
		}

		return x.Clone()
	}

	out := &Element{field: x.field}

	switch x.field.kind {
	case FieldQQ:
		out.rat.Neg(&x.rat)
	case FieldNumberField:
		out.nfe = x.field.nf.Neg(x.nfe)
	case FieldMultiField:
		out.frac = x.field.ReduceFraction(x.frac.Neg())
	}

	return out
}

// Mul computes x*y.
func Mul(ctx *Context, x, y *Element) *Element {
	if special, ok := combineSpecialMultiplicative(ctx, x, y); ok {
		return special
	}

	xp, yp := MergeFields(ctx, x, y)

	return mapSameField(xp, yp, func(a, b big.Rat) big.Rat {
		var r big.Rat
		r.Mul(&a, &b)

		return r
	}, func(nf *qqbar.NumberFieldDescriptor, a, b qqbar.NFElem) qqbar.NFElem {
		return nf.Mul(a, b)
	}, func(a, b mpoly.Fraction) mpoly.Fraction {
		return a.Mul(b)
	})
}

// Inv computes 1/x, returning an UnsignedInfinity when x is (provably)
// zero and Unknown when zeroness cannot be decided at the precision
// limit (spec.md §4.6/§4.7).
func Inv(ctx *Context, x *Element) *Element {
	if x.IsSpecial() {
		switch x.tag {
		case UnsignedInfinity, SignedInfinity:
			return Zero(ctx)
		default:
			return &Element{tag: Unknown}
		}
	}

	zero, ok := IsZero(ctx, x)
	if !ok {
		return &Element{tag: Unknown}
	}

	if zero {
		return &Element{tag: UnsignedInfinity}
	}

	out := &Element{field: x.field}

	switch x.field.kind {
	case FieldQQ:
		out.rat.Inv(&x.rat)
	case FieldNumberField:
		out.nfe, _ = x.field.nf.Inv(x.nfe)
	case FieldMultiField:
		one := mpoly.NewFractionFromConstant(big.NewRat(1, 1))
		out.frac = x.field.ReduceFraction(one.Div(x.frac))
	}

	return out
}

// Div computes x/y.
func Div(ctx *Context, x, y *Element) *Element {
	return Mul(ctx, x, Inv(ctx, y))
}

// PowInt raises x to an integer power n.
func PowInt(ctx *Context, x *Element, n int) *Element {
	if n == 0 {
		return One(ctx)
	}

	if n < 0 {
		return PowInt(ctx, Inv(ctx, x), -n)
	}

	result := One(ctx)
	base := x

	for n > 0 {
		if n&1 == 1 {
			result = Mul(ctx, result, base)
		}

		base = Mul(ctx, base, base)
		n >>= 1
	}

	return result
}

// mapSameField applies the operation matching xp/yp's common field kind,
// used by Add/Mul once MergeFields has put both operands in the same
// field.
func mapSameField(
	xp, yp *Element,
	rat func(a, b big.Rat) big.Rat,
	nf func(d *qqbar.NumberFieldDescriptor, a, b qqbar.NFElem) qqbar.NFElem,
	frac func(a, b mpoly.Fraction) mpoly.Fraction,
) *Element {
	out := &Element{field: xp.field}

	switch xp.field.kind {
	case FieldQQ:
		out.rat = rat(xp.rat, yp.rat)
	case FieldNumberField:
		out.nfe = nf(xp.field.nf, xp.nfe, yp.nfe)
	case FieldMultiField:
		out.frac = xp.field.ReduceFraction(frac(xp.frac, yp.frac))
	}

	return out
}

// Enclosure computes a numeric enclosure of this element at the
// requested working precision, the numeric oracle IsZero/Equal/Sign
// escalate the precision of.
func (e *Element) Enclosure(ctx *Context, prec uint) (acb.CBall, bool) {
	if e.IsSpecial() || e.field == nil {
		return acb.CBall{}, false
	}

	switch e.field.kind {
	case FieldQQ:
		return acb.RealCBall(acb.FromRat(&e.rat, prec)), true
	case FieldNumberField:
		alpha, ok := e.field.Ext(0).Enclosure(ctx, prec)
		if !ok {
			return acb.CBall{}, false
		}

		return evalNFElemEnclosure(e.nfe, alpha, prec), true
	case FieldMultiField:
		env := make([]acb.CBall, e.field.NumGens())

		for i := range env {
			enc, ok := e.field.Ext(i).Enclosure(ctx, prec)
			if !ok {
				return acb.CBall{}, false
			}

			env[i] = enc
		}

		num := evalPolyEnclosure(e.frac.Num, env, prec)
		den := evalPolyEnclosure(e.frac.Den, env, prec)

		return num.Div(den)
	default:
		return acb.CBall{}, false
	}
}

// evalNFElemEnclosure evaluates a NumberField payload's polynomial in
// alpha via Horner's method over complex-ball arithmetic.
func evalNFElemEnclosure(a qqbar.NFElem, alpha acb.CBall, prec uint) acb.CBall {
	acc := acb.RealCBall(acb.FromInt64(0, prec))

	for i := len(a.Coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(alpha)
		acc = acc.Add(acb.RealCBall(acb.FromRat(&a.Coeffs[i], prec)))
	}

	return acc
}

// evalPolyEnclosure evaluates a multivariate polynomial at a complex-ball
// environment via mpoly.Eval.
func evalPolyEnclosure(p *mpoly.Poly, env []acb.CBall, prec uint) acb.CBall {
	return mpoly.Eval(
		p,
		acb.RealCBall(acb.FromInt64(0, prec)),
		func(a, b acb.CBall) acb.CBall { return a.Add(b) },
		func(a, b acb.CBall) acb.CBall { return a.Mul(b) },
		func(a acb.CBall, n uint) acb.CBall { return a.PowUint(n) },
		func(v *big.Int) acb.CBall { return acb.RealCBall(acb.FromRat(new(big.Rat).SetInt(v), prec)) },
		func(gen uint) acb.CBall { return env[gen] },
	)
}

// evalFuncEnclosure dispatches a FuncCode extension's numeric evaluation
// to the matching pkg/acb elementary function.
func evalFuncEnclosure(fn FuncCode, args []acb.CBall, prec uint) (acb.CBall, bool) {
	switch fn {
	case FuncExp:
		return acb.Exp(args[0], prec), true
	case FuncLog:
		if args[0].ContainsZero() {
			return acb.CBall{}, false
		}

		return acb.Log(args[0], prec), true
	case FuncSin:
		return acb.Sin(args[0], prec), true
	case FuncCos:
		return acb.Cos(args[0], prec), true
	case FuncTan:
		return acb.Tan(args[0], prec)
	case FuncCot:
		return acb.Cot(args[0], prec)
	case FuncAtan:
		return atanComplex(args[0], prec), true
	case FuncAsin:
		return acb.Asin(args[0], prec), true
	case FuncAcos:
		return acb.Acos(args[0], prec), true
	case FuncSign:
		abs := acb.Abs(args[0], prec)
		if abs.ContainsZero() {
			return acb.CBall{}, false
		}

		re, ok1 := args[0].Re.Div(abs)
		im, ok2 := args[0].Im.Div(abs)

		return acb.CBall{Re: re, Im: im}, ok1 && ok2
	case FuncAbs:
		return acb.RealCBall(acb.Abs(args[0], prec)), true
	case FuncSqrt:
		return acb.Sqrt(args[0], prec), true
	case FuncRe:
		return acb.RealCBall(args[0].Re), true
	case FuncIm:
		return acb.RealCBall(args[0].Im), true
	case FuncConjugate:
		return args[0].Conj(), true
	case FuncFloor:
		return floorCeilEnclosure(args[0], false, prec)
	case FuncCeil:
		return floorCeilEnclosure(args[0], true, prec)
	case FuncArg:
		return acb.RealCBall(acb.Arg(args[0], prec)), true
	case FuncGamma:
		return acb.Gamma(args[0], prec), true
	case FuncLogGamma:
		return acb.LogGamma(args[0], prec), true
	case FuncErf:
		return acb.Erf(args[0], prec), true
	case FuncErfc:
		return acb.Erfc(args[0], prec), true
	case FuncErfi:
		return acb.Erfi(args[0], prec), true
	case FuncRiemannZeta:
		return acb.RiemannZeta(args[0], prec), true
	case FuncHurwitzZeta:
		if len(args) < 2 {
			return acb.CBall{}, false
		}

		return acb.HurwitzZeta(args[0], args[1], prec), true
	case FuncEllipticK:
		return acb.EllipticK(args[0], prec), true
	case FuncEllipticE:
		return acb.EllipticE(args[0], prec), true
	case FuncPow:
		if len(args) < 2 {
			return acb.CBall{}, false
		}

		return acb.Pow(args[0], args[1], prec), true
	default:
		return acb.CBall{}, false
	}
}

// atanComplex evaluates the general complex arctangent via
// atan(z) = (i/2)*(log(1-iz) - log(1+iz)), falling back to the dedicated
// real series when z is known real.
func atanComplex(z acb.CBall, prec uint) acb.CBall {
	if z.IsReal() {
		return acb.RealCBall(acb.Atan(z.Re, prec))
	}

	work := prec + 32
	i := acb.CBall{Re: acb.Zero(work), Im: acb.FromInt64(1, work)}
	one := acb.RealCBall(acb.FromInt64(1, work))
	iz := i.Mul(z)

	a := acb.Log(one.Sub(iz), work)
	b := acb.Log(one.Add(iz), work)

	halfI := acb.CBall{Re: acb.Zero(work), Im: acb.FromRat(big.NewRat(1, 2), work)}

	return halfI.Mul(a.Sub(b))
}

// floorCeilEnclosure computes floor/ceil of a real enclosure, reporting
// ok=false when the enclosure still straddles the relevant integer
// boundary at this precision (the oracle loop then escalates precision
// and retries).
func floorCeilEnclosure(z acb.CBall, ceil bool, prec uint) (acb.CBall, bool) {
	if !z.IsReal() {
		return acb.CBall{}, false
	}

	lo := floorBigFloat(&z.Re.Lo)
	hi := floorBigFloat(&z.Re.Hi)

	if ceil {
		lo = floorBigFloat(negFloat(&z.Re.Lo))
		hi = floorBigFloat(negFloat(&z.Re.Hi))
		lo.Neg(lo)
		hi.Neg(hi)
		lo, hi = hi, lo
	}

	if lo.Cmp(hi) != 0 {
		return acb.CBall{}, false
	}

	return acb.RealCBall(acb.FromRat(new(big.Rat).SetInt(lo), prec)), true
}

func negFloat(x *big.Float) *big.Float {
	return new(big.Float).Neg(x)
}

func floorBigFloat(x *big.Float) *big.Int {
	z, _ := x.Int(nil)

	frac := new(big.Float).SetPrec(x.Prec())
	frac.Sub(x, new(big.Float).SetInt(z))

	if x.Sign() < 0 && frac.Sign() != 0 {
		z.Sub(z, big.NewInt(1))
	}

	return z
}
