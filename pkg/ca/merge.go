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

	"github.com/anthropic-sandbox/ca/pkg/mpoly"
	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// MergeFields implements spec.md §4.4: given two elements possibly living
// in different fields, produces two elements in a common field equal
// (mathematically) to x and y respectively. Per the aliasing rule neither
// result may be pointer-identical to its corresponding input; callers
// that pass a special (Unknown/Undefined/infinite) element trigger a
// panic, mirroring the source's flint_throw preconditions in
// original_source/src/ca/merge_fields.c (merge_fields is only ever called
// on regular elements).
func MergeFields(ctx *Context, x, y *Element) (xp, yp *Element) {
	if x.IsSpecial() || y.IsSpecial() {
		panic("ca: merge_fields called on a special element")
	}

	if x.field == ctx.qq || y.field == ctx.qq || x.field == y.field {
		return x.Clone(), y.Clone()
	}

	merged, mapX, mapY := mergeExtTuples(x.field.ext, y.field.ext, ctx.extCache)
	dest := ctx.fieldCache.InternExt(merged)

	return liftElement(x, dest, mapX), liftElement(y, dest, mapY)
}

// liftElement rewrites e (from its own field, always QQ/NumberField/
// MultiField, never QQ at this call site since MergeFields handles that
// trivially above) into dest, whose generator list is a superset of
// e.field's, using genMap to remap each of e's generator indices to its
// position in dest (spec.md §4.4 step 4). Rational and number-field
// elements have specialised fast paths that bypass the general
// polynomial recompose.
func liftElement(e *Element, dest *Field, genMap []uint) *Element {
	if e.field == dest {
		return e.Clone()
	}

	out := &Element{field: dest}

	switch e.field.kind {
	case FieldNumberField:
		out.frac = dest.ReduceFraction(liftNFElemToFraction(e.nfe, genMap[0]))
	case FieldMultiField:
		out.frac = dest.ReduceFraction(mpoly.ComposeGenFraction(e.frac, genMap))
	default:
		panic("ca: liftElement: unexpected field kind")
	}

	return out
}

// liftNFElemToFraction promotes a NumberField payload (rational
// coefficients of a polynomial in alpha) into a MultiField fraction over
// the destination ring: coefficients are cleared of denominators via
// their LCD, producing an integer-coefficient numerator polynomial over a
// single constant denominator.
func liftNFElemToFraction(nfe qqbar.NFElem, gen uint) mpoly.Fraction {
	lcd := big.NewInt(1)

	for _, c := range nfe.Coeffs {
		var g big.Int

		g.GCD(nil, nil, lcd, c.Denom())
		lcd.Div(new(big.Int).Mul(lcd, c.Denom()), &g)
	}

	intCoeffs := make([]big.Int, len(nfe.Coeffs))

	for i, c := range nfe.Coeffs {
		var scaled big.Rat

		scaled.Mul(&c, new(big.Rat).SetInt(lcd))
		intCoeffs[i] = *scaled.Num()
	}

	num := mpoly.SetFromUnivariate(gen, intCoeffs)
	den := mpoly.NewConstant(lcd)

	return mpoly.NewFraction(num, den)
}
