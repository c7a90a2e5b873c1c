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

// IsZero decides whether x is exactly zero, consulting the numeric
// oracle at escalating precision per spec.md §4.6: symbolic fast path
// first (syntactic zero in QQ/NumberField/MultiField payload), then
// repeated enclosure refinement from ctx.options.LowPrec up to
// PrecLimit, doubling each round. Returns ok=false (Unknown, per spec.md
// §4.7) if the precision limit is exhausted without the enclosure
// excluding zero -- this engine never declares a nonzero symbolic
// expression to be zero without either the syntactic check or the ideal
// membership test (ca/ideal) succeeding.
func IsZero(ctx *Context, x *Element) (bool, bool) {
	if x.IsSpecial() {
		return false, false
	}

	if x.field == nil || x.field.kind == FieldQQ {
		return x.rat.Sign() == 0, true
	}

	switch x.field.kind {
	case FieldNumberField:
		// NumberField payloads are already reduced modulo the defining
		// polynomial, a canonical form with no further relations, so
		// syntactic zero is conclusive either way.
		return x.nfe.IsZero(), true
	case FieldMultiField:
		if x.frac.IsZero() {
			return true, true
		}
	}

	return decideZeroByOracle(ctx, x)
}

// decideZeroByOracle runs the escalating-precision enclosure loop: a
// nonzero syntactic representation might still denote zero (the field's
// ideal may not yet contain the relation proving it), so the oracle is
// the final arbiter. It can prove nonzero (enclosure excludes zero) but
// never prove zero on its own; symbolic zero is decided above.
func decideZeroByOracle(ctx *Context, x *Element) (bool, bool) {
	prec := ctx.options.LowPrec

	for prec <= ctx.options.PrecLimit {
		enc, ok := x.Enclosure(ctx, prec)
		if ok && enc.ExcludesZero() {
			return false, true
		}

		prec *= 2
	}

	return false, false
}

// Equal decides whether x equals y, via IsZero(x-y).
func Equal(ctx *Context, x, y *Element) (bool, bool) {
	if x.IsSpecial() || y.IsSpecial() {
		return x.SameRepresentation(y), x.tag == y.tag
	}

	return IsZero(ctx, Sub(ctx, x, y))
}

// IsOne decides whether x equals the multiplicative identity.
func IsOne(ctx *Context, x *Element) (bool, bool) {
	return Equal(ctx, x, One(ctx))
}

// Sign decides the sign of a real element x: -1, 0, or 1, with ok=false
// when undecidable at the precision limit. Complex (non-real) elements
// always report ok=false, matching spec.md §4.6's restriction of Sign
// to real-valued elements.
func Sign(ctx *Context, x *Element) (int, bool) {
	if x.IsSpecial() {
		return 0, false
	}

	zero, ok := IsZero(ctx, x)
	if ok && zero {
		return 0, true
	}

	prec := ctx.options.LowPrec

	for prec <= ctx.options.PrecLimit {
		enc, ok := x.Enclosure(ctx, prec)
		if ok && enc.IsReal() && enc.Re.ExcludesZero() {
			if enc.Re.IsPositive() {
				return 1, true
			}

			return -1, true
		}

		prec *= 2
	}

	return 0, false
}

// IsReal decides whether x is a real number (zero imaginary part).
func IsReal(ctx *Context, x *Element) (bool, bool) {
	if x.IsSpecial() {
		return false, false
	}

	prec := ctx.options.LowPrec

	for prec <= ctx.options.PrecLimit {
		enc, ok := x.Enclosure(ctx, prec)
		if !ok {
			prec *= 2
			continue
		}

		if enc.IsReal() {
			return true, true
		}

		if enc.Im.ExcludesZero() {
			return false, true
		}

		prec *= 2
	}

	return false, false
}

// IsNegativeReal decides whether x is a real number strictly less than
// zero.
func IsNegativeReal(ctx *Context, x *Element) (bool, bool) {
	s, ok := Sign(ctx, x)
	if !ok {
		return false, false
	}

	real, ok := IsReal(ctx, x)
	if !ok || !real {
		return false, ok
	}

	return s < 0, true
}
