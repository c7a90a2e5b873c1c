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

// conjugateElement implements the per-generator conjugation shortcuts of
// spec.md §4.3: a rational element is its own conjugate; a real element
// is its own conjugate; a pure algebraic-atom NumberField element
// conjugates by swapping to the conjugate-root generator directly
// (original_source/src/ca/conj.c's treatment of a field generated by a
// single qqbar_t: rather than wrapping the result in an opaque
// Conjugate() function symbol, a fresh generator for the conjugate root
// is interned and the same rational coefficient polynomial is
// re-evaluated over it). Anything else falls back to the general
// FuncConjugate function-application extension, whose numeric enclosure
// is handled directly in arithmetic.go's evalFuncEnclosure.
func conjugateElement(ctx *Context, x *Element) *Element {
	if x.field == nil || x.field.kind == FieldQQ {
		return x.Clone()
	}

	if real, ok := IsReal(ctx, x); ok && real {
		return x.Clone()
	}

	if x.field.kind == FieldNumberField {
		if alg, ok := x.field.Ext(0).Algebraic(); ok {
			if conjVal, changed := alg.ConjugatePair(); changed {
				conjExt := NewAlgebraicExtension(conjVal)
				id := ctx.extCache.Intern(conjExt)
				conjField := ctx.fieldCache.InternExt([]ExtID{id})

				out := &Element{field: conjField}
				out.nfe = conjField.nf.NewNFElem(x.nfe.Coeffs)

				return out
			}
		}
	}

	return internFunction(ctx, FuncConjugate, x)
}
