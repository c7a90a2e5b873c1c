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
	"github.com/anthropic-sandbox/ca/pkg/mpoly"
	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// FieldKind distinguishes the three field variants of spec.md §3.3.
type FieldKind int

const (
	// FieldQQ is the rational field (empty extension tuple).
	FieldQQ FieldKind = iota
	// FieldNumberField is a simple algebraic extension Q(alpha).
	FieldNumberField
	// FieldMultiField is a general tuple of two-or-more extensions (or a
	// single non-algebraic extension) with an explicit ideal.
	FieldMultiField
)

// Field is a finitely generated ordered tuple of extensions together with
// the ideal of known relations between their values (spec.md §3.3).
// Fields are owned by a Context's field cache; the ctx back-pointer lets
// field-level operations (elimination-order comparisons, ideal
// reduction) reach the owning extension/field caches without threading a
// Context parameter through every call, while the field itself is never
// responsible for its own teardown (the Context clears it).
type Field struct {
	ctx  *Context
	kind FieldKind
	ext  []ExtID
	ring *mpoly.Ring
	ideal []*mpoly.Poly
	nf   *qqbar.NumberFieldDescriptor
	hash uint64
}

// Kind reports which field variant this is.
func (f *Field) Kind() FieldKind { return f.kind }

// Extensions returns the field's ordered, deduplicated generator list.
func (f *Field) Extensions() []ExtID { return f.ext }

// NumGens reports the number of generators (ambient ring variables).
func (f *Field) NumGens() int { return len(f.ext) }

// Ideal returns the field's stored ideal generators (MultiField only).
func (f *Field) Ideal() []*mpoly.Poly { return f.ideal }

// Ring returns the field's ambient polynomial ring (MultiField only, nil
// otherwise).
func (f *Field) Ring() *mpoly.Ring { return f.ring }

// NumberField returns the field's number-field descriptor and whether
// this field is a NumberField.
func (f *Field) NumberField() (*qqbar.NumberFieldDescriptor, bool) {
	if f.kind != FieldNumberField {
		return nil, false
	}

	return f.nf, true
}

// Ext returns the i'th generator's Extension.
func (f *Field) Ext(i int) *Extension {
	return f.ctx.extCache.Get(f.ext[i])
}

// Generator returns the polynomial for the i'th generator in this field's
// ambient ring (MultiField only).
func (f *Field) Generator(i int) *mpoly.Poly {
	return mpoly.NewGen(uint(i))
}

// addIdealRelation appends a relation to the field's ideal, immediately
// reducing it against what is already stored, matching spec.md §4.5's
// "all relations added to the ideal are immediately normalised" (no
// separate Gröbner completion).
func (f *Field) addIdealRelation(p *mpoly.Poly) {
	if p.IsZero() {
		return
	}

	reduced := mpoly.Reduce(p, f.ideal, f.reduceBudget())
	if reduced.IsZero() {
		return
	}

	f.ideal = append(f.ideal, reduced)
}

// reduceBudget returns this field's canonical-reduction work budget,
// derived from the owning context's Gröbner option ceilings.
func (f *Field) reduceBudget() mpoly.ReduceBudget {
	return mpoly.DefaultReduceBudget(
		f.ctx.options.GroebnerLengthLimit,
		f.ctx.options.GroebnerPolyLengthLimit,
		f.ctx.options.GroebnerPolyBitsLimit,
	)
}

// ReduceFraction reduces frac modulo this field's stored ideal (spec.md
// §4.6: every MultiField element payload is kept in canonical reduced
// form, not just newly-added ideal generators). A no-op for fields with
// no ideal (QQ, NumberField) since Reduce over an empty generator list
// returns its input unchanged.
func (f *Field) ReduceFraction(frac mpoly.Fraction) mpoly.Fraction {
	return mpoly.ReduceFraction(frac, f.ideal, f.reduceBudget())
}

// fieldHash computes the spec.md §4.2 rolling hash of an extension-id
// tuple.
func fieldHash(ext []ExtID, cache *ExtCache) uint64 {
	var h uint64

	for _, id := range ext {
		h = h*fieldHashMultiplier + cache.Get(id).hash
	}

	return h
}

// sameExtTuple reports whether two (already sorted) extension-id lists
// are identical; since extensions are themselves interned, this is a
// plain index comparison (spec.md §4.2: "pointer equality, since
// extensions are themselves interned").
func sameExtTuple(a, b []ExtID) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
