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

// SpecialTag is the tag bit packed alongside an element's field reference,
// per spec.md §3.4 / §9's "tagged special values packed into the field
// pointer" design note.
type SpecialTag uint8

const (
	// Regular elements carry a genuine field + payload.
	Regular SpecialTag = iota
	// Unknown poisons any expression it meets (acts as a supremum).
	Unknown
	// Undefined results from indeterminate forms (0*inf, inf-inf, 0/0).
	Undefined
	// UnsignedInfinity results from dividing a nonzero finite value by
	// zero.
	UnsignedInfinity
	// SignedInfinity carries a companion element (direction) describing
	// the complex direction of the infinity.
	SignedInfinity
)

// Element is the engine's value type (spec.md §3.4): a tagged field
// identity plus a payload whose shape depends on the field's variant.
type Element struct {
	tag       SpecialTag
	field     *Field
	direction *Element

	rat  big.Rat
	nfe  qqbar.NFElem
	frac mpoly.Fraction
}

// IsSpecial reports whether this element carries one of the four special
// tags rather than a regular field+payload value.
func (e *Element) IsSpecial() bool { return e.tag != Regular }

// Tag returns the element's special tag.
func (e *Element) Tag() SpecialTag { return e.tag }

// Field returns the element's field (nil for special elements other than
// SignedInfinity's borrowed direction payload, which itself carries a
// Regular field).
func (e *Element) Field() *Field { return e.field }

// Direction returns the companion element describing a SignedInfinity's
// direction, and whether this element is a SignedInfinity.
func (e *Element) Direction() (*Element, bool) {
	if e.tag != SignedInfinity {
		return nil, false
	}

	return e.direction, true
}

// zeroOfField returns the additive identity payload for f.
func zeroOfField(f *Field) *Element {
	e := &Element{field: f}

	switch f.kind {
	case FieldQQ:
		e.rat.SetInt64(0)
	case FieldNumberField:
		e.nfe = f.nf.ConstantElement(big.NewRat(0, 1))
	case FieldMultiField:
		e.frac = mpoly.NewFractionFromConstant(big.NewRat(0, 1))
	}

	return e
}

// FromRat builds a regular rational element in ctx's QQ field.
func FromRat(ctx *Context, v *big.Rat) *Element {
	e := &Element{field: ctx.qq}
	e.rat.Set(v)

	return e
}

// FromInt64 builds a regular integer element in ctx's QQ field.
func FromInt64(ctx *Context, v int64) *Element {
	return FromRat(ctx, big.NewRat(v, 1))
}

// Zero builds the additive identity of ctx's QQ field.
func Zero(ctx *Context) *Element { return FromInt64(ctx, 0) }

// One builds the multiplicative identity of ctx's QQ field.
func One(ctx *Context) *Element { return FromInt64(ctx, 1) }

// I builds the element i = sqrt(-1) in ctx's distinguished QQ(i) field.
func I(ctx *Context) *Element {
	e := &Element{field: ctx.qqi}
	e.nfe = ctx.qqi.nf.AlphaAsElement()

	return e
}

// NegI builds -i.
func NegI(ctx *Context) *Element {
	return Neg(ctx, I(ctx))
}

// Pi builds the element pi as a fresh ConstantCall extension in a
// MultiField of one generator.
func Pi(ctx *Context) *Element {
	ext := NewConstantExtension(ConstPi)
	id := ctx.extCache.Intern(ext)
	f := ctx.fieldCache.InternExt([]ExtID{id})

	return makeGenElement(f)
}

// PiI builds the element pi*i.
func PiI(ctx *Context) *Element {
	return Mul(ctx, Pi(ctx), I(ctx))
}

// makeGenElement builds the element equal to field f's sole or leading
// generator (used by Pi/Euler/Sqrt/etc. constructors that intern a
// single-extension field and want "the element that is that generator").
func makeGenElement(f *Field) *Element {
	e := &Element{field: f}

	switch f.kind {
	case FieldNumberField:
		e.nfe = f.nf.AlphaAsElement()
	case FieldMultiField:
		e.frac = mpoly.NewFractionFromPoly(mpoly.NewGen(uint(len(f.ext) - 1)))
	}

	return e
}

// Rational returns the element's rational payload and whether it lives
// in QQ.
func (e *Element) Rational() (big.Rat, bool) {
	if e.IsSpecial() || e.field == nil || e.field.kind != FieldQQ {
		return big.Rat{}, false
	}

	return e.rat, true
}

// Clone performs a deep-enough copy for an operation result to be built
// from (payload copy; field pointer shared since fields are immutable
// once interned).
func (e *Element) Clone() *Element {
	c := &Element{tag: e.tag, field: e.field}
	if e.direction != nil {
		c.direction = e.direction.Clone()
	}

	c.rat.Set(&e.rat)
	c.nfe = e.nfe
	c.frac = e.frac

	return c
}

// extensionDepth reports the depth used when this element appears as a
// function-application argument: 0 for QQ/special elements, otherwise the
// maximum depth among the field's generators.
func (e *Element) extensionDepth() int {
	if e.IsSpecial() || e.field == nil || e.field.kind == FieldQQ {
		return 0
	}

	max := 0

	for _, id := range e.field.ext {
		d := e.field.ctx.extCache.Get(id).Depth()
		if d > max {
			max = d
		}
	}

	return max
}

// Hash returns a structural hash of this element's (field, payload) pair,
// used when hashing a FunctionCall extension over this element as an
// argument.
func (e *Element) Hash() uint64 {
	h := uint64(fnvOffset)

	if e.IsSpecial() {
		return mixHash(h, uint64(e.tag)+1)
	}

	if e.field == nil {
		return h
	}

	switch e.field.kind {
	case FieldQQ:
		for _, b := range e.rat.Num().Bytes() {
			h = mixHash(h, uint64(b))
		}

		for _, b := range e.rat.Denom().Bytes() {
			h = mixHash(h, uint64(b)^0xff)
		}
	default:
		for _, id := range e.field.ext {
			h = mixHash(h, uint64(id))
		}

		h = mixHash(h, payloadHash(e))
	}

	return h
}

func payloadHash(e *Element) uint64 {
	h := uint64(fnvOffset)

	switch e.field.kind {
	case FieldNumberField:
		for _, c := range e.nfe.Coeffs {
			for _, b := range c.Num().Bytes() {
				h = mixHash(h, uint64(b))
			}
		}
	case FieldMultiField:
		h = mixHash(h, uint64(e.frac.Num.Len()))
		h = mixHash(h, uint64(e.frac.Den.Len()))
	}

	return h
}

// SameRepresentation is the syntactic equality test of spec.md §3.2 used
// by extension equality: same field pointer and bit-identical payload.
func (e *Element) SameRepresentation(o *Element) bool {
	if e.tag != o.tag {
		return false
	}

	if e.IsSpecial() {
		if e.tag == SignedInfinity {
			return e.direction.SameRepresentation(o.direction)
		}

		return true
	}

	if e.field != o.field {
		return false
	}

	if e.field == nil {
		return true
	}

	switch e.field.kind {
	case FieldQQ:
		return e.rat.Cmp(&o.rat) == 0
	case FieldNumberField:
		return nfElemEquals(e.nfe, o.nfe)
	case FieldMultiField:
		return e.frac.Num.Equals(o.frac.Num) && e.frac.Den.Equals(o.frac.Den)
	default:
		return false
	}
}

// CmpRepresentation provides a stable order over elements for the
// elimination-order comparison of function arguments (spec.md §3.2).
func (e *Element) CmpRepresentation(o *Element) int {
	if e.tag != o.tag {
		return int(e.tag) - int(o.tag)
	}

	if e.IsSpecial() {
		return 0
	}

	if e.field != o.field {
		eh, oh := e.Hash(), o.Hash()

		switch {
		case eh < oh:
			return -1
		case eh > oh:
			return 1
		default:
			return 0
		}
	}

	if e.field == nil {
		return 0
	}

	switch e.field.kind {
	case FieldQQ:
		return e.rat.Cmp(&o.rat)
	case FieldNumberField:
		return nfElemCmp(e.nfe, o.nfe)
	case FieldMultiField:
		if e.frac.Num.Len() != o.frac.Num.Len() {
			return e.frac.Num.Len() - o.frac.Num.Len()
		}

		return 0
	default:
		return 0
	}
}

func nfElemEquals(a, b qqbar.NFElem) bool {
	if len(a.Coeffs) != len(b.Coeffs) {
		return false
	}

	for i := range a.Coeffs {
		if a.Coeffs[i].Cmp(&b.Coeffs[i]) != 0 {
			return false
		}
	}

	return true
}

func nfElemCmp(a, b qqbar.NFElem) int {
	if len(a.Coeffs) != len(b.Coeffs) {
		return len(a.Coeffs) - len(b.Coeffs)
	}

	for i := range a.Coeffs {
		if c := a.Coeffs[i].Cmp(&b.Coeffs[i]); c != 0 {
			return c
		}
	}

	return 0
}

func buildNumberFieldDescriptor(v qqbar.Value) qqbar.NumberFieldDescriptor {
	return qqbar.NewNumberFieldFromValue(v)
}
