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
	"github.com/anthropic-sandbox/ca/pkg/ca/ideal"
	"github.com/anthropic-sandbox/ca/pkg/ca/symbol"
	"github.com/anthropic-sandbox/ca/pkg/mpoly"
	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// buildIdeal adapts a freshly-registered MultiField's extensions into the
// cache-independent description pkg/ca/ideal consumes, invokes the
// builder, and folds the resulting relations into f.ideal (spec.md §4.5).
// Runs exactly once, from FieldCache.InternExt, immediately after f is
// registered.
func buildIdeal(f *Field) {
	if f.kind != FieldMultiField {
		return
	}

	gens := make([]ideal.Generator, len(f.ext))

	for i := range f.ext {
		gens[i] = describeGenerator(f, i)
	}

	opts := ideal.Options{GammaShiftLimit: f.ctx.options.GammaShiftLimit}

	if idx := indexOfExt(f.ext, f.ctx.qqi.ext[0]); idx >= 0 {
		opts.HasI = true
		opts.IGenIndex = uint(idx)
	}

	for _, p := range ideal.Build(f.ring, gens, opts) {
		f.addIdealRelation(p)
	}
}

// describeGenerator builds the ideal.Generator description of field f's
// i'th generator.
func describeGenerator(f *Field, i int) ideal.Generator {
	ext := f.Ext(i)

	g := ideal.Generator{Kind: ext.Kind()}

	switch ext.Kind() {
	case symbol.Algebraic:
		g.Algebraic, _ = ext.Algebraic()
	case symbol.Constant:
		g.Const, _ = ext.Const()
	case symbol.Function:
		g.Func, _ = ext.Func()

		for _, a := range ext.Args() {
			g.Args = append(g.Args, describeArgument(a, f))
		}
	}

	return g
}

// describeArgument builds an ideal.Argument description of a
// function-application argument element, relative to the destination
// field f whose ambient ring the argument's rational-function value (if
// any) should be expressed over.
func describeArgument(a *Element, f *Field) ideal.Argument {
	arg := ideal.Argument{}

	if frac, ok := liftArgumentToRing(a, f); ok {
		arg.Lifted = true
		arg.Fraction = frac
	}

	if r, ok := a.Rational(); ok {
		arg.IsAlgebraic = true
		arg.Algebraic = qqbar.FromRat(&r)
	}

	return arg
}

// liftArgumentToRing expresses element e's value as a rational function
// over field f's ambient ring, when e's own generators are all already
// present among f's (the "can be lifted into K" test of spec.md §4.5b).
func liftArgumentToRing(e *Element, f *Field) (mpoly.Fraction, bool) {
	if e.IsSpecial() || e.field == nil {
		return mpoly.Fraction{}, false
	}

	if e.field.kind == FieldQQ {
		return mpoly.NewFractionFromConstant(&e.rat), true
	}

	genMap := make([]uint, len(e.field.ext))

	for i, id := range e.field.ext {
		idx := indexOfExt(f.ext, id)
		if idx < 0 {
			return mpoly.Fraction{}, false
		}

		genMap[i] = uint(idx)
	}

	switch e.field.kind {
	case FieldNumberField:
		return liftNFElemToFraction(e.nfe, genMap[0]), true
	case FieldMultiField:
		return mpoly.ComposeGenFraction(e.frac, genMap), true
	default:
		return mpoly.Fraction{}, false
	}
}

func indexOfExt(ext []ExtID, id ExtID) int {
	for i, e := range ext {
		if e == id {
			return i
		}
	}

	return -1
}
