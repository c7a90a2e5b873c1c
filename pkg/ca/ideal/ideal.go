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

// Package ideal synthesises the polynomial relations a freshly interned
// MultiField's generators are known to satisfy (spec.md §4.5). It depends
// only on pkg/mpoly, pkg/qqbar and pkg/ca/symbol -- never on pkg/ca
// itself -- since the core engine (pkg/ca) is the caller: pkg/ca builds
// a []Generator description of a field's extensions and invokes Build,
// rather than this package reaching back into ca.Field/ca.Context.
package ideal

import (
	"github.com/anthropic-sandbox/ca/pkg/ca/symbol"
	"github.com/anthropic-sandbox/ca/pkg/mpoly"
	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// Generator describes one generator of the field being built, in
// elimination order (index 0 is the ambient ring's generator 0, etc.).
type Generator struct {
	Kind  symbol.ExtKind
	Func  symbol.FuncCode
	Const symbol.ConstCode

	// Algebraic is valid when Kind == symbol.Algebraic: the generator's
	// own closed algebraic value.
	Algebraic qqbar.Value

	// Args holds, for Kind == symbol.Function, one entry per function
	// argument. Lifted/Fraction describe the argument's value as a
	// rational function over this field's generators (when the argument
	// could be lifted into this field, per spec.md §4.5b's "if t can be
	// lifted into K"); IsAlgebraic/Algebraic describe a best-effort
	// closed algebraic evaluation of the argument, independent of
	// whether it lifted into this field's ambient ring.
	Args []Argument
}

// Argument is one function-application argument's description.
type Argument struct {
	Lifted      bool
	Fraction    mpoly.Fraction
	IsAlgebraic bool
	Algebraic   qqbar.Value
}

// Options bounds the ideal builder's behaviour, mirroring the relevant
// subset of ca.Options.
type Options struct {
	// GammaShiftLimit bounds |n| for rule (c).
	GammaShiftLimit int
	// HasI reports whether the generator i = sqrt(-1) is itself among
	// this field's generators (rule (d)'s cross-family relations are
	// gated on this).
	HasI bool
	// IGenIndex is i's generator index, valid when HasI.
	IGenIndex uint
}

// Build synthesises the ideal for a field of the given generators over
// ring, applying rules (a)-(e) of spec.md §4.5 in order (so that
// relations eliminating more complex generators are added first,
// matching the elimination order the generators are already listed in).
// Every rule silently contributes nothing if its prerequisites are not
// met, per §4.5's failure semantics.
func Build(ring *mpoly.Ring, gens []Generator, opts Options) []*mpoly.Poly {
	var out []*mpoly.Poly

	add := func(p *mpoly.Poly) {
		if p != nil && !p.IsZero() {
			out = append(out, p)
		}
	}

	addAll := func(ps []*mpoly.Poly) {
		for _, p := range ps {
			add(p)
		}
	}

	for i, g := range gens {
		add(algebraicAtomRelation(uint(i), g))
	}

	for i, g := range gens {
		add(sqrtRelation(uint(i), g))
	}

	addAll(sqrtProductRelations(gens))
	addAll(gammaShiftRelations(gens, opts))
	addAll(erfFamilyRelations(gens, opts))
	addAll(ellipticLegendreRelations(gens))

	return out
}
