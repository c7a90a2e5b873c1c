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

// Package ca implements the exact computable-number engine: the extension
// cache, field cache, element representation, field-merging algorithm and
// arithmetic/predicate layer described by spec.md §§3-4.
package ca

import (
	log "github.com/sirupsen/logrus"

	"github.com/anthropic-sandbox/ca/pkg/mpoly"
	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// Context owns a single engine's extension cache, field cache, growable
// table of ambient polynomial rings, the two distinguished fields QQ and
// QQ(i), and the bounded-integer options vector (spec.md §3.1).
type Context struct {
	extCache   *ExtCache
	fieldCache *FieldCache
	ringTable  *mpoly.RingTable
	options    Options

	qq  *Field
	qqi *Field
}

// NewContext constructs an empty context with QQ and QQ(i) pre-inserted,
// matching spec.md §3.1's lifecycle ("constructed empty; ℚ and ℚ(i)
// pre-inserted").
func NewContext() *Context {
	ctx := &Context{
		extCache:  NewExtCache(),
		ringTable: mpoly.NewRingTable(),
		options:   DefaultOptions(),
	}
	ctx.fieldCache = NewFieldCache(ctx)

	ctx.qq = ctx.fieldCache.InternExt(nil)

	iValue := qqbar.FromIUnit()
	iExt := NewAlgebraicExtension(iValue)
	iID := ctx.extCache.Intern(iExt)
	ctx.qqi = ctx.fieldCache.InternExt([]ExtID{iID})

	log.Debug("ca: context initialised with QQ and QQ(i)")

	return ctx
}

// Clear tears down the context's caches. Since this Go implementation
// relies on the garbage collector rather than explicit frees, Clear's
// role is limited to the observable contract spec.md §3.1/§5 describe
// (nothing may be looked up through ctx after this call); it still walks
// extensions in reverse insertion order while doing so, matching the
// teardown order the source's explicit-free discipline requires, so that
// any future hook added here (e.g. closing a log sink per extension) runs
// in the correct order.
func (c *Context) Clear() {
	for i := c.extCache.Len() - 1; i >= 0; i-- {
		c.extCache.slots[i] = nil
	}

	c.extCache.slots = nil
	c.fieldCache.slots = nil
}

// Options returns the context's mutable options vector.
func (c *Context) Options() *Options { return &c.options }

// QQ returns the distinguished rational field.
func (c *Context) QQ() *Field { return c.qq }

// QQi returns the distinguished Gaussian-rational field.
func (c *Context) QQi() *Field { return c.qqi }

// internFunction interns a FunctionCall extension over the given
// arguments as a fresh single-generator MultiField (or re-uses an
// existing one) and returns the element denoting that generator; shared
// by the Exp/Log/Sin/.../Pow constructors in special.go and arithmetic.go.
func internFunction(ctx *Context, fn FuncCode, args ...*Element) *Element {
	ext := NewFunctionExtension(fn, args...)
	id := ctx.extCache.Intern(ext)

	combined := []ExtID{id}
	for _, a := range args {
		if a.IsSpecial() || a.field == nil {
			continue
		}

		for _, g := range a.field.ext {
			combined = append(combined, g)
		}
	}

	merged, _, _ := mergeExtTuples([]ExtID{id}, dedupeSorted(combined[1:], ctx.extCache), ctx.extCache)

	f := ctx.fieldCache.InternExt(merged)

	genIdx := -1

	for i, e := range f.ext {
		if e == id {
			genIdx = i

			break
		}
	}

	return &Element{field: f, frac: mpoly.NewFractionFromPoly(mpoly.NewGen(uint(genIdx)))}
}

func dedupeSorted(ids []ExtID, cache *ExtCache) []ExtID {
	seen := map[ExtID]bool{}

	out := make([]ExtID, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}

		seen[id] = true

		out = append(out, id)
	}

	sortByElimination(out, cache)

	return out
}

func sortByElimination(ids []ExtID, cache *ExtCache) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && cache.Get(ids[j]).Cmp(cache.Get(ids[j-1])) < 0; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
