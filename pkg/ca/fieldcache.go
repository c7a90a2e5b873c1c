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
	log "github.com/sirupsen/logrus"
)

// FieldCache is the hash-consed field store of spec.md §4.2: parallel in
// structure to ExtCache, but hashed with the teacher-style rolling hash
// (fieldHash) so that field identity tracks the exact extension-tuple
// recombination semantics rather than a generic structural hash.
type FieldCache struct {
	ctx     *Context
	slots   []*Field
	buckets [][]uint32
}

// NewFieldCache constructs an empty field cache bound to ctx.
func NewFieldCache(ctx *Context) *FieldCache {
	return &FieldCache{
		ctx:     ctx,
		buckets: make([][]uint32, extCacheInitBuckets),
	}
}

// Get returns the field at the given cache slot.
func (c *FieldCache) Get(i int) *Field { return c.slots[i] }

// InternExt interns the (sorted, deduplicated) extension-id tuple ext,
// returning the pre-existing field if one with an identical tuple is
// already cached, or building and registering a fresh field otherwise.
// build_ideal runs exactly once, immediately after a fresh field is
// registered, per spec.md §4.2; the returned pointer is re-read from the
// slots array after that call completes, honouring §5's "must re-read
// any cached pointer after the call" rule for operations that may
// recursively grow the caches.
func (c *FieldCache) InternExt(ext []ExtID) *Field {
	h := fieldHash(ext, c.ctx.extCache)
	bucket := h % uint64(len(c.buckets))

	for _, idx := range c.buckets[bucket] {
		if sameExtTuple(c.slots[idx].ext, ext) {
			return c.slots[idx]
		}
	}

	kind := FieldMultiField

	switch {
	case len(ext) == 0:
		kind = FieldQQ
	case len(ext) == 1:
		if _, ok := c.ctx.extCache.Get(ext[0]).Algebraic(); ok {
			kind = FieldNumberField
		}
	}

	f := &Field{ctx: c.ctx, kind: kind, ext: ext, hash: h}

	switch kind {
	case FieldMultiField:
		f.ring = c.ctx.ringTable.Get(uint(len(ext)), c.ctx.options.MPolyOrdering)
	case FieldNumberField:
		alg, _ := c.ctx.extCache.Get(ext[0]).Algebraic()
		desc := buildNumberFieldDescriptor(alg)
		f.nf = &desc
	}

	idx := uint32(len(c.slots))
	c.slots = append(c.slots, f)
	c.buckets[bucket] = append(c.buckets[bucket], idx)

	c.rehashIfOverloaded()

	if kind == FieldMultiField {
		log.Debugf("ca: building ideal for field of %d generators", len(ext))
		buildIdeal(f)
	}

	// Re-read after build_ideal, since it may have recursively interned
	// further fields and triggered a rehash of this very cache.
	return c.slots[idx]
}

func (c *FieldCache) rehashIfOverloaded() {
	load := (100 * len(c.slots)) / len(c.buckets)
	if load <= extCacheLoading {
		return
	}

	log.Debugf("ca: field cache rehash at %d entries / %d buckets", len(c.slots), len(c.buckets))

	n := uint64(len(c.buckets) * 3)
	newBuckets := make([][]uint32, n)

	for _, bucket := range c.buckets {
		for _, idx := range bucket {
			h := c.slots[idx].hash % n
			newBuckets[h] = append(newBuckets[h], idx)
		}
	}

	c.buckets = newBuckets
}

// mergeExtTuples performs the parallel sorted-list merge of spec.md
// §4.4 step 2: walk a and b (both already sorted in elimination order)
// in parallel, output the more-complex extension first on disagreement,
// output once on equality. Returns the merged tuple plus, for each
// input, the generator-index map into the merged tuple (genMap[i] is
// where input generator i lands in the result).
func mergeExtTuples(a, b []ExtID, cache *ExtCache) (merged []ExtID, mapA, mapB []uint) {
	mapA = make([]uint, len(a))
	mapB = make([]uint, len(b))

	i, j := 0, 0

	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && cache.Get(a[i]).Cmp(cache.Get(b[j])) < 0):
			mapA[i] = uint(len(merged))
			merged = append(merged, a[i])
			i++
		case i >= len(a) || (j < len(b) && cache.Get(b[j]).Cmp(cache.Get(a[i])) < 0):
			mapB[j] = uint(len(merged))
			merged = append(merged, b[j])
			j++
		default:
			mapA[i] = uint(len(merged))
			mapB[j] = uint(len(merged))
			merged = append(merged, a[i])
			i++
			j++
		}
	}

	return merged, mapA, mapB
}
