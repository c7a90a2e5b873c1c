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

import log "github.com/sirupsen/logrus"

// extCacheInitBuckets/extCacheLoading mirror the teacher's
// pool.HEAP_POOL_INIT_BUCKETS / HEAP_POOL_LOADING constants in
// pkg/util/collection/pool/pool.go.
const (
	extCacheInitBuckets = 16
	extCacheLoading     = 75
)

// ExtID is the stable index returned by ExtCache.Intern, valid for the
// context's lifetime even across cache rehashing (spec.md §4.1, grounded
// on pkg/util/collection/pool/local_index.go's index-array-plus-buckets
// design).
type ExtID uint32

// ExtCache is the hash-consed extension store of spec.md §4.1: a growable
// array of extension slots plus a hash table of slot indices, rehashed by
// tripling the bucket count once load exceeds 75%, exactly as
// LocalIndex.rehashIfOverloaded does.
type ExtCache struct {
	slots   []*Extension
	buckets [][]uint32
}

// NewExtCache constructs an empty extension cache.
func NewExtCache() *ExtCache {
	return &ExtCache{
		slots:   nil,
		buckets: make([][]uint32, extCacheInitBuckets),
	}
}

// Get returns the extension stored at id.
func (c *ExtCache) Get(id ExtID) *Extension {
	return c.slots[id]
}

// Intern interns ext, returning the stable id of either the pre-existing
// structurally-equal extension or a freshly inserted copy.
func (c *ExtCache) Intern(ext *Extension) ExtID {
	bucket := ext.hash % uint64(len(c.buckets))

	for _, idx := range c.buckets[bucket] {
		if c.slots[idx].Equals(ext) {
			return ExtID(idx)
		}
	}

	id := ExtID(len(c.slots))
	c.slots = append(c.slots, ext)
	c.buckets[bucket] = append(c.buckets[bucket], uint32(id))

	c.rehashIfOverloaded()

	return id
}

func (c *ExtCache) rehashIfOverloaded() {
	load := (100 * len(c.slots)) / len(c.buckets)
	if load <= extCacheLoading {
		return
	}

	log.Debugf("ca: extension cache rehash at %d entries / %d buckets", len(c.slots), len(c.buckets))

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

// Len reports how many extensions have been interned (including slot 0's
// placeholder if ever installed).
func (c *ExtCache) Len() int { return len(c.slots) }
