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
	"testing"

	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

func Test_Cache_00_InternIsIdempotentForIdenticalExtension(t *testing.T) {
	ctx := NewContext()

	a := NewAlgebraicExtension(qqbar.FromInt64(2))
	b := NewAlgebraicExtension(qqbar.FromInt64(2))

	idA := ctx.extCache.Intern(a)
	idB := ctx.extCache.Intern(b)

	if idA != idB {
		t.Errorf("Intern(2) = %d, Intern(2) again = %d, want equal ids", idA, idB)
	}

	if ctx.extCache.Get(idA) != ctx.extCache.Get(idB) {
		t.Errorf("Get(idA) and Get(idB) returned distinct pointers for the same interned extension")
	}
}

func Test_Cache_01_InternDistinguishesDifferentExtensions(t *testing.T) {
	ctx := NewContext()

	id2 := ctx.extCache.Intern(NewAlgebraicExtension(qqbar.FromInt64(2)))
	id3 := ctx.extCache.Intern(NewAlgebraicExtension(qqbar.FromInt64(3)))

	if id2 == id3 {
		t.Errorf("Intern(2) and Intern(3) collided on id %d", id2)
	}
}

func Test_Cache_02_InternExtReturnsSameFieldForIdenticalTuples(t *testing.T) {
	ctx := NewContext()

	id := ctx.extCache.Intern(NewAlgebraicExtension(qqbar.FromInt64(5)))

	f1 := ctx.fieldCache.InternExt([]ExtID{id})
	f2 := ctx.fieldCache.InternExt([]ExtID{id})

	if f1 != f2 {
		t.Errorf("InternExt([id]) called twice returned distinct field pointers")
	}
}

func Test_Cache_03_InternExtDistinguishesDifferentTuples(t *testing.T) {
	ctx := NewContext()

	id2 := ctx.extCache.Intern(NewAlgebraicExtension(qqbar.FromInt64(2)))
	id3 := ctx.extCache.Intern(NewAlgebraicExtension(qqbar.FromInt64(3)))

	fA := ctx.fieldCache.InternExt([]ExtID{id2})
	fB := ctx.fieldCache.InternExt([]ExtID{id3})

	if fA == fB {
		t.Errorf("InternExt with different generator tuples returned the same field pointer")
	}
}
