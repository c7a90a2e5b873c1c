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

import "github.com/anthropic-sandbox/ca/pkg/qqbar"

// fieldHashMultiplier is the rolling-hash multiplier for field identity
// hashing, per spec.md §4.2: hash_{i+1} = hash_i*C + ext_i.hash.
const fieldHashMultiplier = 100003

// fnvOffset/fnvPrime are the standard FNV-1a constants, used for hashing
// extensions' non-algebraic payloads.
const (
	fnvOffset = 1469598103934665603
	fnvPrime  = 1099511628211
)

func hashBytes(b []byte) uint64 {
	h := uint64(fnvOffset)

	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime
	}

	return h
}

// mixHash folds an additional hash value into an accumulator.
func mixHash(acc, next uint64) uint64 {
	acc ^= next
	acc *= fnvPrime

	return acc
}

func hashAlgebraic(v qqbar.Value) uint64 {
	return v.Hash()
}

func algebraicEquals(a, b qqbar.Value) bool {
	return a.Equals(b)
}

func cmpAlgebraic(a, b qqbar.Value) int {
	return a.Cmp(b)
}
