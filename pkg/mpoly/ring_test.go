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
package mpoly

import "testing"

func Test_Ring_00_GenOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Gen out of range did not panic")
		}
	}()

	r := NewRing(2, Lex)
	r.Gen(2)
}

func Test_Ring_01_GenInRangeMatchesNewGen(t *testing.T) {
	r := NewRing(3, DegLex)

	if !r.Gen(1).Equals(NewGen(1)) {
		t.Errorf("Ring.Gen(1) != NewGen(1)")
	}
}

func Test_Ring_02_RingTableCachesByArity(t *testing.T) {
	table := NewRingTable()

	a := table.Get(4, Lex)
	b := table.Get(4, DegRevLex)

	if a != b {
		t.Errorf("RingTable.Get should return the same *Ring for a repeated arity")
	}

	if a.NumVars() != 4 {
		t.Errorf("NumVars() = %d, want 4", a.NumVars())
	}
}
