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
package ideal

import (
	"github.com/anthropic-sandbox/ca/pkg/ca/symbol"
	"github.com/anthropic-sandbox/ca/pkg/mpoly"
)

// sqrtRelation implements spec.md §4.5 rule (b): when generator gen is
// sqrt(t) and t lifts into this field's ambient ring as p/q in lowest
// terms, contribute q*gen^2 - p to the ideal.
func sqrtRelation(gen uint, g Generator) *mpoly.Poly {
	if g.Kind != symbol.Function || g.Func != symbol.Sqrt {
		return nil
	}

	if len(g.Args) != 1 || !g.Args[0].Lifted {
		return nil
	}

	frac := g.Args[0].Fraction

	genSq := mpoly.NewGen(gen).PowUint(2)

	return frac.Den.Mul(genSq).Sub(frac.Num)
}
