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
	"math/big"

	"github.com/anthropic-sandbox/ca/pkg/ca/symbol"
	"github.com/anthropic-sandbox/ca/pkg/mpoly"
)

// algebraicAtomRelation implements spec.md §4.5 rule (a): when generator
// gen is an algebraic number with integer-coefficient annihilating
// polynomial m(X), contribute m(x_gen) to the ideal.
func algebraicAtomRelation(gen uint, g Generator) *mpoly.Poly {
	if g.Kind != symbol.Algebraic {
		return nil
	}

	coeffs := g.Algebraic.IntegerMinPoly()
	if len(coeffs) == 0 {
		return nil
	}

	return mpoly.SetFromUnivariate(gen, coeffs)
}
