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
	"math/big"

	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// ToAlgebraic attempts to coerce x into a closed algebraic qqbar.Value,
// succeeding for rationals and NumberField elements directly, and for
// MultiField elements whose payload happens to be a bare rational
// constant (spec.md §4.8: this is a best-effort downgrade, not a general
// decision procedure -- a MultiField element built from transcendental
// generators like Pi or Exp has no algebraic value to report).
func ToAlgebraic(x *Element) (qqbar.Value, bool) {
	if x.IsSpecial() || x.field == nil {
		return qqbar.Value{}, false
	}

	switch x.field.kind {
	case FieldQQ:
		return qqbar.FromRat(&x.rat), true
	case FieldNumberField:
		alpha, ok := x.field.Ext(0).Algebraic()
		if !ok {
			return qqbar.Value{}, false
		}

		return x.field.nf.ToValue(x.nfe, alpha), true
	case FieldMultiField:
		num, numConst := x.frac.Num.IsConstant()
		den, denConst := x.frac.Den.IsConstant()

		if !numConst || !denConst {
			return qqbar.Value{}, false
		}

		var r big.Rat

		r.SetFrac(&num, &den)

		return qqbar.FromRat(&r), true
	default:
		return qqbar.Value{}, false
	}
}
