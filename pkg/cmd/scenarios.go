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
package cmd

import "github.com/anthropic-sandbox/ca/pkg/ca"

// scenario is one of the six literal end-to-end checks: an expression whose
// is_zero-ness is the thing under test, and the TRUE/FALSE the engine is
// expected to return for it (never UNKNOWN).
type scenario struct {
	Name     string
	Expr     string
	Build    func(ctx *ca.Context) *ca.Element
	WantZero bool
}

// scenarios returns the six end-to-end checks, built fresh against the
// supplied context so each runs under its own ideal cache and options.
func scenarios() []scenario {
	return []scenario{
		{
			Name: "a",
			Expr: "(1 + sqrt(2))*(1 - sqrt(2)) + 1",
			Build: func(ctx *ca.Context) *ca.Element {
				s2 := ca.Sqrt(ctx, ca.FromInt64(ctx, 2))
				lhs := ca.Mul(ctx, ca.Add(ctx, ca.One(ctx), s2), ca.Sub(ctx, ca.One(ctx), s2))
				return ca.Add(ctx, lhs, ca.One(ctx))
			},
			WantZero: true,
		},
		{
			Name: "b",
			Expr: "log(-1) - pi*i",
			Build: func(ctx *ca.Context) *ca.Element {
				negOne := ca.Neg(ctx, ca.One(ctx))
				return ca.Sub(ctx, ca.Log(ctx, negOne), ca.Mul(ctx, ca.Pi(ctx), ca.I(ctx)))
			},
			WantZero: true,
		},
		{
			Name: "c",
			Expr: "(exp(1+sqrt(2)) * exp(1-sqrt(2))) / exp(1)^2 - 1",
			Build: func(ctx *ca.Context) *ca.Element {
				s2 := ca.Sqrt(ctx, ca.FromInt64(ctx, 2))
				one := ca.One(ctx)
				num := ca.Mul(ctx, ca.Exp(ctx, ca.Add(ctx, one, s2)), ca.Exp(ctx, ca.Sub(ctx, one, s2)))
				den := ca.PowInt(ctx, ca.Exp(ctx, one), 2)
				return ca.Sub(ctx, ca.Div(ctx, num, den), one)
			},
			WantZero: true,
		},
		{
			Name: "d",
			Expr: "i^i - exp(-pi/2)",
			Build: func(ctx *ca.Context) *ca.Element {
				i := ca.I(ctx)
				lhs := ca.Pow(ctx, i, i)
				half := ca.Div(ctx, ca.Pi(ctx), ca.FromInt64(ctx, 2))
				rhs := ca.Exp(ctx, ca.Neg(ctx, half))
				return ca.Sub(ctx, lhs, rhs)
			},
			WantZero: true,
		},
		{
			Name: "e",
			Expr: "exp(pi*sqrt(163)) - (640320^3 + 744)",
			Build: func(ctx *ca.Context) *ca.Element {
				s163 := ca.Sqrt(ctx, ca.FromInt64(ctx, 163))
				lhs := ca.Exp(ctx, ca.Mul(ctx, ca.Pi(ctx), s163))
				cube := ca.PowInt(ctx, ca.FromInt64(ctx, 640320), 3)
				rhs := ca.Add(ctx, cube, ca.FromInt64(ctx, 744))
				return ca.Sub(ctx, lhs, rhs)
			},
			WantZero: false,
		},
		{
			Name: "f",
			Expr: "sqrt(i) - (1+i)/sqrt(2)",
			Build: func(ctx *ca.Context) *ca.Element {
				i := ca.I(ctx)
				lhs := ca.Sqrt(ctx, i)
				rhs := ca.Div(ctx, ca.Add(ctx, ca.One(ctx), i), ca.Sqrt(ctx, ca.FromInt64(ctx, 2)))
				return ca.Sub(ctx, lhs, rhs)
			},
			WantZero: true,
		},
	}
}
