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

// Package symbol holds the extension-kind and function/constant code
// enumerations shared between pkg/ca and pkg/ca/ideal. Splitting these
// out avoids an import cycle: the ideal builder needs the same symbol
// vocabulary as the core engine but must not import pkg/ca itself (the
// core calls into the ideal builder, not the reverse).
package symbol

// ExtKind distinguishes the three extension variants of spec.md §3.2.
type ExtKind int

const (
	// Algebraic is a closed algebraic number atom.
	Algebraic ExtKind = iota
	// Constant is a nullary named constant (Pi, Euler).
	Constant
	// Function is a named function symbol applied to element arguments.
	Function
)

// FuncCode enumerates the function symbols an extension may carry.
type FuncCode int

// The function symbol set, in the order spec.md §3.2 lists them.
const (
	Exp FuncCode = iota
	Log
	Sin
	Cos
	Tan
	Cot
	Atan
	Asin
	Acos
	Sign
	Abs
	Sqrt
	Re
	Im
	Conjugate
	Floor
	Ceil
	Arg
	Gamma
	LogGamma
	Erf
	Erfc
	Erfi
	RiemannZeta
	HurwitzZeta
	EllipticK
	EllipticE
	Pow
)

// ConstCode enumerates the nullary named constants.
type ConstCode int

const (
	// Pi is the constant pi.
	Pi ConstCode = iota
	// Euler is Euler's number e.
	Euler
)
