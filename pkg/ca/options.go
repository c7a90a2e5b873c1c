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

import "github.com/anthropic-sandbox/ca/pkg/mpoly"

// TrigForm selects the preferred internal representation for trigonometric
// function extensions.
type TrigForm int

const (
	// TrigExponential rewrites sin/cos/tan in terms of the complex
	// exponential when constructing new extensions.
	TrigExponential TrigForm = iota
	// TrigSineCosine keeps sin/cos as distinct generators.
	TrigSineCosine
	// TrigTangent prefers a single tangent generator where possible.
	TrigTangent
)

// Options is the bounded-integer/enum configuration vector every Context
// owns, matching spec.md §3.1's options list one field at a time.
type Options struct {
	// PrecLimit is the ceiling on working precision (in bits) the interval
	// oracle may escalate to before giving up and returning UNKNOWN.
	PrecLimit uint
	// LowPrec is the default low working precision tried first by the
	// oracle loop.
	LowPrec uint
	// QQBarDegLimit bounds the degree of algebraic numbers the engine will
	// construct or accept during coercion.
	QQBarDegLimit uint
	// SmoothLimit bounds the trial-division sweep used when factoring
	// integers during the degree-2 algebraic hoist.
	SmoothLimit uint
	// LLLPrec is the working precision used by lattice-reduction-style
	// integer relation detection (kept as an option even though the
	// log-relations feature itself is not implemented; see DESIGN.md).
	LLLPrec uint
	// PowLimit bounds the exponent magnitude for which integer `Pow` is
	// unrolled via repeated squaring rather than left as a symbolic
	// extension.
	PowLimit uint
	// GroebnerLengthLimit bounds the number of reduction steps a single
	// Reduce call may perform.
	GroebnerLengthLimit uint
	// GroebnerPolyLengthLimit bounds the number of terms a reduction
	// remainder may grow to.
	GroebnerPolyLengthLimit uint
	// GroebnerPolyBitsLimit bounds coefficient bit-length during
	// reduction.
	GroebnerPolyBitsLimit uint
	// VietaLimit bounds the degree at which the Gamma-shift rule expands
	// a product of linear factors via Vieta's formulas rather than
	// leaving the relation in factored form.
	VietaLimit uint
	// GammaShiftLimit bounds |n| for the Gamma-shift ideal rule (§4.5c);
	// kept as spec.md §9's open question decided to retain the source's
	// bound of 10, exposed here rather than hard-coded.
	GammaShiftLimit int
	// UseGroebner toggles whether the ideal builder additionally runs a
	// Gröbner-style normalisation pass over its generators (kept for
	// parity with the option surface of §6; the reduction engine itself
	// never requires a completed basis).
	UseGroebner bool
	// MPolyOrdering selects the monomial ordering used by fresh ambient
	// rings.
	MPolyOrdering mpoly.Ordering
	// TrigForm selects the preferred representation for new trig
	// extensions.
	TrigForm TrigForm
	// PrintFlags is an opaque bitmask consumed only by cmd/ca's
	// pretty-printer.
	PrintFlags uint
}

// DefaultOptions returns the Options a fresh Context is constructed with.
func DefaultOptions() Options {
	return Options{
		PrecLimit:               4096,
		LowPrec:                 64,
		QQBarDegLimit:           120,
		SmoothLimit:             1 << 20,
		LLLPrec:                 256,
		PowLimit:                1024,
		GroebnerLengthLimit:     1000,
		GroebnerPolyLengthLimit: 200,
		GroebnerPolyBitsLimit:   1 << 16,
		VietaLimit:              16,
		GammaShiftLimit:         10,
		UseGroebner:             false,
		MPolyOrdering:           mpoly.Lex,
		TrigForm:                TrigExponential,
		PrintFlags:              0,
	}
}
