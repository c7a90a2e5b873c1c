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
	"github.com/anthropic-sandbox/ca/pkg/acb"
	"github.com/anthropic-sandbox/ca/pkg/ca/symbol"
	"github.com/anthropic-sandbox/ca/pkg/qqbar"
)

// ExtKind distinguishes the three extension variants of spec.md §3.2. It
// is a re-export of symbol.ExtKind (see pkg/ca/symbol) so that both the
// core engine and the ideal builder share one vocabulary without an
// import cycle between them.
type ExtKind = symbol.ExtKind

const (
	// ExtAlgebraic is a closed algebraic number atom.
	ExtAlgebraic = symbol.Algebraic
	// ExtConstant is a nullary named constant (Pi, Euler).
	ExtConstant = symbol.Constant
	// ExtFunction is a named function symbol applied to element
	// arguments.
	ExtFunction = symbol.Function
)

// FuncCode enumerates the function symbols an ExtFunction extension may
// carry, per spec.md §3.2.
type FuncCode = symbol.FuncCode

// The function symbol set, in the order spec.md lists them.
const (
	FuncExp         = symbol.Exp
	FuncLog         = symbol.Log
	FuncSin         = symbol.Sin
	FuncCos         = symbol.Cos
	FuncTan         = symbol.Tan
	FuncCot         = symbol.Cot
	FuncAtan        = symbol.Atan
	FuncAsin        = symbol.Asin
	FuncAcos        = symbol.Acos
	FuncSign        = symbol.Sign
	FuncAbs         = symbol.Abs
	FuncSqrt        = symbol.Sqrt
	FuncRe          = symbol.Re
	FuncIm          = symbol.Im
	FuncConjugate   = symbol.Conjugate
	FuncFloor       = symbol.Floor
	FuncCeil        = symbol.Ceil
	FuncArg         = symbol.Arg
	FuncGamma       = symbol.Gamma
	FuncLogGamma    = symbol.LogGamma
	FuncErf         = symbol.Erf
	FuncErfc        = symbol.Erfc
	FuncErfi        = symbol.Erfi
	FuncRiemannZeta = symbol.RiemannZeta
	FuncHurwitzZeta = symbol.HurwitzZeta
	FuncEllipticK   = symbol.EllipticK
	FuncEllipticE   = symbol.EllipticE
	FuncPow         = symbol.Pow
)

// ConstCode enumerates the nullary named constants.
type ConstCode = symbol.ConstCode

const (
	// ConstPi is the constant pi.
	ConstPi = symbol.Pi
	// ConstEuler is Euler's number e.
	ConstEuler = symbol.Euler
)

// Extension is one atomic symbol contributing a generator to some field,
// per spec.md §3.2. Once interned it is immutable except for its numeric
// enclosure cache.
type Extension struct {
	kind ExtKind

	// ExtAlgebraic
	algebraic qqbar.Value

	// ExtConstant
	constant ConstCode

	// ExtFunction
	fn   FuncCode
	args []*Element

	hash  uint64
	depth int

	// enclosure caches the last-computed numeric enclosure together with
	// the precision at which it was computed, reused when a later request
	// does not need more precision (spec.md §3.2).
	encPrec uint
	enc     acb.CBall
	encSet  bool
}

// NewAlgebraicExtension builds (but does not intern) an algebraic-atom
// extension.
func NewAlgebraicExtension(v qqbar.Value) *Extension {
	e := &Extension{kind: ExtAlgebraic, algebraic: v, depth: 0}
	e.hash = hashAlgebraic(v)

	return e
}

// NewConstantExtension builds (but does not intern) a nullary constant
// extension.
func NewConstantExtension(c ConstCode) *Extension {
	e := &Extension{kind: ExtConstant, constant: c, depth: 0}
	e.hash = hashBytes([]byte{0xC0, byte(c)})

	return e
}

// NewFunctionExtension builds (but does not intern) a function-application
// extension over the given argument elements.
func NewFunctionExtension(fn FuncCode, args ...*Element) *Extension {
	maxDepth := 0

	h := hashBytes([]byte{0xF0, byte(fn)})

	for _, a := range args {
		d := a.extensionDepth()
		if d > maxDepth {
			maxDepth = d
		}

		h = mixHash(h, a.Hash())
	}

	return &Extension{kind: ExtFunction, fn: fn, args: args, depth: maxDepth + 1, hash: h}
}

// Kind reports which variant this extension is.
func (e *Extension) Kind() ExtKind { return e.kind }

// Depth returns the extension's depth (0 for atoms/constants, 1+max(arg
// depth) for function applications), used by the elimination order.
func (e *Extension) Depth() int { return e.depth }

// Hash returns the extension's cached structural hash.
func (e *Extension) Hash() uint64 { return e.hash }

// Func returns the function code and whether this extension is a function
// application.
func (e *Extension) Func() (FuncCode, bool) {
	if e.kind != ExtFunction {
		return 0, false
	}

	return e.fn, true
}

// Args returns the function-application argument elements (empty for
// non-function extensions).
func (e *Extension) Args() []*Element { return e.args }

// Algebraic returns the algebraic-atom value and whether this extension is
// an algebraic atom.
func (e *Extension) Algebraic() (qqbar.Value, bool) {
	if e.kind != ExtAlgebraic {
		return qqbar.Value{}, false
	}

	return e.algebraic, true
}

// Const returns the constant code and whether this extension is a named
// constant.
func (e *Extension) Const() (ConstCode, bool) {
	if e.kind != ExtConstant {
		return 0, false
	}

	return e.constant, true
}

// Equals is structural equality on representation (spec.md §3.2): two
// function-application extensions are equal only if their arguments are
// the identical Element (same field pointer, same payload), purely
// syntactic rather than up to canonical reduction.
func (e *Extension) Equals(o *Extension) bool {
	if e == o {
		return true
	}

	if e.kind != o.kind || e.hash != o.hash {
		return false
	}

	switch e.kind {
	case ExtAlgebraic:
		return algebraicEquals(e.algebraic, o.algebraic)
	case ExtConstant:
		return e.constant == o.constant
	case ExtFunction:
		if e.fn != o.fn || len(e.args) != len(o.args) {
			return false
		}

		for i := range e.args {
			if !e.args[i].SameRepresentation(o.args[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// Enclosure computes (and caches) this extension's numeric enclosure at
// the requested working precision, recursing into function-application
// arguments' own field enclosures as needed. Returns ok=false when a
// prerequisite (e.g. a Log/Div argument whose enclosure still contains
// zero) cannot be resolved at this precision; the caller (the arithmetic
// oracle loop) is responsible for retrying at higher precision.
func (e *Extension) Enclosure(ctx *Context, prec uint) (acb.CBall, bool) {
	if e.encSet && e.encPrec >= prec {
		return e.enc, true
	}

	var result acb.CBall

	switch e.kind {
	case ExtAlgebraic:
		e.algebraic = e.algebraic.Refine(prec)
		result = e.algebraic.Enclosure()
	case ExtConstant:
		switch e.constant {
		case ConstPi:
			result = acb.RealCBall(acb.Pi(prec))
		case ConstEuler:
			result = acb.RealCBall(acb.E(prec))
		default:
			return acb.CBall{}, false
		}
	case ExtFunction:
		args := make([]acb.CBall, len(e.args))

		for i, a := range e.args {
			enc, ok := a.Enclosure(ctx, prec)
			if !ok {
				return acb.CBall{}, false
			}

			args[i] = enc
		}

		enc, ok := evalFuncEnclosure(e.fn, args, prec)
		if !ok {
			return acb.CBall{}, false
		}

		result = enc
	default:
		return acb.CBall{}, false
	}

	e.enc, e.encPrec, e.encSet = result, prec, true

	return result, true
}

// Cmp implements the elimination order of spec.md §3.2: depth desc, head,
// arity, pairwise argument comparison. A negative result means e sorts
// before o (e is eliminated first / considered "more complex").
func (e *Extension) Cmp(o *Extension) int {
	if e.depth != o.depth {
		return o.depth - e.depth
	}

	if e.kind != o.kind {
		return int(e.kind) - int(o.kind)
	}

	switch e.kind {
	case ExtAlgebraic:
		return cmpAlgebraic(e.algebraic, o.algebraic)
	case ExtConstant:
		return int(e.constant) - int(o.constant)
	case ExtFunction:
		if e.fn != o.fn {
			return int(e.fn) - int(o.fn)
		}

		if len(e.args) != len(o.args) {
			return len(e.args) - len(o.args)
		}

		for i := range e.args {
			if c := e.args[i].CmpRepresentation(o.args[i]); c != 0 {
				return c
			}
		}

		return 0
	default:
		return 0
	}
}
