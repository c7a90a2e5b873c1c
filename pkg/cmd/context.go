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

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthropic-sandbox/ca/pkg/ca"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Inspect the field/extension state a context accumulates",
}

// contextShowCmd builds each of the six scenarios in turn against one
// shared context and reports the field each scenario's result settled
// into, showing how the extension cache and field cache grow and get
// reused as scenarios share generators (e.g. every scenario mentioning
// sqrt(2) merges into the same NumberField).
var contextShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Build the spec.md §8 scenarios and report the field each result lands in",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := newContext(cmd)

		for _, s := range scenarios() {
			x := s.Build(ctx)
			fmt.Printf("%s: %s\n", s.Name, s.Expr)

			field := x.Field()
			if field == nil {
				fmt.Println("    special value, no field")
				continue
			}

			fmt.Printf("    field kind=%s generators=%d ideal-relations=%d\n",
				fieldKindName(field.Kind()), field.NumGens(), len(field.Ideal()))

			for i := 0; i < field.NumGens(); i++ {
				ext := field.Ext(i)
				fmt.Printf("      gen[%d]: kind=%s depth=%d\n", i, extKindName(ext.Kind()), ext.Depth())
			}
		}
	},
}

func fieldKindName(k ca.FieldKind) string {
	switch k {
	case ca.FieldQQ:
		return "QQ"
	case ca.FieldNumberField:
		return "NumberField"
	case ca.FieldMultiField:
		return "MultiField"
	default:
		return "unknown"
	}
}

func extKindName(k ca.ExtKind) string {
	switch k {
	case ca.ExtAlgebraic:
		return "Algebraic"
	case ca.ExtConstant:
		return "Constant"
	case ca.ExtFunction:
		return "Function"
	default:
		return "unknown"
	}
}

func init() {
	contextCmd.AddCommand(contextShowCmd)
	rootCmd.AddCommand(contextCmd)
}
