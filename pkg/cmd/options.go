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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anthropic-sandbox/ca/pkg/ca"
)

// newContext builds a fresh *ca.Context with the persistent flags common to
// every subcommand applied to its Options vector, and raises logrus's level
// when --verbose is set (mirroring the teacher's getSchemaStack building a
// configuration struct from cobra flags before constructing the real
// object).
func newContext(cmd *cobra.Command) *ca.Context {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	ctx := ca.NewContext()
	opts := ctx.Options()

	opts.PrecLimit = GetUint(cmd, "prec-limit")
	opts.LowPrec = GetUint(cmd, "low-prec")
	opts.GammaShiftLimit = GetInt(cmd, "gamma-shift-limit")

	return ctx
}

// optionsCmd prints the effective options vector a fresh context would be
// constructed with, given the current flags.
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the options vector a fresh context would use",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := newContext(cmd)
		opts := ctx.Options()

		fmt.Printf("prec-limit:        %d\n", opts.PrecLimit)
		fmt.Printf("low-prec:          %d\n", opts.LowPrec)
		fmt.Printf("qqbar-deg-limit:   %d\n", opts.QQBarDegLimit)
		fmt.Printf("smooth-limit:      %d\n", opts.SmoothLimit)
		fmt.Printf("lll-prec:          %d\n", opts.LLLPrec)
		fmt.Printf("pow-limit:         %d\n", opts.PowLimit)
		fmt.Printf("vieta-limit:       %d\n", opts.VietaLimit)
		fmt.Printf("gamma-shift-limit: %d\n", opts.GammaShiftLimit)
		fmt.Printf("use-groebner:      %t\n", opts.UseGroebner)
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
