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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anthropic-sandbox/ca/pkg/ca"
)

// truthString renders the three-valued is_zero result the way the oracle
// loop in pkg/ca/predicates.go reports it: TRUE/FALSE when decided, UNKNOWN
// when the interval oracle never separated the value from zero by
// prec-limit.
func truthString(zero, decided bool) string {
	if !decided {
		return "UNKNOWN"
	}

	if zero {
		return "TRUE"
	}

	return "FALSE"
}

var evalCmd = &cobra.Command{
	Use:   "eval [scenario]",
	Short: "Run the six end-to-end is_zero scenarios (spec.md §8), or one named by letter a-f",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := newContext(cmd)

		var only string
		if len(args) > 0 {
			only = args[0]
		}

		exitCode := 0

		for _, s := range scenarios() {
			if only != "" && s.Name != only {
				continue
			}

			log.Debugf("evaluating scenario %s: %s", s.Name, s.Expr)

			x := s.Build(ctx)
			zero, decided := ca.IsZero(ctx, x)
			got := truthString(zero, decided)
			want := truthString(s.WantZero, true)

			status := "ok"
			if got != want {
				status = "MISMATCH"
				exitCode = 1
			}

			fmt.Printf("%s: is_zero(%s) = %s  (want %s)  [%s]\n", s.Name, s.Expr, got, want, status)
		}

		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
