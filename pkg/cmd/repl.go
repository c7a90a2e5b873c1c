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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anthropic-sandbox/ca/pkg/ca"
)

// replCmd is a small line-editing loop built on golang.org/x/term's
// Terminal (distinct from pkg/util/termio's full-screen widget mode,
// which the corset view/inspector subcommands use): each line names a
// scenario letter to evaluate, "options" to show the context's option
// vector, or "quit" to exit.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive loop: evaluate scenarios by letter against one shared context",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := newContext(cmd)

		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			runREPLLoop(ctx, os.Stdin, os.Stdout, "ca> ")
			return
		}

		state, err := term.MakeRaw(fd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer term.Restore(fd, state)

		width, _, err := term.GetSize(fd)
		if err != nil {
			width = 80
		}

		screen := struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}

		t := term.NewTerminal(screen, "ca> ")
		_ = t.SetSize(width, 24)

		runREPL(ctx, t)
	},
}

func runREPL(ctx *ca.Context, t *term.Terminal) {
	byName := make(map[string]scenario)
	for _, s := range scenarios() {
		byName[s.Name] = s
	}

	fmt.Fprintln(t, "ca repl: enter a scenario letter (a-f), \"list\", \"options\", or \"quit\"")

	for {
		line, err := t.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debugf("repl read error: %v", err)
			}

			return
		}

		if handleREPLLine(ctx, t, byName, line) {
			return
		}
	}
}

// runREPLLoop is the non-interactive fallback used when stdin isn't a
// terminal (piped input, scripted tests): plain line-at-a-time reading
// with no raw-mode editing.
func runREPLLoop(ctx *ca.Context, r io.Reader, w io.Writer, prompt string) {
	byName := make(map[string]scenario)
	for _, s := range scenarios() {
		byName[s.Name] = s
	}

	scanner := newLineScanner(r)

	fmt.Fprintln(w, "ca repl: enter a scenario letter (a-f), \"list\", \"options\", or \"quit\"")

	for {
		fmt.Fprint(w, prompt)

		line, ok := scanner()
		if !ok {
			return
		}

		if handleREPLLine(ctx, w, byName, line) {
			return
		}
	}
}

func handleREPLLine(ctx *ca.Context, w io.Writer, byName map[string]scenario, line string) (done bool) {
	line = strings.TrimSpace(line)

	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	case "list":
		for _, s := range scenarios() {
			fmt.Fprintf(w, "  %s: %s\n", s.Name, s.Expr)
		}

		return false
	case "options":
		opts := ctx.Options()
		fmt.Fprintf(w, "prec-limit=%d low-prec=%d gamma-shift-limit=%d\n",
			opts.PrecLimit, opts.LowPrec, opts.GammaShiftLimit)

		return false
	}

	s, ok := byName[line]
	if !ok {
		fmt.Fprintf(w, "unrecognised input %q (try \"list\")\n", line)
		return false
	}

	x := s.Build(ctx)
	zero, decided := ca.IsZero(ctx, x)
	fmt.Fprintf(w, "is_zero(%s) = %s\n", s.Expr, truthString(zero, decided))

	return false
}

// newLineScanner adapts an io.Reader into a pull-one-line-at-a-time
// function without pulling in bufio.Scanner's token-size limits.
func newLineScanner(r io.Reader) func() (string, bool) {
	var buf []byte

	readMore := func() ([]byte, bool) {
		tmp := make([]byte, 4096)

		n, err := r.Read(tmp)
		if n == 0 && err != nil {
			return nil, false
		}

		return tmp[:n], true
	}

	return func() (string, bool) {
		for {
			if i := indexByte(buf, '\n'); i >= 0 {
				line := string(buf[:i])
				buf = buf[i+1:]

				return strings.TrimSuffix(line, "\r"), true
			}

			chunk, ok := readMore()
			if !ok {
				if len(buf) > 0 {
					line := string(buf)
					buf = nil

					return line, true
				}

				return "", false
			}

			buf = append(buf, chunk...)
		}
	}
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}

	return -1
}

func init() {
	rootCmd.AddCommand(replCmd)
}
