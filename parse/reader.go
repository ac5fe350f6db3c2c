// SPDX-License-Identifier: MIT

package parse

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/katalvlaran/linsolve/solver"
)

const (
	commentPrefix = "//"
	maxLineBytes  = 1 << 20
)

// Lines yields one equation per meaningful line of r. Blank lines and
// comments are skipped. The first error (malformed line or read failure)
// is yielded once, prefixed with "name:line", and ends the sequence.
func Lines(r io.Reader, name string) iter.Seq2[solver.Equation, error] {
	return func(yield func(solver.Equation, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		lineNo := 0
		for sc.Scan() {
			lineNo++
			line := sc.Text()
			if skip(line) {
				continue
			}
			eq, err := ParseEquation(line)
			if err != nil {
				yield(solver.Equation{}, lineErrorf(name, lineNo, err))
				return
			}
			if !yield(eq, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(solver.Equation{}, lineErrorf(name, lineNo+1, err))
		}
	}
}

// ReadAll collects every equation of r or returns the first error.
func ReadAll(r io.Reader, name string) ([]solver.Equation, error) {
	var eqs []solver.Equation
	for eq, err := range Lines(r, name) {
		if err != nil {
			return nil, err
		}
		eqs = append(eqs, eq)
	}

	return eqs, nil
}

// skip reports blank and comment lines.
func skip(line string) bool {
	trimmed := strings.TrimSpace(line)

	return trimmed == "" || strings.HasPrefix(trimmed, commentPrefix)
}
