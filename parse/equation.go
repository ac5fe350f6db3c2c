// SPDX-License-Identifier: MIT

package parse

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/linsolve/solver"
)

const (
	tokEquals = "="
	tokPlus   = "+"
)

// ParseEquation parses one line of the form "x = a + 3 + b".
// The left-hand variable gets coefficient -1, each right-hand occurrence of a
// variable adds 1 to its coefficient and integer literals are summed into
// Constant:
//
//	"x = a + 3 + b + b" → {x: -1, a: 1, b: 2}, Constant 3
//
// A variable on both sides is balanced as well: "x = x + 1" yields {x: 0}.
// Errors wrap ErrFormat.
func ParseEquation(line string) (solver.Equation, error) {
	lhs, rhs, ok := strings.Cut(line, tokEquals)
	if !ok || strings.Contains(rhs, tokEquals) {
		return solver.Equation{}, formatErrorf("expected exactly one %q", tokEquals)
	}

	name := strings.TrimSpace(lhs)
	if !isName(name) {
		return solver.Equation{}, formatErrorf("left-hand side %q is not a single variable", name)
	}

	eq := solver.Equation{Coeffs: map[string]int{name: -1}}
	for _, term := range strings.Split(rhs, tokPlus) {
		term = strings.TrimSpace(term)
		switch {
		case isName(term):
			eq.Coeffs[term]++
		case isNumber(term):
			n, err := strconv.Atoi(term)
			if err != nil || eq.Constant > math.MaxInt-n {
				return solver.Equation{}, formatErrorf("constant %q out of range", term)
			}
			eq.Constant += n
		default:
			return solver.Equation{}, formatErrorf("invalid term %q", term)
		}
	}

	return eq, nil
}

// isName reports a non-empty run of letters.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

// isNumber reports a non-empty run of ASCII digits (no sign).
func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
