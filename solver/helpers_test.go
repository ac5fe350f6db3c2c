// SPDX-License-Identifier: MIT
package solver_test

import "github.com/katalvlaran/linsolve/solver"

// eq builds lhs = rhs[0] + rhs[1] + … + constant the way the parser does.
func eq(constant int, lhs string, rhs ...string) solver.Equation {
	coeffs := map[string]int{lhs: -1}
	for _, name := range rhs {
		coeffs[name]++
	}

	return solver.Equation{Coeffs: coeffs, Constant: constant}
}
