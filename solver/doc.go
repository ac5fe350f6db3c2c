// SPDX-License-Identifier: MIT

// Package solver turns parsed linear equations into variable values.
//
// 🚀 Pipeline:
//
//	[]Equation ──Assemble──▶ Registry + augmented matrix
//	           ──matrix.RREF──▶ reduced row-echelon form
//	           ──Extract──▶ Solution (name → value)
//
// Each Equation is already balanced: the left-hand variable carries
// coefficient -1, right-hand variables carry their multiplicity and
// Constant is the sum of right-hand literals, i.e.
//
//	x = a + 3 + b + b   ⇒   Equation{Coeffs: {x: -1, a: 1, b: 2}, Constant: 3}
//
// ✨ Key properties:
//   - Columns follow first appearance across the input; inside one equation
//     variables are visited alphabetically, so assembly is deterministic.
//   - Solve never returns a partial Solution: any failure aborts the run.
//   - Failures are classified by KindOf into NoEquations, DimensionMismatch,
//     RankDeficient, Contradictory, NonInteger and Residual.
//
// ⚙️ Usage:
//
//	sol, err := solver.Solve([]solver.Equation{
//		{Coeffs: map[string]int{"x": -1, "y": 1}, Constant: 2}, // x = 2 + y
//		{Coeffs: map[string]int{"y": -1}, Constant: 3},         // y = 3
//	})
//	// sol == Solution{"x": 5, "y": 3}
package solver
