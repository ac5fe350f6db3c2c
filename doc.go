// SPDX-License-Identifier: MIT

// Package linsolve solves systems of linear equations with integer
// coefficients, written one per line as
//
//	VAR = term + term + ...
//
// where every term is a variable name or a non-negative integer literal.
//
// The module is organized in small packages, each usable on its own:
//
//	matrix/        Row and Dense containers, Gauss-Jordan RREF with partial pivoting
//	solver/        equation model, matrix assembly, solution extraction, failure kinds
//	parse/         line grammar, comment skipping, plain or gzip input files
//	config/        TOML configuration of the numeric policy and the output
//	report/        text, JSON and YAML rendering of a solution
//	cmd/linsolve/  the command-line front end
//
// Quick example:
//
//	eqs, err := parse.ReadAll(strings.NewReader("x = y + 2\ny = 3\n"), "inline")
//	if err != nil {
//		return err
//	}
//	sol, err := solver.Solve(eqs)
//	if err != nil {
//		// solver.KindOf(err) tells a rank-deficient system from a contradictory one.
//		return err
//	}
//	_ = report.Write(os.Stdout, report.Text, report.New("inline", sol))
//	// x = 5
//	// y = 3
//
// A system is accepted only when it has exactly one solution: as many
// independent equations as unknowns, redundant rows reducing to 0 = 0.
package linsolve
