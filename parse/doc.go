// SPDX-License-Identifier: MIT

// Package parse reads the equation text format into solver.Equation values.
//
// Format, one equation per line:
//
//	VAR = term (+ term)*
//
// VAR is an alphabetic name, each term is an alphabetic name or a
// non-negative integer. Blank lines and lines whose first non-blank
// characters are "//" are skipped. Files compressed with gzip are detected
// by their magic bytes and decompressed transparently.
//
//	// sample
//	offset = 4 + random + 1
//	location = 1 + origin + offset
//	origin = 3 + 5
//	random = 2
package parse
