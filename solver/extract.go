// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Extract zips the registry with the constant column of an RREF matrix.
// Values within eps of an integer are snapped to it, which removes
// elimination noise such as 4.999999999.
// Errors:
//   - matrix.ErrNilMatrix for a nil rref.
//   - matrix.ErrDimensionMismatch when the registry and rref disagree in length.
//   - ErrNonInteger under WithIntegerResults.
func Extract(reg *Registry, rref *matrix.Dense, opts ...Option) (Solution, error) {
	if err := matrix.ValidateNotNil(rref); err != nil {
		return nil, solverErrorf(opExtract, err)
	}
	if reg == nil || reg.Len() != rref.Rows() {
		return nil, solverErrorf(opExtract, matrix.ErrDimensionMismatch)
	}

	o := gatherOptions(opts...)
	last := rref.Cols() - 1
	out := make(Solution, reg.Len())
	for i, name := range reg.names {
		v, err := rref.At(i, last)
		if err != nil {
			return nil, solverErrorf(opExtract, err)
		}
		if r, ok := snap(v, o.eps); ok {
			v = r
		} else if o.integer {
			return nil, solverErrorf(opExtract, fmt.Errorf("%s = %g: %w", name, v, ErrNonInteger))
		}
		out[name] = v
	}

	return out, nil
}

// snap returns the nearest integer to v when it lies within eps.
func snap(v, eps float64) (float64, bool) {
	r := math.Round(v)
	if math.Abs(v-r) > eps {
		return v, false
	}
	if r == 0 {
		r = 0 // drop the sign of -0
	}

	return r, true
}
