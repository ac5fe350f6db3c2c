// SPDX-License-Identifier: MIT

package solver

import (
	"math"
	"slices"
	"sort"
)

// Equation is one balanced linear equation: Σ Coeffs[v]·v + Constant = 0.
// For x = a + 3 the parser produces Coeffs {x: -1, a: 1} and Constant 3.
type Equation struct {
	Coeffs   map[string]int
	Constant int
}

// Vars returns the variable names of e in alphabetical order.
func (e Equation) Vars() []string {
	names := make([]string, 0, len(e.Coeffs))
	for name := range e.Coeffs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Residual evaluates Σ Coeffs[v]·values[v] + Constant.
// The second result is false when a variable has no value.
func (e Equation) Residual(values map[string]float64) (float64, bool) {
	sum := float64(e.Constant)
	for _, name := range e.Vars() {
		v, ok := values[name]
		if !ok {
			return 0, false
		}
		sum += float64(e.Coeffs[name]) * v
	}

	return sum, true
}

// Registry is the ordered set of variable names; a name's position is its
// column in the coefficient matrix.
type Registry struct {
	names []string
	index map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add appends name if it is new and returns its column index.
// The boolean reports whether the name was added.
func (r *Registry) Add(name string) (int, bool) {
	if i, ok := r.index[name]; ok {
		return i, false
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)

	return len(r.names) - 1, true
}

// Index returns the column of name.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]

	return i, ok
}

// Len returns the number of registered names.
func (r *Registry) Len() int { return len(r.names) }

// Names returns a copy of the names in column order.
func (r *Registry) Names() []string { return slices.Clone(r.names) }

// Solution maps each variable to its value.
type Solution map[string]float64

// Names returns the variable names in alphabetical order.
func (s Solution) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Check substitutes s into every equation and fails on the first one whose
// residual exceeds eps in magnitude.
// Errors:
//   - ErrUnknownVariable when an equation names a variable missing from s.
//   - ErrResidual when an equation is not satisfied.
func (s Solution) Check(eqs []Equation, eps float64) error {
	for i, eq := range eqs {
		res, ok := eq.Residual(s)
		if !ok {
			return solverErrorf(opCheck, fmtIndexed(i, ErrUnknownVariable))
		}
		if math.Abs(res) > eps {
			return solverErrorf(opCheck, fmtIndexed(i, ErrResidual))
		}
	}

	return nil
}
