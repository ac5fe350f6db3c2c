// SPDX-License-Identifier: MIT

// Package report renders a solver.Solution for people and for machines.
//
// Three formats are supported:
//   - Text: one "name = value" line per variable, sorted by name. Integral
//     values print without a fractional part. Variable names may be styled
//     with lipgloss when WithColor is set and the writer is a terminal.
//   - JSON: {"source": ..., "variables": [{"name": ..., "value": ...}]}.
//   - YAML: the same document encoded with gopkg.in/yaml.v3.
//
// The package never prints on its own; callers pass the io.Writer.
package report
