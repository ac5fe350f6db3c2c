// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/solver"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat and Write for unsupported formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Entry is one solved variable.
type Entry struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Report is the document written by Write.
type Report struct {
	Source    string  `json:"source,omitempty" yaml:"source,omitempty"`
	Variables []Entry `json:"variables" yaml:"variables"`
}

// New builds a Report with variables sorted by name. Negative zero is
// normalized so no encoder prints "-0".
func New(source string, sol solver.Solution) Report {
	names := sol.Names()
	vars := make([]Entry, len(names))
	for i, name := range names {
		v := sol[name]
		if v == 0 {
			v = 0
		}
		vars[i] = Entry{Name: name, Value: v}
	}

	return Report{Source: source, Variables: vars}
}

// Write encodes rep to w in the given format.
func Write(w io.Writer, format Format, rep Report, opts ...Option) error {
	o := gatherOptions(opts...)
	switch format {
	case Text:
		return writeText(w, rep, o)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", o.indent)
		return enc.Encode(rep)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(len(o.indent))
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, rep Report, o Options) error {
	style := func(s string) string { return s }
	if o.color {
		st := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(colorName)
		style = func(s string) string { return st.Render(s) }
	}

	var sb strings.Builder
	for _, e := range rep.Variables {
		sb.WriteString(style(e.Name))
		sb.WriteString(" = ")
		sb.WriteString(FormatValue(e.Value))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// FormatValue prints integral values without a fractional part and other
// values in the shortest decimal form that round-trips.
func FormatValue(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
