// SPDX-License-Identifier: MIT

package report

import "github.com/charmbracelet/lipgloss"

// DefaultIndent is the indentation used by the JSON and YAML encoders.
const DefaultIndent = "  "

var colorName = lipgloss.Color("#10B981")

// Option configures Write.
type Option func(*Options)

// Options holds presentation settings.
type Options struct {
	color  bool
	indent string
}

// WithColor styles variable names in the text format. Styling is dropped
// automatically when the writer is not a color-capable terminal.
func WithColor(on bool) Option {
	return func(o *Options) { o.color = on }
}

// WithIndent sets the JSON/YAML indentation. An empty indent is ignored.
func WithIndent(indent string) Option {
	return func(o *Options) {
		if indent != "" {
			o.indent = indent
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{indent: DefaultIndent}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
