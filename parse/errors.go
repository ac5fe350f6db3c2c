// SPDX-License-Identifier: MIT

package parse

import (
	"errors"
	"fmt"
)

// ErrFormat marks a line that does not follow the equation grammar.
var ErrFormat = errors.New("parse: invalid equation format")

// formatErrorf builds an ErrFormat with a human readable reason.
func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}

// lineErrorf prefixes err with "name:line".
func lineErrorf(name string, line int, err error) error {
	return fmt.Errorf("%s:%d: %w", name, line, err)
}
