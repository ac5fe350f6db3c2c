// SPDX-License-Identifier: MIT
package parse_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/parse"
)

// TestParseFile_Plain reads a plain text file.
func TestParseFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eqs.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	eqs, err := parse.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, eqs, 4)
}

// TestParseFile_Gzip detects gzip by content, whatever the extension.
func TestParseFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eqs.data")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	eqs, err := parse.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, eqs, 4)
}

// TestParseFile_Errors covers missing files, directories and tiny inputs.
func TestParseFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := parse.ParseFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = parse.ParseFile(dir) // a directory cannot be read
	require.Error(t, err)

	one := filepath.Join(dir, "one.txt")
	require.NoError(t, os.WriteFile(one, []byte("x"), 0o600)) // shorter than the gzip magic
	_, err = parse.ParseFile(one)
	require.ErrorIs(t, err, parse.ErrFormat)
}
