// SPDX-License-Identifier: MIT

package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/linsolve/solver"
)

// gzipMagic is the two-byte header of every gzip member.
var gzipMagic = [2]byte{0x1f, 0x8b}

// file couples a possibly decompressing reader with the underlying file.
type file struct {
	io.Reader
	closers []io.Closer
}

// Close closes the decompressor (if any) and then the file.
func (f *file) Close() error {
	var errs []error
	for _, c := range f.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

// Open opens path for reading equations. Gzip content is detected by its
// magic bytes, not by file extension, and decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(fh)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		_ = fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(head) == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		zr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &file{Reader: zr, closers: []io.Closer{zr, fh}}, nil
	}

	return &file{Reader: br, closers: []io.Closer{fh}}, nil
}

// ParseFile reads every equation from path (plain or gzip).
func ParseFile(path string) ([]solver.Equation, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ReadAll(rc, path)
}
