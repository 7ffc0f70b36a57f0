// Package zwrap takes a reader and, if the data is compressed, wraps
// it so reads come from the decompressor. Upon calling Close, the
// decompressor will be closed, followed by the underlying source.
// We recognise gzip and xz by their magic numbers. Anything else is
// passed through untouched.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// Kind says what sort of compression we found.
type Kind byte

const (
	Plain Kind = iota
	Gzip
	Xz
)

func (k Kind) String() string {
	switch k {
	case Gzip:
		return "gzip"
	case Xz:
		return "xz"
	}
	return "plain"
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Reader is what we return.
type Reader struct {
	src  io.ReadCloser
	rdr  io.Reader // decompressor or buffered src
	gz   *gzip.Reader
	kind Kind
}

// Sniff looks at the start of some data and guesses the compression.
func Sniff(magic []byte) Kind {
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return Gzip
	case bytes.HasPrefix(magic, xzMagic):
		return Xz
	}
	return Plain
}

// Wrap takes a source like a file pointer or http stream and wraps it
// so the correct Close and Read will be called.
func Wrap(src io.ReadCloser) (*Reader, error) {
	br := bufio.NewReader(src)
	magic, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("looking for compression: %w", err)
	}
	r := &Reader{src: src, rdr: br, kind: Sniff(magic)}
	switch r.kind {
	case Gzip:
		if r.gz, err = gzip.NewReader(br); err != nil {
			return nil, fmt.Errorf("gzip input: %w", err)
		}
		r.rdr = r.gz
	case Xz:
		if r.rdr, err = xz.NewReader(br); err != nil {
			return nil, fmt.Errorf("xz input: %w", err)
		}
	}
	return r, nil
}

// Kind says what Wrap found.
func (r *Reader) Kind() Kind { return r.kind }

// Read makes sure we read from the decompressed stream and
// not the underlying file stream.
func (r *Reader) Read(p []byte) (int, error) { return r.rdr.Read(p) }

// Close closes the decompressor, if there is one, then the source.
func (r *Reader) Close() error {
	var e1 error
	if r.gz != nil {
		e1 = r.gz.Close()
	}
	return errors.Join(e1, r.src.Close())
}
