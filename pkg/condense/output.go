// 19 Oct 2026

package condense

import (
	"bufio"
	"errors"
	"io"
	"os"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// bufWriter buffers output and flushes before closing.
type bufWriter struct {
	*bufio.Writer
	c io.Closer
}

func (b *bufWriter) Close() error {
	return errors.Join(b.Flush(), b.c.Close())
}

// createOutput opens where we write to. With dryRun, everything is
// thrown away. "-" is standard output, which we flush, but do not close.
func createOutput(fname string, dryRun bool) (io.WriteCloser, error) {
	switch {
	case dryRun:
		return nopWriteCloser{io.Discard}, nil
	case fname == "-":
		return &bufWriter{bufio.NewWriter(os.Stdout), nopWriteCloser{}}, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, err
	}
	return &bufWriter{bufio.NewWriter(fp), fp}, nil
}
