// 3 Aug 2020 byMmap from numseq
// 19 Oct 2026

package condense

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mapped is a read only view of a whole file.
type mapped struct {
	*bytes.Reader
	fp *os.File
	mm mmap.MMap
}

// Close unmaps the file, then closes it. Nothing read from the
// mapping may be used after this.
func (m *mapped) Close() error {
	var e1 error
	if m.mm != nil {
		e1 = m.mm.Unmap()
	}
	return errors.Join(e1, m.fp.Close())
}

// openInputFn is replaced in tests.
var openInputFn = openInput

// openInput maps a regular file into memory. Empty files cannot be
// mapped, so they, pipes and devices are read normally. An fname of
// "-" means standard input.
func openInput(fname string) (io.ReadCloser, error) {
	if fname == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return fp, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return &mapped{Reader: bytes.NewReader(mm), fp: fp, mm: mm}, nil
}
