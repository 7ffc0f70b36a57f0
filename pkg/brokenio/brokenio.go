// brokenio is a wrapper around an io.Reader which lets reads fail.
// Typical use: you have a file pointer or a reader from a compressed
// source. You write
//   reader = brokenio.NewReader(reader)
// to wrap the old reader. Everything then functions as before, but
// with artificial errors, either after some number of bytes or at
// random with a given probability.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what we return for the errors we make up.
var ErrBroken = errors.New("brokenio: artificial read failure")

// Reader has the variables controlling the errors. probFail is the
// fraction of reads that fail, so 0.05 means failure in 5% of calls.
// failAfter, if positive, is the number of bytes we deliver before
// every further read fails.
type Reader struct {
	rdr       io.Reader
	rnd       *rand.Rand
	probFail  float32
	failAfter int
	nCalled   int
	nByte     int
	verbose   bool
}

// NewReader returns a new Reader, which will not fail until told to.
func NewReader(rIn io.Reader, seed int64) *Reader {
	return &Reader{rdr: rIn, rnd: rand.New(rand.NewSource(seed))}
}

// SetVerbose sets the verbosity flag to true or false
func (r *Reader) SetVerbose(newV bool) { r.verbose = newV }

// SetProbFail sets the probability of a read failing.
// It must be between zero and 1. We do not check.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reads fail once n bytes have been delivered.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	if r.failAfter > 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdr.Read(p)
	r.nByte += n
	return n, err
}

// Close closes the wrapped reader if it can be closed.
func (r *Reader) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	if c, ok := r.rdr.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
