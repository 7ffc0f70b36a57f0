// 19 Oct 2026

// Package labelgen hands out short labels for groups of taxa.
// Labels are A, B, ... Z, then two letter combinations AB, AC, ... AZ,
// BC, ... YZ, then three letters and so on. Letters within a label are
// always in ascending order, so we get "AB", but never "BA".
package labelgen

import (
	"errors"
	"iter"
)

const nLetter = 26

// ErrExhausted is only seen after 2^26 - 1 labels. There are no
// combinations of more than 26 distinct letters.
var ErrExhausted = errors.New("labelgen: no more labels")

// Gen is a pull based label generator. The zero value is ready to use
// and will start at "A".
type Gen struct {
	ndx  []int // letter indices of the last label, ascending
	done bool
}

// New returns a generator starting at "A".
func New() *Gen { return new(Gen) }

// Reset puts the generator back to the start.
func (g *Gen) Reset() {
	g.ndx = g.ndx[:0]
	g.done = false
}

// advance moves ndx on to the next combination. At the end of one
// width, we move to the first combination of the next width.
func (g *Gen) advance() bool {
	w := len(g.ndx)
	for i := w - 1; i >= 0; i-- {
		if g.ndx[i] < nLetter-w+i {
			g.ndx[i]++
			for j := i + 1; j < w; j++ {
				g.ndx[j] = g.ndx[j-1] + 1
			}
			return true
		}
	}
	w++
	if w > nLetter {
		return false
	}
	g.ndx = g.ndx[:0]
	for i := 0; i < w; i++ {
		g.ndx = append(g.ndx, i)
	}
	return true
}

// Next returns the next label. Successive calls never return the
// same label.
func (g *Gen) Next() (string, error) {
	if g.done || !g.advance() {
		g.done = true
		return "", ErrExhausted
	}
	b := make([]byte, len(g.ndx))
	for i, n := range g.ndx {
		b[i] = byte('A' + n)
	}
	return string(b), nil
}

// All iterates over labels in generation order, starting from "A".
// Stop ranging whenever you have enough.
func All() iter.Seq[string] {
	return func(yield func(string) bool) {
		var g Gen
		for {
			s, err := g.Next()
			if err != nil || !yield(s) {
				return
			}
		}
	}
}
