// 19 Oct 2026

// Package nexus condenses the matrix of a nexus file. Taxa with
// identical sequences are merged under a short label and the header
// gets a comment saying which taxa went where.
//
// We only understand a small part of nexus. There is a header, which
// ends with a line saying "matrix". Then come lines of
//
//	label sequence
//
// until a line with ";" or "end;". Everything after that is copied
// without looking at it.
package nexus

import (
	"io"

	"go.uber.org/zap"
)

// Options are the choices for reading and rewriting.
type Options struct {
	Strict  bool // Short matrix lines or a missing terminator are errors
	AnyNtax bool // Rewrite NTAX= on any line containing ntax, not just dimensions lines
}

var dfltOptions Options

func (o *Options) orDefault() *Options {
	if o == nil {
		return &dfltOptions
	}
	return o
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Condense reads a nexus file from r and writes the condensed version
// to w. It returns the groups it found, which may be partly filled if
// there was an error.
// Nothing is written until the whole matrix has been read, since the
// header needs the final count.
func Condense(r io.Reader, w io.Writer, opts *Options, logger *zap.Logger) (*Groups, error) {
	logger = orNop(logger)
	lr := NewLineReader(r)
	hdr, err := ReadHeader(lr)
	if err != nil {
		return nil, err
	}
	grps, err := Fold(lr, opts, logger)
	if err != nil {
		return grps, err
	}
	logger.Debug("matrix folded",
		zap.Int("taxa", grps.NTaxa()), zap.Int("groups", grps.Len()))
	if err := RewriteHeader(w, hdr, grps, opts, logger); err != nil {
		return grps, err
	}
	if err := grps.WriteBody(w); err != nil {
		return grps, err
	}
	return grps, CopyFooter(w, lr)
}
