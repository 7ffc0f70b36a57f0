// 19 Oct 2026

package nexus

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Header is everything from the start of the file up to and including
// the matrix line. Lines are kept exactly as read.
type Header struct {
	raw []string
}

// String gives back the header as it was read.
func (h *Header) String() string { return strings.Join(h.raw, "") }

// Lines returns the header lines without their trailing newlines.
// A "\r\n" ending goes too, so the rewritten header has plain "\n"
// endings like the mapping block and the body.
func (h *Header) Lines() []string {
	lines := make([]string, len(h.raw))
	for i, s := range h.raw {
		lines[i] = strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
	}
	return lines
}

// ReadHeader collects lines up to and including the first line that
// is "matrix", ignoring case and surrounding white space.
func ReadHeader(lr *LineReader) (*Header, error) {
	h := new(Header)
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return h, &LineError{N: lr.NLine(), Err: ErrNoMatrix}
		}
		if err != nil {
			return h, err
		}
		h.raw = append(h.raw, line)
		if strings.ToLower(strings.TrimSpace(line)) == "matrix" {
			return h, nil
		}
	}
}

var ntaxRe = regexp.MustCompile(`(?i)NTAX=\d*`)

// rewriteNtax replaces the first NTAX=<digits> in line.
func rewriteNtax(line string, n int) (string, bool) {
	loc := ntaxRe.FindStringIndex(line)
	if loc == nil {
		return line, false
	}
	return line[:loc[0]] + "NTAX=" + strconv.Itoa(n) + line[loc[1]:], true
}

// wantNtax decides if a line should have its NTAX field rewritten.
// low is the trimmed, lower case line.
func wantNtax(low string, anyNtax bool) bool {
	if !strings.Contains(low, "ntax") {
		return false
	}
	return anyNtax || strings.Contains(low, "dimensions")
}

// RewriteHeader writes the header with the mapping block placed after
// the #nexus line and the NTAX field set to the number of groups.
// If a line should have an NTAX field, but we cannot find one, we
// leave the line alone and log a warning.
func RewriteHeader(w io.Writer, h *Header, grps *Groups, opts *Options, logger *zap.Logger) error {
	opts = opts.orDefault()
	logger = orNop(logger)
	mapping := grps.Mapping()
	for i, line := range h.Lines() {
		low := strings.ToLower(strings.TrimSpace(line))
		switch {
		case strings.Contains(low, "#nexus"):
			line += "\n\n" + mapping + "\n"
		case wantNtax(low, opts.AnyNtax):
			var ok bool
			if line, ok = rewriteNtax(line, grps.Len()); !ok {
				err := &LineError{N: i + 1, Line: line, Err: ErrFieldRewrite}
				logger.Warn("header line left unchanged", zap.Error(err))
			}
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
