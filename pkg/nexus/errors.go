// 19 Oct 2026
// Errors from reading and rewriting nexus files. A LineError keeps the
// line number and the start of the line that upset us.

package nexus

import (
	"errors"
	"fmt"
	"strconv"
)

const maxMsgLen = 70

var (
	ErrMalformed    = errors.New("malformed nexus input")
	ErrNoMatrix     = fmt.Errorf("%w: no matrix line found", ErrMalformed)
	ErrNoTerminator = fmt.Errorf("%w: matrix not terminated by ; or end;", ErrMalformed)
	ErrShortLine    = fmt.Errorf("%w: expected label and sequence", ErrMalformed)
	ErrFieldRewrite = errors.New("no NTAX=<number> field to rewrite")
)

// LineError is an error tied to one line of input.
type LineError struct {
	N    int    // line number, counting from 1
	Line string // the line that provoked the error
	Err  error
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

func (e *LineError) Error() string {
	msg := "line " + strconv.Itoa(e.N) + ": " + e.Err.Error()
	if e.Line != "" {
		msg += fmt.Sprintf(", line starting %q", firstPart(e.Line))
	}
	return msg
}

func (e *LineError) Unwrap() error { return e.Err }
