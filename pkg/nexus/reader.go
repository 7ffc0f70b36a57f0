// 19 Oct 2026

package nexus

import (
	"bufio"
	"io"
)

// LineReader reads lines, newline included, and lets the caller push
// back one line. The matrix reader uses this to leave the terminator
// for whoever copies the rest of the file.
type LineReader struct {
	rdr     *bufio.Reader
	pending string
	havePnd bool
	n       int // lines handed out so far
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{rdr: bufio.NewReader(r)}
}

// ReadLine returns the next line exactly as it appears in the input,
// including any trailing newline. A last line without a newline is
// returned as it is. After that we return io.EOF.
func (l *LineReader) ReadLine() (string, error) {
	if l.havePnd {
		l.havePnd = false
		l.n++
		return l.pending, nil
	}
	s, err := l.rdr.ReadString('\n')
	if err == io.EOF {
		if s == "" {
			return "", io.EOF
		}
		err = nil
	}
	if err != nil {
		return "", err
	}
	l.n++
	return s, nil
}

// Unread pushes back a line. Only one line of lookahead is kept, so
// a second call before ReadLine replaces the first.
func (l *LineReader) Unread(s string) {
	if !l.havePnd {
		l.n--
	}
	l.pending = s
	l.havePnd = true
}

// NLine is the number of the last line returned.
func (l *LineReader) NLine() int { return l.n }
