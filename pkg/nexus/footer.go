// 19 Oct 2026

package nexus

import (
	"errors"
	"io"
)

// CopyFooter copies whatever is left in lr, including a pushed back
// terminator line.
func CopyFooter(w io.Writer, lr *LineReader) error {
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
}
