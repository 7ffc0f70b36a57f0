// 19 Oct 2026

package nexus

import (
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
)

// isTerminator says if a line ends the matrix block.
func isTerminator(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	return s == ";" || s == "end;"
}

// Fold reads "label sequence" lines from the matrix block and groups
// taxa with identical sequences. It stops at a line with ";" or
// "end;" and pushes that line back into lr, so it is still there for
// CopyFooter.
// Lines without both a label and a sequence are skipped, unless
// opts.Strict is set. Anything after the second token is ignored.
func Fold(lr *LineReader, opts *Options, logger *zap.Logger) (*Groups, error) {
	opts = opts.orDefault()
	logger = orNop(logger)
	grps := NewGroups()
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			if opts.Strict {
				return grps, &LineError{N: lr.NLine(), Err: ErrNoTerminator}
			}
			logger.Warn("matrix ended without terminator", zap.Int("line", lr.NLine()))
			return grps, nil
		}
		if err != nil {
			return grps, err
		}
		if isTerminator(line) {
			lr.Unread(line)
			return grps, nil
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			if opts.Strict {
				return grps, &LineError{N: lr.NLine(), Line: line, Err: ErrShortLine}
			}
			if len(f) == 1 {
				logger.Debug("skipping line without sequence",
					zap.Int("line", lr.NLine()), zap.String("label", f[0]))
			}
			continue
		}
		if err := grps.Add(f[0], f[1]); err != nil {
			return grps, err
		}
	}
}
