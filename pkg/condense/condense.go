// 19 Oct 2026

// Package condense is the top level of the condense command. It opens
// the files, runs the nexus pipeline and writes the optional report.
package condense

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/andrew-torda/condense/pkg/labelgen"
	"github.com/andrew-torda/condense/pkg/nexus"
	"github.com/andrew-torda/condense/pkg/zwrap"
)

// ErrFileAccess marks errors opening, reading, writing or closing
// files, as opposed to errors in what the files contain.
var ErrFileAccess = errors.New("file access")

// Args is everything from the command line.
type Args struct {
	Infile  string // "-" for standard input
	Outfile string // "-" for standard output
	Report  string // optional group report
	Strict  bool
	AnyNtax bool
	DryRun  bool
	Logger  *zap.Logger
}

func accessErr(what, fname string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrFileAccess, what, fname, err)
}

// markAccess marks errors from reading or writing as ErrFileAccess.
// Malformed input and running out of labels are about the content, so
// they are left alone.
func markAccess(err error) error {
	if err == nil || errors.Is(err, nexus.ErrMalformed) || errors.Is(err, labelgen.ErrExhausted) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFileAccess, err)
}

// Run condenses one nexus file from r to w.
func Run(r io.Reader, w io.Writer, args *Args) (*nexus.Groups, error) {
	opts := &nexus.Options{Strict: args.Strict, AnyNtax: args.AnyNtax}
	grps, err := nexus.Condense(r, w, opts, args.Logger)
	return grps, markAccess(err)
}

// writeReport writes the report to a file.
func writeReport(fname string, grps *nexus.Groups) (err error) {
	fp, err := createOutput(fname, false)
	if err != nil {
		return accessErr("creating report", fname, err)
	}
	defer func() {
		if e := fp.Close(); e != nil && err == nil {
			err = accessErr("closing report", fname, e)
		}
	}()
	if err := WriteReport(fp, grps); err != nil {
		return accessErr("writing report", fname, err)
	}
	return nil
}

// Mymain is the top level main, after parsing the command line.
// Input and output are closed on every path.
func Mymain(args *Args) (err error) {
	logger := args.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	src, err := openInputFn(args.Infile)
	if err != nil {
		return accessErr("opening input", args.Infile, err)
	}
	in, err := zwrap.Wrap(src)
	if err != nil {
		src.Close()
		return accessErr("reading input", args.Infile, err)
	}
	defer func() {
		if e := in.Close(); e != nil && err == nil {
			err = accessErr("closing input", args.Infile, e)
		}
	}()
	if in.Kind() != zwrap.Plain {
		logger.Debug("decompressing input", zap.Stringer("kind", in.Kind()))
	}

	out, err := createOutput(args.Outfile, args.DryRun)
	if err != nil {
		return accessErr("creating output", args.Outfile, err)
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = accessErr("closing output", args.Outfile, e)
		}
	}()

	grps, err := Run(in, out, args)
	if err != nil {
		return fmt.Errorf("%s: %w", args.Infile, err)
	}
	logger.Info("condensed",
		zap.String("input", args.Infile),
		zap.String("output", args.Outfile),
		zap.Int("taxa", grps.NTaxa()),
		zap.Int("groups", grps.Len()))

	if args.Report != "" && !args.DryRun {
		return writeReport(args.Report, grps)
	}
	return nil
}
