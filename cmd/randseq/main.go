// 31 July 2020

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/condense/pkg/common"
	"github.com/andrew-torda/condense/pkg/randseq"
)

const iseed int64 = 1637

func posInt(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("failed converting %s to positive integer", s)
	}
	return int(n), nil
}

func main() {
	var args randseq.RandSeqArgs
	usageErr := errors.New("usage")
	cmd := &cobra.Command{
		Use:           "randseq [flags] fname ntaxa length",
		Short:         "Write a random nexus file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, a []string) error {
			if len(a) != 3 {
				return fmt.Errorf("%w: need 3 arguments, got %d", usageErr, len(a))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, a []string) (err error) {
			if args.Ntaxa, err = posInt(a[1]); err != nil {
				return err
			}
			if args.Len, err = posInt(a[2]); err != nil {
				return err
			}
			args.Prefix = "taxon"
			if a[0] == "-" {
				args.Wrtr = os.Stdout
			} else {
				var fp *os.File
				if fp, err = os.Create(a[0]); err != nil {
					return fmt.Errorf("file for output: %w", err)
				}
				defer func() {
					if e := fp.Close(); e != nil && err == nil {
						err = e
					}
				}()
				args.Wrtr = fp
			}
			_, err = randseq.RandSeqMain(&args)
			return err
		},
	}
	f := cmd.Flags()
	f.IntVarP(&args.Ndistinct, "ndistinct", "d", 10, "number of distinct sequences")
	f.BoolVarP(&args.NoGap, "nogap", "g", false, "do not put gaps in sequences")
	f.BoolVarP(&args.MkErr, "err", "e", false, "provoke errors")
	f.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, usageErr) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
			os.Exit(common.ExitUsageError)
		}
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
