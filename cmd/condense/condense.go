// 19 Oct 2026

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/andrew-torda/condense/pkg/common"
	"github.com/andrew-torda/condense/pkg/condense"
	"github.com/andrew-torda/condense/pkg/config"
)

type usageError struct{ error }

type cmdFlags struct {
	cfgFile string
	config.Config
}

// merge applies flags that were given explicitly on top of the
// config file.
func merge(cmd *cobra.Command, fl *cmdFlags) (*config.Config, error) {
	cfg, err := config.Load(fl.cfgFile)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("strict") {
		cfg.Strict = fl.Strict
	}
	if f.Changed("any-ntax") {
		cfg.AnyNtax = fl.AnyNtax
	}
	if f.Changed("report") {
		cfg.Report = fl.Report
	}
	if f.Changed("dry-run") {
		cfg.DryRun = fl.DryRun
	}
	if f.Changed("verbose") {
		cfg.Verbose = fl.Verbose
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func newRootCmd() *cobra.Command {
	var fl cmdFlags
	cmd := &cobra.Command{
		Use:   "condense [flags] infile outfile",
		Short: "Merge identical sequences in a nexus file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError{fmt.Errorf("expected two arguments, got %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := merge(cmd, &fl)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()
			return condense.Mymain(&condense.Args{
				Infile:  args[0],
				Outfile: args[1],
				Report:  cfg.Report,
				Strict:  cfg.Strict,
				AnyNtax: cfg.AnyNtax,
				DryRun:  cfg.DryRun,
				Logger:  logger,
			})
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{err}
	})
	f := cmd.Flags()
	f.StringVarP(&fl.cfgFile, "config", "c", "", "YAML settings file")
	f.BoolVarP(&fl.Strict, "strict", "s", false, "malformed matrix lines are errors")
	f.BoolVarP(&fl.AnyNtax, "any-ntax", "a", false, "rewrite NTAX= on any line mentioning ntax")
	f.StringVarP(&fl.Report, "report", "r", "", "write a group report to this file")
	f.BoolVarP(&fl.DryRun, "dry-run", "n", false, "do not write any files")
	f.BoolVarP(&fl.Verbose, "verbose", "v", false, "debugging output")
	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "condense:", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
			os.Exit(common.ExitUsageError)
		}
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
