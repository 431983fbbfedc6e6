package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/copydir"
	"github.com/bamsammich/copydir/filter"
	"github.com/bamsammich/copydir/internal/config"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// filterFlag is a custom pflag.Value that preserves CLI ordering of
// --exclude and --include rules by appending to a shared filter.Chain.
type filterFlag struct {
	chain   *filter.Chain
	include bool
}

var _ pflag.Value = (*filterFlag)(nil)

func (*filterFlag) String() string { return "" }
func (*filterFlag) Type() string   { return "string" }

func (f *filterFlag) Set(val string) error {
	if f.include {
		return f.chain.AddInclude(val)
	}
	return f.chain.AddExclude(val)
}

// errPartial signals that the copy finished but some entries failed.
var errPartial = errors.New("completed with errors")

func run() int {
	var (
		merge       bool
		verifyFlag  bool
		quiet       bool
		verbose     bool
		showVersion bool
		filterFile  string
		minSizeStr  string
		maxSizeStr  string
	)

	chain := filter.NewChain()

	rootCmd := &cobra.Command{
		Use:   "copydir [flags] <source> <destination>",
		Short: "Recursively copy a file or directory tree",
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(os.Stdout, "copydir %s\n", version)
				return nil
			}

			src, dst := args[0], args[1]

			// Load optional config file and apply defaults for flags not
			// explicitly set on the CLI.
			cfg, err := config.Load()
			if err != nil {
				slog.Warn("failed to load config", "error", err)
			}
			applyDefault(cmd, "verify", cfg.Defaults.Verify, &verifyFlag)
			applyDefault(cmd, "quiet", cfg.Defaults.Quiet, &quiet)
			applyDefault(cmd, "verbose", cfg.Defaults.Verbose, &verbose)

			// Configure logging.
			logLevel := slog.LevelWarn
			if verbose {
				logLevel = slog.LevelDebug
			} else if !quiet {
				logLevel = slog.LevelInfo
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(logger)

			// Load filter file and size limits.
			if filterFile != "" {
				if err := chain.LoadFile(filterFile); err != nil {
					return fmt.Errorf("load filter file: %w", err)
				}
			}
			if minSizeStr != "" {
				n, err := filter.ParseSize(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid --min-size: %w", err)
				}
				chain.SetMinSize(n)
			}
			if maxSizeStr != "" {
				n, err := filter.ParseSize(maxSizeStr)
				if err != nil {
					return fmt.Errorf("invalid --max-size: %w", err)
				}
				chain.SetMaxSize(n)
			}

			var stats copydir.Stats
			opts := copydir.Options{Stats: &stats}
			if !chain.Empty() {
				opts.Filter = chain
			}
			if !quiet {
				opts.Policy = &copydir.LogPolicy{Logger: logger}
			}

			// The merge resolver may nest the copy under dst; verify
			// against wherever it actually landed.
			verifyTarget := dst

			if merge {
				target, copyErrs, err := copydir.CopyTreeMergeWithOptions(src, dst, opts)
				if err != nil {
					return err
				}
				verifyTarget = target
				if !quiet {
					fmt.Fprintln(os.Stderr, stats.Summary())
				}
				if len(copyErrs) > 0 {
					return fmt.Errorf("%w: %d entries failed", errPartial, len(copyErrs))
				}
			} else {
				if err := copydir.CopyTreeWithOptions(src, dst, opts); err != nil {
					return err
				}
				if !quiet {
					fmt.Fprintln(os.Stderr, stats.Summary())
				}
				if stats.ErrorsReported > 0 {
					return fmt.Errorf("%w: %d entries failed", errPartial, stats.ErrorsReported)
				}
			}

			if verifyFlag {
				result, err := copydir.VerifyTree(src, verifyTarget)
				if err != nil {
					return err
				}
				for _, m := range result.Mismatches {
					slog.Error("verify failed", "path", m.Path, "reason", m.Reason)
				}
				if !quiet {
					fmt.Fprintf(os.Stderr, "verified %d, failed %d\n", result.Verified, result.Failed)
				}
				if result.Failed > 0 {
					return fmt.Errorf("%w: %d entries failed verification", errPartial, result.Failed)
				}
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&merge, "merge", "m", false, "allow an existing destination directory and copy underneath it")
	flags.BoolVar(&verifyFlag, "verify", false, "verify checksums after copying")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress all output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&showVersion, "version", false, "print version and exit")
	flags.StringVar(&filterFile, "filter-file", "", "load filter rules from a file")
	flags.StringVar(&minSizeStr, "min-size", "", "skip files smaller than this size (e.g. 1K, 10M)")
	flags.StringVar(&maxSizeStr, "max-size", "", "skip files larger than this size")
	flags.Var(&filterFlag{chain: chain, include: false}, "exclude", "exclude entries matching pattern (repeatable)")
	flags.Var(&filterFlag{chain: chain, include: true}, "include", "include entries matching pattern (repeatable)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "copydir: %v\n", err)
		if errors.Is(err, errPartial) {
			return 2
		}
		return 1
	}
	return 0
}

// applyDefault copies a config-file default into a bool flag the user did
// not set explicitly.
func applyDefault(cmd *cobra.Command, name string, def *bool, dst *bool) {
	if def != nil && !cmd.Flags().Changed(name) {
		*dst = *def
	}
}
