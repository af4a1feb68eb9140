package main

import (
	"github.com/spf13/cobra"

	filecleaner "github.com/Dexus0/file-cleaner/pkg"
)

type rootOptions struct {
	configPath string
	overrides  []string
	keyWidth   int
	dryRun     bool
	verbose    int
	debug      string
	reportPath string
	format     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "filecleaner [directory]",
		Short: "Delete duplicate files within a single directory",
		Long: `filecleaner scans every regular file directly inside a directory,
buckets files by their leading bytes, and removes byte-identical
duplicates, keeping the first file seen with each content.

Individual file failures (unreadable files, files shorter than the
grouping key, failed deletions) are non-fatal; only an unlistable
directory aborts the run.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}
			return run(cmd, dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "configuration file path")
	cmd.Flags().StringArrayVar(&opts.overrides, "set", nil, "configuration override (key:value, e.g. width:8)")
	cmd.Flags().IntVar(&opts.keyWidth, "key-width", 0, "grouping key width in bytes (1, 2, 4 or 8)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "detect duplicates without deleting them")
	cmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "increase diagnostic verbosity")
	cmd.Flags().StringVar(&opts.debug, "debug", "", "debug flags (comma-separated, e.g. scan,compare)")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "write a duplicate group report to this file (- for stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "report format: human, json, fdupes")

	return cmd
}

func run(cmd *cobra.Command, dir string, opts *rootOptions) error {
	cfg, err := filecleaner.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyOverrides(opts.overrides); err != nil {
		return err
	}

	// Flags beat config file values, which beat built-in defaults.
	verboseCfg := cfg.GetVerboseConfig()
	if opts.verbose > 0 {
		verboseCfg.Level = opts.verbose
	}
	if opts.debug != "" {
		verboseCfg.Debug = opts.debug
	}
	if err := filecleaner.ValidateVerboseLevel(verboseCfg.Level); err != nil {
		return err
	}
	if err := filecleaner.ValidateDebugFlags(verboseCfg.Debug); err != nil {
		return err
	}
	filecleaner.SetVerboseLevel(verboseCfg.Level)
	filecleaner.SetDebugFlags(verboseCfg.Debug)

	keyCfg := cfg.GetKeyConfig()
	if opts.keyWidth != 0 {
		keyCfg.Width = opts.keyWidth
	}
	if err := filecleaner.ValidateKeyWidth(keyCfg.Width); err != nil {
		return err
	}

	outputCfg := cfg.GetOutputConfig()
	if opts.format != "" {
		outputCfg.Format = opts.format
	}
	if err := filecleaner.ValidateOutputFormat(outputCfg.Format); err != nil {
		return err
	}

	// An unlistable directory is the only fatal error; everything past this
	// point is file-local and does not alter the exit status.
	paths, err := filecleaner.ListDirectory(dir)
	if err != nil {
		return err
	}

	engine := filecleaner.NewEngine(filecleaner.Options{
		KeyWidth: keyCfg.Width,
		DryRun:   opts.dryRun,
		SizeHint: len(paths),
		Out:      cmd.OutOrStdout(),
		ErrOut:   cmd.ErrOrStderr(),
	})
	engine.Run(paths)

	if opts.reportPath == "" {
		return nil
	}

	groups := engine.DuplicateGroups()
	if opts.reportPath == "-" {
		rendered, err := filecleaner.RenderReport(groups, outputCfg.Format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(rendered)
		return err
	}
	return filecleaner.WriteReport(opts.reportPath, groups, outputCfg.Format)
}
