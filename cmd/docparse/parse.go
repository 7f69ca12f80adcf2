package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newParseCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "parse FILE [FILE...]",
		Short:             "Parse files from the dataset directory and write JSON plus a comparison page",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeDatasetFiles(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			for _, arg := range args {
				names = append(names, splitFileNames(arg)...)
			}
			return runFiles(cmd, opts, names)
		},
	}
}

// runFiles processes names with the configured parser, logging to the command output.
func runFiles(cmd *cobra.Command, opts *cliOptions, names []string) error {
	p := opts.processor(cmd)
	return p.processFiles(cmd.Context(), names)
}

func (o *cliOptions) processor(cmd *cobra.Command) *processor {
	logger := newLogger(cmd.OutOrStdout(), slog.LevelInfo)
	return newProcessor(o.cfg, o.newParser(o.cfg, logger), logger)
}
