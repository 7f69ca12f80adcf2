package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	client "github.com/hsn0918/docparse-client"
)

type cliOptions struct {
	envFile string
	viper   *viper.Viper
	cfg     *config

	// newParser is swapped in tests.
	newParser func(cfg *config, logger *slog.Logger) client.DocumentParser
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(&cliOptions{newParser: buildParser})
}

func newRootCmdWithOptions(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "docparse",
		Short:         "Parse PDFs and images with the Upstage document-parse API and compare the output",
		Long:          "Without a subcommand, docparse prompts for comma-separated file names from the dataset directory.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// completion requests only read the dataset dir
			if isCompletionRequest(cmd) {
				return nil
			}
			return opts.complete()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	addConfigFlags(cmd.PersistentFlags(), opts)

	opts.viper = newViper(cmd.PersistentFlags())

	cmd.AddCommand(newParseCmd(opts))
	cmd.AddCommand(newInteractiveCmd(opts))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func isCompletionRequest(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}

func (o *cliOptions) complete() error {
	cfg, err := loadConfig(o.viper, o.envFile)
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}
