package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const prompt = "File names (comma separated, Enter to quit): "

func newInteractiveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for file names from the dataset directory until an empty line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}
}

// runInteractive reads comma-separated names per line. Per-file failures are
// logged and do not end the session; an empty line or EOF does.
func runInteractive(cmd *cobra.Command, opts *cliOptions) error {
	p := opts.processor(cmd)
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprintf(out, "\nEnter PDF or image file names from %s.\n%s", opts.cfg.DatasetDir, prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		// errors are already logged and recorded per file
		_ = p.processFiles(cmd.Context(), splitFileNames(line))

		if err := cmd.Context().Err(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Exiting.")
	return nil
}
