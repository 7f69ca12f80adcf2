package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var supportedExtensions = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true,
	".bmp": true, ".tif": true, ".tiff": true, ".heic": true,
}

// completeDatasetFiles suggests parseable files from the configured dataset directory.
func completeDatasetFiles(opts *cliOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		dir := opts.viper.GetString("dataset_dir")
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		seen := make(map[string]bool, len(args))
		for _, a := range args {
			seen[a] = true
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || seen[name] || !strings.HasPrefix(name, toComplete) {
				continue
			}
			if supportedExtensions[strings.ToLower(filepath.Ext(name))] {
				names = append(names, name)
			}
		}

		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
