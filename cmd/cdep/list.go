package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cdep/internal/scanner"
)

var (
	listIgnores        []string
	listExts           []string
	listFollowSymlinks bool
)

var listCmd = &cobra.Command{
	Use:   "list <roots...>",
	Short: "List relevant C/C++ files under the given roots",
	Long: `Recursively list the candidate files a scan would consider, sorted and
deduplicated.

Examples:
  cdep list src include
  cdep list . --ignore third_party/ --ignore generated/
  cdep list . --exts c,h,hpp`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringArrayVar(&listIgnores, "ignore", nil, "Ignore pattern (substring match), repeatable")
	listCmd.Flags().StringSliceVar(&listExts, "exts", nil, "Override relevant extensions (comma-separated, no dots)")
	listCmd.Flags().BoolVar(&listFollowSymlinks, "follow-symlinks", false, "Follow directory symlinks during traversal")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	wd := workDir()
	cfg := loadConfigOrDefault(wd)
	logger := newLogger(cfg)

	exts := cfg.Extensions
	if len(listExts) > 0 {
		exts = listExts
	}

	files, err := scanner.ListFiles(args, scanner.Options{
		Ignores:        cfg.MergeIgnores(listIgnores),
		Extensions:     exts,
		FollowSymlinks: listFollowSymlinks,
	}, logger)
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
