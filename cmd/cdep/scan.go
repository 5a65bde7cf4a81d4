package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cdep/internal/graph"
	"cdep/internal/history"
	"cdep/internal/logging"
	"cdep/internal/scanner"
)

var (
	scanIgnores        []string
	scanExts           []string
	scanFollowSymlinks bool
	scanCompress       bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <roots...>",
	Short: "Build the include graph index",
	Long: `Scan the given roots, hash every relevant file, resolve quoted
includes, and write the resulting graph to .cdep/index.json. The index
is rebuilt from scratch on every scan.

Examples:
  cdep scan src include
  cdep scan . --ignore third_party/
  cdep scan . --compress`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringArrayVar(&scanIgnores, "ignore", nil, "Ignore pattern (substring match), repeatable")
	scanCmd.Flags().StringSliceVar(&scanExts, "exts", nil, "Override relevant extensions (comma-separated, no dots)")
	scanCmd.Flags().BoolVar(&scanFollowSymlinks, "follow-symlinks", false, "Follow directory symlinks during traversal")
	scanCmd.Flags().BoolVar(&scanCompress, "compress", false, "Write the index as a zstd-compressed artifact")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	wd := workDir()
	cfg := loadConfigOrDefault(wd)
	logger := newLogger(cfg)

	exts := cfg.Extensions
	if len(scanExts) > 0 {
		exts = scanExts
	}

	rec := history.NewScanRecord()

	idx, stats, err := scanner.BuildIndex(args, scanner.Options{
		Ignores:        cfg.MergeIgnores(scanIgnores),
		Extensions:     exts,
		FollowSymlinks: scanFollowSymlinks,
	}, logger)
	if err != nil {
		return err
	}

	path := graph.IndexPath(wd, scanCompress)
	if err := graph.Save(idx, path, scanCompress); err != nil {
		return err
	}

	rec.FinishedAt = time.Now()
	rec.Roots = stats.Roots
	rec.Files = stats.Files
	rec.Edges = stats.Edges
	rec.Unresolved = stats.Unresolved
	rec.Skipped = stats.Skipped
	recordScanHistory(wd, rec, logger)

	fmt.Printf("Indexed %d files, %d edges (%d unresolved includes) in %s\n",
		stats.Files, stats.Edges, stats.Unresolved, stats.Duration.Round(time.Millisecond))
	fmt.Printf("Index written to %s\n", path)
	return nil
}

// recordScanHistory saves the scan record, logging failures instead of
// failing the scan: history is advisory state.
func recordScanHistory(wd string, rec *history.ScanRecord, logger *logging.Logger) {
	db, err := history.Open(wd, logger)
	if err != nil {
		logger.Warn("failed to open history database", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	defer db.Close()

	if err := db.RecordScan(rec); err != nil {
		logger.Warn("failed to record scan history", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
