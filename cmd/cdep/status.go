package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cdep/internal/graph"
	"cdep/internal/history"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index state and last scan",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	wd := workDir()
	cfg := loadConfigOrDefault(wd)
	logger := newLogger(cfg)

	idx, err := graph.LoadAny(wd)
	if err != nil {
		fmt.Println("No index found.")
		fmt.Println()
		fmt.Println("Build one with: cdep scan <roots...>")
		return nil
	}

	fmt.Println("Index:")
	for _, root := range idx.Roots {
		fmt.Printf("  root: %s\n", root)
	}
	fmt.Printf("  files: %d\n", idx.FileCount())
	fmt.Printf("  edges: %d\n", idx.EdgeCount())

	db, err := history.Open(wd, logger)
	if err != nil {
		logger.Debug("history database unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	defer db.Close()

	last, err := db.LastScan()
	if err != nil || last == nil {
		return nil
	}

	fmt.Println("Last scan:")
	fmt.Printf("  id: %s\n", last.ID)
	fmt.Printf("  finished: %s\n", last.FinishedAt.Format(time.RFC3339))
	fmt.Printf("  files: %d, edges: %d, unresolved: %d, skipped: %d\n",
		last.Files, last.Edges, last.Unresolved, last.Skipped)
	return nil
}
