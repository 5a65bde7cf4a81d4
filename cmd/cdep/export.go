package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cdep/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the include graph",
	Long: `Render the persisted include graph for external tools. The DOT layout
places included files on the left and the files that include them on
the right.

Examples:
  cdep export                      # writes dep-graph.dot
  cdep export --out=graph.dot
  cdep export --out=-              # write to stdout`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "dot", "Export format (dot)")
	exportCmd.Flags().StringVar(&exportOut, "out", export.DefaultDotFile, "Output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "dot" {
		return fmt.Errorf("unsupported export format %q", exportFormat)
	}

	wd := workDir()
	idx := mustLoadIndex(wd)

	dot := export.WriteDot(idx, wd)
	if exportOut == "-" {
		fmt.Print(dot)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(dot), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	fmt.Printf("Graph written to %s\n", exportOut)
	return nil
}
