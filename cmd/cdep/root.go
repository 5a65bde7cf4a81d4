package main

import (
	"github.com/spf13/cobra"

	"cdep/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cdep",
	Short: "cdep - C include graph and recompilation impact analyzer",
	Long: `cdep builds a directed graph of #include relationships across a tree of
C/C++ sources without invoking a compiler, persists per-file content
hashes alongside it, and answers "which translation units must be
recompiled?" for a set of changed files.

Tracking is best-effort: #include lines are scanned lexically (no macro
expansion, no #if evaluation) and angle-bracket includes are treated as
external.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("cdep version {{.Version}}\n")
}
