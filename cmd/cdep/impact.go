package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cdep/internal/graph"
)

var impactFormat string

var impactCmd = &cobra.Command{
	Use:   "impact <paths...>",
	Short: "Report translation units affected by changed files",
	Long: `Re-hash the given paths (directories expand to every indexed file under
them), compare against the stored hashes, and walk the reverse include
graph from every genuinely-changed file to the translation units that
must be recompiled.

Two empty results are normal, distinct terminal states: "no content
changes" (nothing actually changed) and "no translation units
downstream" (changed files that nothing compiles against).

Examples:
  cdep impact src/util.h
  cdep impact src/ include/
  cdep impact src/util.h --format=json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImpact,
}

func init() {
	impactCmd.Flags().StringVar(&impactFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(impactCmd)
}

// impactResponse is the JSON shape of an impact query result.
type impactResponse struct {
	Status           string   `json:"status"`
	Dirty            []string `json:"dirty,omitempty"`
	TranslationUnits []string `json:"translationUnits,omitempty"`
}

func runImpact(cmd *cobra.Command, args []string) error {
	wd := workDir()
	cfg := loadConfigOrDefault(wd)
	logger := newLogger(cfg)

	idx := mustLoadIndex(wd)
	result := graph.Analyze(idx, args)

	logger.Debug("impact analysis completed", map[string]interface{}{
		"candidates": len(args),
		"dirty":      len(result.Dirty),
		"affected":   len(result.TranslationUnits),
	})

	if impactFormat == "json" {
		return printImpactJSON(result)
	}
	printImpactHuman(result)
	return nil
}

func printImpactJSON(result *graph.Result) error {
	resp := impactResponse{
		Dirty:            result.Dirty,
		TranslationUnits: result.TranslationUnits,
	}
	switch result.Outcome {
	case graph.NoChanges:
		resp.Status = "no-changes"
	case graph.NoAffected:
		resp.Status = "no-affected-translation-units"
	default:
		resp.Status = "affected"
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printImpactHuman(result *graph.Result) {
	switch result.Outcome {
	case graph.NoChanges:
		fmt.Println("no content changes")
	case graph.NoAffected:
		fmt.Println("no translation units downstream of the changed files:")
		for _, f := range result.Dirty {
			fmt.Fprintf(os.Stdout, "  %s\n", f)
		}
	default:
		for _, tu := range result.TranslationUnits {
			fmt.Println(tu)
		}
	}
}
