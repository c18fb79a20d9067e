// internal/cli/report.go
package eduqual

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/eduqual/internal/analysis"
	"github.com/mwiater/eduqual/internal/report"
	"github.com/mwiater/eduqual/internal/results"
)

type reportOptions struct {
	inputPath    string
	analysisPath string
}

var reportOpts reportOptions

// reportCmd analyzes the latest results CSV and prints the pattern report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze the latest evaluation results and print a pattern report",
	Long: `Find the most recent results CSV (or read the file passed via --input),
compute rating distributions, recurring issues, triage items, and an
executive summary, and print the full report to the terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := reportOpts.inputPath
		if path == "" {
			dir := getConfig().ResultsSource()
			latest, err := results.FindLatest(dir)
			if errors.Is(err, results.ErrNoResults) {
				cmd.Printf("No results files found in %s. Run an evaluation first.\n", dir)
				return nil
			}
			if err != nil {
				return err
			}
			path = latest.Path
		}

		table, err := results.LoadFile(path)
		if err != nil {
			return err
		}

		a := analysis.Analyze(table)

		if DebugEnabled() {
			pp.Println(a)
		}

		if reportOpts.analysisPath != "" {
			if err := writeAnalysisJSON(reportOpts.analysisPath, a); err != nil {
				return err
			}
			cmd.Printf("Analysis JSON written to %s\n", reportOpts.analysisPath)
		}

		report.Render(cmd.OutOrStdout(), table, a)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOpts.inputPath, "input", "", "Path to a specific results CSV (default: latest in results dir)")
	reportCmd.Flags().StringVar(&reportOpts.analysisPath, "analysis-output", "", "Optional path to write the analysis JSON")

	rootCmd.AddCommand(reportCmd)
}

func writeAnalysisJSON(path string, a analysis.Analysis) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write analysis JSON %s: %w", path, err)
	}
	return nil
}
