// internal/cli/dashboard.go
package eduqual

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mwiater/eduqual/internal/dashboard"
	"github.com/mwiater/eduqual/internal/logging"
	"github.com/mwiater/eduqual/internal/results"
)

// dashboardCmd launches the interactive results dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive quality dashboard",
	Long: `Open a terminal dashboard over the results directory: pick a results
CSV, then explore overview metrics, quality breakdowns, evaluator
accuracy, and a filterable record table with CSV export.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()

		logPath := ""
		if DebugEnabled() {
			logPath = cfg.LogFilePath()
		}
		if err := logging.Init(logPath); err != nil {
			return err
		}
		defer logging.Close()

		dir := cfg.ResultsSource()
		err := dashboard.Start(cfg, dir)
		if errors.Is(err, results.ErrNoResults) {
			cmd.Printf("No results files found in %s. Run an evaluation first.\n", dir)
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
