// internal/cli/show.go
package eduqual

import (
	"github.com/spf13/cobra"
)

// showCmd groups read-only inspection subcommands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show application state",
	Long:  `Inspect application state such as the merged configuration.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
