// internal/cli/show_config.go
package eduqual

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/eduqual/internal/appconfig"
)

// showConfigCmd implements 'show config', printing the merged configuration
// after flags and the config file have been reconciled.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), getConfig())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
