// internal/cli/root.go
package eduqual

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mwiater/eduqual/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "eduqual",
	Short: "eduqual — analysis tools for LLM educational-quality evaluation results",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		for _, name := range []string{"debug", "noColor"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}
		if !cmd.Flags().Changed("results") {
			if dir := viper.GetString("resultsDir"); dir != "" {
				_ = cmd.Flags().Set("results", dir)
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		color.NoColor = color.NoColor || cfg.NoColor

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// --config (defaults to your existing path)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("noColor", false, "disable colored terminal output")
	rootCmd.PersistentFlags().String("results", appconfig.DefaultResultsDir, "directory scanned for results CSV files")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("noColor", rootCmd.PersistentFlags().Lookup("noColor"))
	_ = viper.BindPFlag("resultsDir", rootCmd.PersistentFlags().Lookup("results"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded validates and reads the config, setting safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("noColor", false)
	viper.SetDefault("resultsDir", appconfig.DefaultResultsDir)

	// Schema-check the file before handing it to viper so a malformed
	// config fails with a pointed message instead of a zero-value merge.
	// Load also resolves the legacy config.json fallback.
	loaded, err := appconfig.Load(cfgFile)
	if err != nil {
		return err
	}
	if loaded.ConfigPath != "" && loaded.ConfigPath != cfgFile {
		viper.SetConfigFile(loaded.ConfigPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// getConfig returns the loaded application configuration for other packages.
func getConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// Helper accessors (reflect merged Viper state)
func DebugEnabled() bool   { return viper.GetBool("debug") }
func NoColorEnabled() bool { return viper.GetBool("noColor") }
