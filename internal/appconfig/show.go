package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &Config{}
	}
	fmt.Fprintf(out, "  Results Dir: %s\n", cfg.ResultsSource())
	fmt.Fprintf(out, "  Debug:       %v\n", cfg.Debug)
	fmt.Fprintf(out, "  No Color:    %v\n", cfg.NoColor)
	fmt.Fprintf(out, "  Log File:    %s\n", cfg.LogFilePath())
}
