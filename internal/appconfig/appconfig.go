// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// DefaultResultsDir is the directory the dashboard scans for results files.
	DefaultResultsDir = "results"
)

// Config represents the top-level application configuration.
type Config struct {
	ResultsDir string `json:"resultsDir,omitempty"`
	Debug      bool   `json:"debug"`
	NoColor    bool   `json:"noColor"`
	LogFile    string `json:"logFile,omitempty"`
	ConfigPath string `json:"-"`
}

// configSchema validates the shape of a configuration file before it is
// decoded. Unknown keys are allowed; known keys must carry the right type.
const configSchema = `{
  "type": "object",
  "properties": {
    "resultsDir": {"type": "string"},
    "debug": {"type": "boolean"},
    "noColor": {"type": "boolean"},
    "logFile": {"type": "string"}
  }
}`

// ResultsSource returns the configured results directory, falling back to
// the default when unset.
func (c Config) ResultsSource() string {
	if dir := strings.TrimSpace(c.ResultsDir); dir != "" {
		return dir
	}
	return DefaultResultsDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "eduqual.log"
}

// Load reads the application configuration from the specified path, with
// fallback to a legacy path. A missing file is not an error at the default
// path; the zero config is returned instead.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, nil
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := validate(data); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// validate checks raw config JSON against the embedded schema.
func validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return errors.New(strings.Join(messages, "; "))
}
