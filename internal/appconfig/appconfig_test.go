// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad verifies that a valid configuration file is loaded without
// error, that schema violations and malformed JSON are rejected, and that
// an explicit nonexistent path is an error.
func TestLoad(t *testing.T) {
	validConfig := `{
        "resultsDir": "data/results",
        "debug": true,
        "logFile": "logs/eduqual.log"
    }`
	tmpfile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(tmpfile, []byte(validConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.ResultsSource() != "data/results" {
		t.Fatalf("expected resultsDir data/results, got %q", cfg.ResultsSource())
	}
	if !cfg.Debug {
		t.Fatal("expected debug to be true")
	}
	if cfg.LogFilePath() != "logs/eduqual.log" {
		t.Fatalf("expected log file logs/eduqual.log, got %q", cfg.LogFilePath())
	}

	invalidJSON := `{ "resultsDir": `
	tmpfile2 := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(tmpfile2, []byte(invalidJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpfile2); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	wrongType := `{ "resultsDir": 42 }`
	tmpfile3 := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(tmpfile3, []byte(wrongType), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpfile3); err == nil {
		t.Fatal("Load() with schema violation should have failed")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Load() with explicit missing path should have failed")
	}
}

// TestLoadDefaults verifies defaults applied by the accessor methods.
func TestLoadDefaults(t *testing.T) {
	var cfg Config
	if cfg.ResultsSource() != DefaultResultsDir {
		t.Fatalf("expected default results dir %q, got %q", DefaultResultsDir, cfg.ResultsSource())
	}
	if cfg.LogFilePath() != "eduqual.log" {
		t.Fatalf("expected default log file eduqual.log, got %q", cfg.LogFilePath())
	}
}
