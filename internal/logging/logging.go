// Package logging provides shared log initialization: events go to stdout
// and, when a path is configured, to an append-only log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	active  bool
	logFile *os.File
)

// Init routes the standard logger to stdout plus the given file. An empty
// logPath keeps stdout only. Until Init is called, LogEvent is a no-op so
// background events cannot corrupt the interactive UI.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	active = true
	return nil
}

// Close releases the log file, if any, and restores the default output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	active = false
	log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent records a formatted application event.
func LogEvent(format string, args ...any) {
	mu.Lock()
	enabled := active
	mu.Unlock()
	if !enabled {
		return
	}
	log.Println(fmt.Sprintf(format, args...))
}
