// internal/results/discover.go
package results

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// ErrNoResults indicates that the results source path contains no file
// matching the results_<N>.csv naming convention.
var ErrNoResults = errors.New("no results files found")

var resultsFilePattern = regexp.MustCompile(`^results_(\d+)\.csv$`)

// File identifies a discovered results file and its run number.
type File struct {
	Path string
	Name string
	Run  int
}

// List returns every results_<N>.csv in dir, ordered by ascending run
// number. A missing or empty directory yields ErrNoResults.
func List(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoResults
		}
		return nil, fmt.Errorf("unable to read results dir %s: %w", dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		run, ok := parseRunNumber(entry.Name())
		if !ok {
			continue
		}
		files = append(files, File{
			Path: filepath.Join(dir, entry.Name()),
			Name: entry.Name(),
			Run:  run,
		})
	}

	if len(files) == 0 {
		return nil, ErrNoResults
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Run < files[j].Run })
	return files, nil
}

// FindLatest returns the results file with the highest run number in dir.
func FindLatest(dir string) (File, error) {
	files, err := List(dir)
	if err != nil {
		return File{}, err
	}
	return files[len(files)-1], nil
}

// parseRunNumber extracts <N> from a results_<N>.csv file name.
func parseRunNumber(name string) (int, bool) {
	m := resultsFilePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	run, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return run, true
}

// baseName returns the final element of path.
func baseName(path string) string {
	return filepath.Base(path)
}
