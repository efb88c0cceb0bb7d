package library

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

type lib struct {
	dataDir string
	mapping map[string]string
}

// New creates a TournamentLibrary over a data directory. The mapping file
// holds `"file" : "Display Name"` lines; a missing mapping file is not an
// error, the raw file names are used instead.
func New(dataDir, mappingFile string) TournamentLibrary {
	return &lib{
		dataDir: dataDir,
		mapping: loadMapping(mappingFile),
	}
}

func loadMapping(path string) map[string]string {
	mapping := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		log.Warn("Tournament name mapping not found, using file names", "path", path)
		return mapping
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		file, display, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		file = strings.Trim(strings.TrimSpace(file), `"`)
		display = strings.Trim(strings.TrimSpace(display), `"`)
		if file != "" && display != "" {
			mapping[file] = display
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("Failed to read tournament name mapping", "path", path, "error", err)
	}
	return mapping
}

func (l *lib) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(l.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory %s: %w", l.dataDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		files = append(files, entry.Name())
	}
	// File names start with the year, so a reverse lexical sort puts the
	// most recent tournaments first.
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

func (l *lib) DisplayName(file string) string {
	if display, ok := l.mapping[file]; ok {
		return display
	}
	return file
}

func (l *lib) Read(file string) ([]string, string, error) {
	raw, err := os.ReadFile(filepath.Join(l.dataDir, file))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read export %s: %w", file, err)
	}

	digest := sha256.Sum256(raw)
	lines := strings.Split(string(raw), "\n")
	return lines, hex.EncodeToString(digest[:]), nil
}

// Year extracts the grouping key from an export file name:
// "2024_konopiste.csv" groups under "2024".
func Year(file string) string {
	year, _, found := strings.Cut(file, "_")
	if !found {
		return ""
	}
	return year
}
