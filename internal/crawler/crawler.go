package crawler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flowerytools/internal/extractor"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// DefaultPattern matches every control source below the controls root.
const DefaultPattern = "**/Daisy*.cs"

// ScanStats counts what happened to the files a scan visited.
type ScanStats struct {
	Files     int // files matching the pattern
	Extracted int
	Skipped   int // no matching class declaration, or excluded by name
	Failed    int // unreadable
}

// Crawler scans a directory tree for control source files.
type Crawler struct {
	extractor *extractor.Extractor
	pattern   string
	excluded  []string
	log       *zap.Logger
}

// NewCrawler creates a new crawler instance. An empty pattern means
// DefaultPattern.
func NewCrawler(ext *extractor.Extractor, pattern string, log *zap.Logger) *Crawler {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Crawler{
		extractor: ext,
		pattern:   pattern,
		excluded:  []string{"Converter"},
		log:       log,
	}
}

// ScanControls matches the pattern under root and extracts each file in
// sorted path order. Files that fail to read are logged and skipped so one
// bad file never aborts the scan.
func (c *Crawler) ScanControls(root string, onControl func(*extractor.ControlRecord)) (ScanStats, error) {
	var stats ScanStats

	info, err := os.Stat(root)
	if err != nil {
		return stats, fmt.Errorf("controls directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("controls directory %s is not a directory", root)
	}

	matches, err := doublestar.Glob(os.DirFS(root), c.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return stats, fmt.Errorf("invalid pattern %q: %w", c.pattern, err)
	}
	sort.Strings(matches)

	for _, rel := range matches {
		stats.Files++
		if c.isExcluded(rel) {
			stats.Skipped++
			continue
		}

		path := filepath.Join(root, filepath.FromSlash(rel))
		record, err := c.extractor.ExtractFromFile(path)
		if err != nil {
			stats.Failed++
			c.log.Warn("skipping unreadable control file", zap.String("path", path), zap.Error(err))
			continue
		}
		if record == nil {
			stats.Skipped++
			c.log.Debug("no matching class declaration", zap.String("path", path))
			continue
		}

		stats.Extracted++
		onControl(record)
	}

	return stats, nil
}

func (c *Crawler) isExcluded(rel string) bool {
	name := filepath.Base(filepath.FromSlash(rel))
	for _, token := range c.excluded {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

// Pattern returns the glob the crawler matches control files with.
func (c *Crawler) Pattern() string {
	return c.pattern
}
