package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flowerytools/internal/fsutil"

	"go.uber.org/zap"
)

var (
	ErrDirNotFound       = errors.New("localization directory not found")
	ErrReferenceNotFound = errors.New("reference file not found")
	ErrTargetNotFound    = errors.New("language file not found")
)

// AllLanguages selects every translation file in the directory.
const AllLanguages = "all"

// FileResult is the comparison of one translation file with the reference.
type FileResult struct {
	File       string   `json:"file"`
	KeyCount   int      `json:"key_count"`
	Missing    []string `json:"missing,omitempty"` // in the reference, not in the file
	Extra      []string `json:"extra,omitempty"`   // in the file, not in the reference
	ParseError error    `json:"-"`
}

func (r FileResult) HasIssues() bool {
	return len(r.Missing) > 0 || len(r.Extra) > 0
}

// Compare diffs target against reference in both directions.
func Compare(file string, reference, target KeySet) FileResult {
	return FileResult{
		File:     file,
		KeyCount: len(target),
		Missing:  reference.Minus(target),
		Extra:    target.Minus(reference),
	}
}

// Report is the outcome of one checker run.
type Report struct {
	Reference      string       `json:"reference"`
	ReferenceKeys  int          `json:"reference_keys"`
	ReferenceError error        `json:"-"`
	Files          []FileResult `json:"files"`
}

// Failed is true when any file has missing or extra keys.
func (r *Report) Failed() bool {
	for _, f := range r.Files {
		if f.HasIssues() {
			return true
		}
	}
	return false
}

func (r *Report) FilesWithIssues() int {
	n := 0
	for _, f := range r.Files {
		if f.HasIssues() {
			n++
		}
	}
	return n
}

func (r *Report) TotalMissing() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Missing)
	}
	return n
}

func (r *Report) TotalExtra() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Extra)
	}
	return n
}

// Checker compares translation files in Dir with the Reference file.
type Checker struct {
	Dir       string
	Reference string // file name inside Dir, e.g. en.json
	log       *zap.Logger
}

func NewChecker(dir, reference string, log *zap.Logger) *Checker {
	if reference == "" {
		reference = "en.json"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{Dir: dir, Reference: reference, log: log}
}

// Run checks lang ("all" for every file). Missing directories or files are
// returned as errors; a file that fails to parse is checked as if empty and
// its error kept on the result.
func (c *Checker) Run(lang string) (*Report, error) {
	if !fsutil.IsDir(c.Dir) {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, c.Dir)
	}

	refPath := filepath.Join(c.Dir, c.Reference)
	if !fsutil.Exists(refPath) {
		return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, refPath)
	}

	report := &Report{Reference: c.Reference}
	refKeys, err := LoadKeys(refPath)
	if err != nil {
		c.log.Warn("reference file unreadable", zap.String("path", refPath), zap.Error(err))
		report.ReferenceError = err
		refKeys = KeySet{}
	}
	report.ReferenceKeys = len(refKeys)

	targets, err := c.targets(lang)
	if err != nil {
		return nil, err
	}

	for _, path := range targets {
		name := filepath.Base(path)
		keys, err := LoadKeys(path)
		if err != nil {
			c.log.Warn("translation file unreadable", zap.String("path", path), zap.Error(err))
			keys = KeySet{}
		}
		result := Compare(name, refKeys, keys)
		result.ParseError = err
		report.Files = append(report.Files, result)
	}

	return report, nil
}

func (c *Checker) targets(lang string) ([]string, error) {
	if lang == "" || strings.EqualFold(lang, AllLanguages) {
		entries, err := os.ReadDir(c.Dir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", c.Dir, err)
		}
		var paths []string
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".json" || e.Name() == c.Reference {
				continue
			}
			paths = append(paths, filepath.Join(c.Dir, e.Name()))
		}
		sort.Strings(paths)
		return paths, nil
	}

	path := filepath.Join(c.Dir, lang+".json")
	if !fsutil.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, path)
	}
	return []string{path}, nil
}
