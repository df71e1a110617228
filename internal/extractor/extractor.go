package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"flowerytools/internal/fsutil"
)

const (
	DefaultSummaryWindow  = 300
	DefaultPropertyWindow = 500
)

// Options bounds how far back the extractor looks for a <summary> block.
// Zero values fall back to the defaults.
type Options struct {
	SummaryWindow  int // chars before a class declaration
	PropertyWindow int // chars before a property registration
}

// Extractor pulls ControlRecords out of C# control sources by pattern
// matching. It does not parse C#.
type Extractor struct {
	opts Options
}

// NewExtractor creates an extractor with the given windows.
func NewExtractor(opts Options) *Extractor {
	if opts.SummaryWindow <= 0 {
		opts.SummaryWindow = DefaultSummaryWindow
	}
	if opts.PropertyWindow <= 0 {
		opts.PropertyWindow = DefaultPropertyWindow
	}
	return &Extractor{opts: opts}
}

// ExtractFromFile reads a control file and extracts the class named after
// the file. It returns nil, nil when the file declares no such class.
func (e *Extractor) ExtractFromFile(path string) (*ControlRecord, error) {
	source, err := fsutil.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	record, ok := e.ExtractFromSource(string(source), TargetName(path))
	if !ok {
		return nil, nil
	}
	record.SourcePath = path
	return record, nil
}

// ExtractFromSource extracts the control declared as targetName. ok is false
// when no matching declaration exists.
func (e *Extractor) ExtractFromSource(source, targetName string) (record *ControlRecord, ok bool) {
	name, base, description, found := e.extractClass(source, targetName)
	if !found {
		return nil, false
	}

	return &ControlRecord{
		Name:        name,
		BaseClass:   base,
		Description: description,
		Properties:  e.extractProperties(source),
		Enums:       e.extractEnums(source),
	}, true
}

// TargetName is the class name a control file must declare: its base name
// without the extension. Partial-class files such as Foo.Skia.cs map to
// Foo.Skia and therefore never match.
func TargetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
