package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"flowerytools/internal/generator"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// checkStage compares the rendered files with the output tree and prints a
// unified diff for every file that would change. Pages on disk that a run
// would no longer produce are reported as orphans.
func (p *DocPipeline) checkStage(report *generator.PipelineReport, files []outputFile) ([]string, error) {
	stage := report.BeginStage("check")

	var stale []string
	want := make(map[string]bool, len(files))
	for _, f := range files {
		want[f.rel] = true

		path := filepath.Join(p.opts.OutputDir, filepath.FromSlash(f.rel))
		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			report.EndStage(stage, "", nil, nil, err)
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if string(current) == f.content {
			continue
		}

		diff, err := unifiedDiff(f.rel, string(current), f.content)
		if err != nil {
			report.EndStage(stage, "", nil, nil, err)
			return nil, err
		}
		fmt.Fprint(p.opts.Out, diff)
		stale = append(stale, f.rel)
	}

	orphans, err := p.orphanPages(want)
	if err != nil {
		report.EndStage(stage, "", nil, nil, err)
		return nil, err
	}
	for _, rel := range orphans {
		fmt.Fprintf(p.opts.Out, "⚠️  %s is not produced by the current sources\n", rel)
	}

	report.EndStage(stage, "", map[string]float64{
		"files":   float64(len(files)),
		"stale":   float64(len(stale)),
		"orphans": float64(len(orphans)),
	}, nil, nil)
	return stale, nil
}

func (p *DocPipeline) orphanPages(want map[string]bool) ([]string, error) {
	if _, err := os.Stat(p.opts.OutputDir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	pages, err := doublestar.Glob(os.DirFS(p.opts.OutputDir), "{controls,categories}/*.md", doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	sort.Strings(pages)

	var orphans []string
	for _, rel := range pages {
		if !want[rel] {
			orphans = append(orphans, rel)
		}
	}
	return orphans, nil
}

func unifiedDiff(rel, current, next string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(next),
		FromFile: "a/" + rel,
		ToFile:   "b/" + rel,
		Context:  3,
	})
}
