package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flowerytools/internal/crawler"
	"flowerytools/internal/extractor"
	"flowerytools/internal/generator"
	"flowerytools/internal/storage"

	"go.uber.org/zap"
)

// ErrStale is returned in check mode when the generated output on disk does
// not match what a fresh run would write.
var ErrStale = errors.New("generated documentation is out of date")

const reportFile = "pipeline_report.json"

// Options configures a docs run. Paths are used as given; callers resolve
// them against the project root.
type Options struct {
	ControlsDir string
	OutputDir   string
	ExtrasDir   string
	Pattern     string

	Extractor extractor.Options
	Generator generator.Options

	// Categories maps a category title to the control names listed on its
	// page. Empty means no category pages.
	Categories map[string][]string

	// CatalogPath, when set, is a SQLite file that receives the extracted
	// controls after a successful write.
	CatalogPath string

	// Check renders in memory and diffs against OutputDir without writing.
	Check bool

	// Out receives progress lines and diffs. Nil means os.Stdout.
	Out io.Writer
}

// Result summarizes a finished run.
type Result struct {
	Controls        int
	FragmentsMerged int
	Files           int
	Stale           []string // check mode only, relative to OutputDir
}

type outputFile struct {
	rel     string // slash separated, relative to OutputDir
	content string
}

// DocPipeline regenerates the LLM-oriented documentation tree.
type DocPipeline struct {
	opts Options
	log  *zap.Logger
}

func NewDocPipeline(opts Options, log *zap.Logger) *DocPipeline {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DocPipeline{opts: opts, log: log}
}

// Run scans the controls, renders every page and either writes the tree or,
// in check mode, compares it with what is on disk.
func (p *DocPipeline) Run(ctx context.Context) (*Result, error) {
	mode := "write"
	if p.opts.Check {
		mode = "check"
	}
	report := generator.NewPipelineReport(mode, p.opts.OutputDir)
	result := &Result{}

	fmt.Fprintf(p.opts.Out, "📂 Scanning controls: %s\n", p.opts.ControlsDir)
	controls, err := p.scanStage(report)
	if err != nil {
		return nil, err
	}
	result.Controls = len(controls)
	fmt.Fprintf(p.opts.Out, "✅ Extracted %d controls.\n", len(controls))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	assets := &generator.AssetStore{
		Dir:    p.opts.ExtrasDir,
		Prefix: p.opts.Generator.ControlPrefix,
	}
	if assets.Prefix == "" {
		assets.Prefix = generator.DefaultControlPrefix
	}
	gen := generator.NewMarkdownGenerator(p.opts.Generator, assets)

	var files []outputFile
	controlFiles, merged := p.renderControlsStage(report, gen, assets, controls)
	files = append(files, controlFiles...)
	result.FragmentsMerged = merged
	files = append(files, p.renderCategoriesStage(report, gen, controls)...)
	files = append(files, p.renderIndexStage(report, gen, controls))
	result.Files = len(files)

	if p.opts.Check {
		stale, err := p.checkStage(report, files)
		if err != nil {
			return nil, err
		}
		result.Stale = stale
		if len(stale) > 0 {
			fmt.Fprintf(p.opts.Out, "❌ %d generated files are out of date.\n", len(stale))
			return result, fmt.Errorf("%w: %d files", ErrStale, len(stale))
		}
		fmt.Fprintf(p.opts.Out, "✅ Documentation is up to date (%d files).\n", len(files))
		return result, nil
	}

	if err := p.writeStage(report, files); err != nil {
		return nil, err
	}

	if p.opts.CatalogPath != "" {
		if err := p.catalogStage(ctx, report, controls); err != nil {
			return nil, err
		}
	}

	if err := report.Save(filepath.Join(p.opts.OutputDir, reportFile)); err != nil {
		p.log.Warn("failed to save pipeline report", zap.Error(err))
	}

	fmt.Fprintf(p.opts.Out, "🎉 Generated documentation for %d controls (%d with supplementary content) in %s\n",
		result.Controls, result.FragmentsMerged, p.opts.OutputDir)
	return result, nil
}

func (p *DocPipeline) scanStage(report *generator.PipelineReport) ([]extractor.ControlRecord, error) {
	stage := report.BeginStage("scan")

	cr := crawler.NewCrawler(extractor.NewExtractor(p.opts.Extractor), p.opts.Pattern, p.log)
	var controls []extractor.ControlRecord
	stats, err := cr.ScanControls(p.opts.ControlsDir, func(c *extractor.ControlRecord) {
		p.log.Debug("extracted control",
			zap.String("name", c.Name),
			zap.Int("properties", len(c.Properties)),
			zap.Int("enums", len(c.Enums)))
		controls = append(controls, *c)
	})
	report.EndStage(stage, "", map[string]float64{
		"files":     float64(stats.Files),
		"extracted": float64(stats.Extracted),
		"skipped":   float64(stats.Skipped),
		"failed":    float64(stats.Failed),
	}, nil, err)
	if err != nil {
		return nil, err
	}

	if len(controls) == 0 {
		report.AddSignal("no_controls_found", "scan", "warning",
			fmt.Sprintf("no controls matched %s under %s", cr.Pattern(), p.opts.ControlsDir), 0)
	}
	if stats.Failed > 0 {
		report.AddSignal("unreadable_files", "scan", "warning",
			fmt.Sprintf("%d control files could not be read", stats.Failed), float64(stats.Failed))
	}
	return controls, nil
}

func (p *DocPipeline) renderControlsStage(report *generator.PipelineReport, gen *generator.MarkdownGenerator, assets *generator.AssetStore, controls []extractor.ControlRecord) ([]outputFile, int) {
	stage := report.BeginStage("render_controls")

	files := make([]outputFile, 0, len(controls))
	merged := 0
	for _, c := range controls {
		hasFragment := assets.HasFragment(c.Name)
		if hasFragment {
			merged++
		}
		if c.Description == "" {
			report.AddSignal("missing_description", "render_controls", "info",
				c.Name+" has no <summary> documentation", 0)
		}
		report.AddControlMetric(generator.ControlMetric{
			Name:           c.Name,
			SourcePath:     c.SourcePath,
			Properties:     len(c.Properties),
			Enums:          len(c.Enums),
			Images:         len(assets.DiscoverImages(c.Name)),
			HasDescription: c.Description != "",
			HasFragment:    hasFragment,
		})
		files = append(files, outputFile{rel: "controls/" + c.Name + ".md", content: gen.RenderControl(c)})
	}

	report.EndStage(stage, "", map[string]float64{
		"pages":            float64(len(files)),
		"fragments_merged": float64(merged),
	}, nil, nil)
	return files, merged
}

func (p *DocPipeline) renderCategoriesStage(report *generator.PipelineReport, gen *generator.MarkdownGenerator, controls []extractor.ControlRecord) []outputFile {
	stage := report.BeginStage("render_categories")

	byName := make(map[string]extractor.ControlRecord, len(controls))
	for _, c := range controls {
		byName[c.Name] = c
	}

	names := make([]string, 0, len(p.opts.Categories))
	for category := range p.opts.Categories {
		names = append(names, category)
	}
	sort.Strings(names)

	var files []outputFile
	for _, category := range names {
		var members []extractor.ControlRecord
		for _, name := range p.opts.Categories[category] {
			c, ok := byName[name]
			if !ok {
				report.AddSignal("unknown_category_control", "render_categories", "warning",
					fmt.Sprintf("category %q lists %s, which was not extracted", category, name), 0)
				continue
			}
			members = append(members, c)
		}
		files = append(files, outputFile{
			rel:     "categories/" + slug(category) + ".md",
			content: gen.RenderCategory(category, members),
		})
	}

	report.EndStage(stage, "", map[string]float64{"pages": float64(len(files))}, nil, nil)
	return files
}

func (p *DocPipeline) renderIndexStage(report *generator.PipelineReport, gen *generator.MarkdownGenerator, controls []extractor.ControlRecord) outputFile {
	stage := report.BeginStage("render_index")
	index := outputFile{rel: "llms.txt", content: gen.RenderIndex(controls)}
	report.EndStage(stage, "", map[string]float64{"controls": float64(len(controls))}, nil, nil)
	return index
}

func (p *DocPipeline) writeStage(report *generator.PipelineReport, files []outputFile) error {
	stage := report.BeginStage("write")

	var err error
	for _, dir := range []string{"controls", "categories"} {
		if err = os.MkdirAll(filepath.Join(p.opts.OutputDir, dir), 0755); err != nil {
			err = fmt.Errorf("failed to create output directory: %w", err)
			break
		}
	}
	if err == nil {
		for _, f := range files {
			path := filepath.Join(p.opts.OutputDir, filepath.FromSlash(f.rel))
			if err = os.WriteFile(path, []byte(f.content), 0644); err != nil {
				err = fmt.Errorf("failed to write %s: %w", path, err)
				break
			}
		}
	}

	report.EndStage(stage, "", map[string]float64{"files": float64(len(files))}, nil, err)
	return err
}

func (p *DocPipeline) catalogStage(ctx context.Context, report *generator.PipelineReport, controls []extractor.ControlRecord) error {
	stage := report.BeginStage("catalog")
	fmt.Fprintln(p.opts.Out, "💾 Saving control catalog...")

	err := saveCatalog(ctx, p.opts.CatalogPath, controls)
	report.EndStage(stage, "", map[string]float64{"controls": float64(len(controls))}, nil, err)
	if err != nil {
		return fmt.Errorf("failed to save catalog %s: %w", p.opts.CatalogPath, err)
	}
	return nil
}

func saveCatalog(ctx context.Context, path string, controls []extractor.ControlRecord) error {
	store, err := storage.NewSQLiteStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveCatalog(ctx, controls)
}

// slug turns a category title into a file name: "Data Input" -> "data-input".
func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
