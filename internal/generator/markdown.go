package generator

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"flowerytools/internal/extractor"
)

const (
	DefaultIndexDescriptionLimit = 50
	DefaultIndexPropertyLimit    = 3
	DefaultControlPrefix         = "Daisy"
)

// Options configures the renderer. Zero values fall back to the defaults.
type Options struct {
	IndexDescriptionLimit int    // max chars of a description in the index table
	IndexPropertyLimit    int    // properties listed per control in the index table
	ControlPrefix         string // controls without it are left out of the index table
}

// MarkdownGenerator renders control pages, category pages and the master
// index. It never touches the output tree; the pipeline writes what it
// returns.
type MarkdownGenerator struct {
	opts   Options
	assets *AssetStore
}

func NewMarkdownGenerator(opts Options, assets *AssetStore) *MarkdownGenerator {
	if opts.IndexDescriptionLimit <= 0 {
		opts.IndexDescriptionLimit = DefaultIndexDescriptionLimit
	}
	if opts.IndexPropertyLimit <= 0 {
		opts.IndexPropertyLimit = DefaultIndexPropertyLimit
	}
	if opts.ControlPrefix == "" {
		opts.ControlPrefix = DefaultControlPrefix
	}
	return &MarkdownGenerator{opts: opts, assets: assets}
}

// ShortName drops the common prefix, e.g. "DaisyButton" -> "Button".
func (g *MarkdownGenerator) ShortName(name string) string {
	return strings.ReplaceAll(name, g.opts.ControlPrefix, "")
}

// RenderControl renders the page for one control: title, description,
// base class, screenshots, then the supplementary fragment.
func (g *MarkdownGenerator) RenderControl(control extractor.ControlRecord) string {
	var lines []string

	lines = append(lines, "# "+control.Name, "")

	if control.Description != "" {
		lines = append(lines, control.Description)
	} else {
		lines = append(lines, fmt.Sprintf("A %s control styled after DaisyUI.", g.ShortName(control.Name)))
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("**Inherits from:** `%s`", control.BaseClass), "")

	if images := g.assets.DiscoverImages(control.Name); len(images) > 0 {
		if len(images) == 1 && !isChunkImage(control.Name, images[0]) {
			lines = append(lines, fmt.Sprintf("![%s](%s)", control.Name, images[0]))
		} else {
			for i, img := range images {
				lines = append(lines, fmt.Sprintf("![%s - Part %d](%s)", control.Name, i+1, img))
			}
		}
		lines = append(lines, "")
	}

	if extra := g.assets.LoadFragment(control.Name); extra != "" {
		lines = append(lines, extra, "")
	}

	return strings.Join(lines, "\n")
}

// RenderCategory renders a category overview. Descriptions are not
// truncated here.
func (g *MarkdownGenerator) RenderCategory(category string, controls []extractor.ControlRecord) string {
	var lines []string

	lines = append(lines, "# "+category, "")
	lines = append(lines, fmt.Sprintf("This category contains %d controls:", len(controls)), "")

	for _, control := range controls {
		desc := control.Description
		if desc == "" {
			desc = fmt.Sprintf("A %s control.", g.ShortName(control.Name))
		}
		lines = append(lines, fmt.Sprintf("- **[%s](../controls/%s.html)**: %s", control.Name, control.Name, desc))
	}

	lines = append(lines, "", "See individual control documentation for detailed usage.", "")
	return strings.Join(lines, "\n")
}

// RenderIndex renders llms.txt. Only prefixed controls get a table row.
func (g *MarkdownGenerator) RenderIndex(controls []extractor.ControlRecord) string {
	var b strings.Builder
	b.WriteString(indexHeader)

	sorted := make([]extractor.ControlRecord, len(controls))
	copy(sorted, controls)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, control := range sorted {
		if !strings.HasPrefix(control.Name, g.opts.ControlPrefix) {
			continue
		}
		desc := control.Description
		if desc == "" {
			desc = g.ShortName(control.Name) + " control"
		}
		desc = truncate(desc, g.opts.IndexDescriptionLimit)

		fmt.Fprintf(&b, "| [%s](controls/%s.html) | %s | %s |\n",
			control.Name, control.Name, desc, g.keyProperties(control.Properties))
	}

	b.WriteString("\n")
	b.WriteString(indexFooter)
	return b.String()
}

func (g *MarkdownGenerator) keyProperties(props []extractor.PropertyRecord) string {
	limit := g.opts.IndexPropertyLimit
	names := make([]string, 0, limit)
	for i, p := range props {
		if i == limit {
			break
		}
		names = append(names, p.Name)
	}
	out := strings.Join(names, ", ")
	if len(props) > limit {
		out += ", ..."
	}
	return out
}

// truncate cuts s to limit characters, the last three being "...".
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	keep := limit - 3
	if keep < 0 {
		keep = 0
	}
	return string([]rune(s)[:keep]) + "..."
}
