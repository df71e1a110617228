package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flowerytools/internal/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newExtrasDir creates a supplementary directory holding the given files
// (paths relative to the directory).
func newExtrasDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestRenderControl_FallbackDescription(t *testing.T) {
	gen := NewMarkdownGenerator(Options{}, nil)

	md := gen.RenderControl(extractor.ControlRecord{Name: "DaisyButton", BaseClass: "Button"})

	want := "# DaisyButton\n\nA Button control styled after DaisyUI.\n\n**Inherits from:** `Button`\n"
	assert.Equal(t, want, md)
}

func TestRenderControl_Order(t *testing.T) {
	dir := newExtrasDir(t, map[string]string{
		"DaisyCard.md":         "# Overview\nCards group content.\n<!-- internal note -->\n",
		"images/DaisyCard.png": "",
	})
	gen := NewMarkdownGenerator(Options{}, &AssetStore{Dir: dir, Prefix: "Daisy"})

	md := gen.RenderControl(extractor.ControlRecord{
		Name:        "DaisyCard",
		BaseClass:   "ContentControl",
		Description: "A Card control.",
	})

	want := strings.Join([]string{
		"# DaisyCard",
		"",
		"A Card control.",
		"",
		"**Inherits from:** `ContentControl`",
		"",
		"![DaisyCard](images/DaisyCard.png)",
		"",
		"## Overview\nCards group content.",
		"",
	}, "\n")
	assert.Equal(t, want, md)
}

func TestRenderControl_NumberedImages(t *testing.T) {
	dir := newExtrasDir(t, map[string]string{
		"images/DaisyMockup_a.png":        "",
		"images/DaisyMockup_b.png":        "",
		"images/Mockup(Window).png":       "",
		"images/DaisyMockup(Browser).png": "",
		"images/Unrelated(Thing).png":     "",
	})
	gen := NewMarkdownGenerator(Options{}, &AssetStore{Dir: dir, Prefix: "Daisy"})

	md := gen.RenderControl(extractor.ControlRecord{Name: "DaisyMockup", BaseClass: "ContentControl"})

	assert.Contains(t, md, "![DaisyMockup - Part 1](images/DaisyMockup_a.png)\n")
	assert.Contains(t, md, "![DaisyMockup - Part 2](images/DaisyMockup_b.png)\n")
	assert.Contains(t, md, "![DaisyMockup - Part 3](images/DaisyMockup(Browser).png)\n")
	assert.Contains(t, md, "![DaisyMockup - Part 4](images/Mockup(Window).png)\n")
	assert.NotContains(t, md, "Unrelated")
}

func TestRenderControl_LoneChunkIsNumbered(t *testing.T) {
	dir := newExtrasDir(t, map[string]string{"images/DaisyGlass_a.png": ""})
	gen := NewMarkdownGenerator(Options{}, &AssetStore{Dir: dir, Prefix: "Daisy"})

	md := gen.RenderControl(extractor.ControlRecord{Name: "DaisyGlass", BaseClass: "Border"})
	assert.Contains(t, md, "![DaisyGlass - Part 1](images/DaisyGlass_a.png)\n")
}

func TestRenderCategory(t *testing.T) {
	gen := NewMarkdownGenerator(Options{}, nil)
	long := strings.Repeat("word ", 30)

	md := gen.RenderCategory("Actions", []extractor.ControlRecord{
		{Name: "DaisyButton", Description: long},
		{Name: "DaisyFab"},
	})

	want := strings.Join([]string{
		"# Actions",
		"",
		"This category contains 2 controls:",
		"",
		"- **[DaisyButton](../controls/DaisyButton.html)**: " + long,
		"- **[DaisyFab](../controls/DaisyFab.html)**: A Fab control.",
		"",
		"See individual control documentation for detailed usage.",
		"",
	}, "\n")
	assert.Equal(t, want, md)
}

func TestRenderIndex(t *testing.T) {
	gen := NewMarkdownGenerator(Options{}, nil)
	props := func(names ...string) []extractor.PropertyRecord {
		var out []extractor.PropertyRecord
		for _, n := range names {
			out = append(out, extractor.PropertyRecord{Name: n})
		}
		return out
	}

	controls := []extractor.ControlRecord{
		{Name: "DaisyTooltip", Description: "Short tip."},
		{Name: "DaisyAlert", Description: strings.Repeat("a", 60), Properties: props("Variant", "Size", "Icon", "Message")},
		{Name: "ThemeHelper", Description: "Not a Daisy control."},
		{Name: "DaisyBadge", Properties: props("Variant", "Size")},
		{Name: "DaisyCard", Description: strings.Repeat("b", 50), Properties: props("A", "B", "C")},
		{Name: "DaisyBreadcrumbs", Description: "Path navigation."},
	}

	md := gen.RenderIndex(controls)

	t.Run("Static sections", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(md, "# Flowery.Uno Component Library\n"))
		assert.Contains(t, md, "## Quick Start")
		assert.Contains(t, md, "### Variants")
		assert.Contains(t, md, "### Theming")
		assert.True(t, strings.HasSuffix(md, "nord, sunset\n"))
	})

	t.Run("Rows", func(t *testing.T) {
		var rows []string
		for _, line := range strings.Split(md, "\n") {
			if strings.HasPrefix(line, "| [") {
				rows = append(rows, line)
			}
		}
		require.Len(t, rows, 5, "non-prefixed controls are excluded")
		assert.Equal(t, "| [DaisyAlert](controls/DaisyAlert.html) | "+strings.Repeat("a", 47)+"... | Variant, Size, Icon, ... |", rows[0])
		assert.Equal(t, "| [DaisyBadge](controls/DaisyBadge.html) | Badge control | Variant, Size |", rows[1])
		assert.Equal(t, "| [DaisyBreadcrumbs](controls/DaisyBreadcrumbs.html) | Path navigation. |  |", rows[2])
		assert.Equal(t, "| [DaisyCard](controls/DaisyCard.html) | "+strings.Repeat("b", 50)+" | A, B, C |", rows[3])
		assert.Equal(t, "| [DaisyTooltip](controls/DaisyTooltip.html) | Short tip. |  |", rows[4])
	})

	t.Run("Table ends before patterns", func(t *testing.T) {
		assert.Contains(t, md, "| Short tip. |  |\n\n## Common Patterns\n")
	})
}

func TestRenderIndex_CustomLimits(t *testing.T) {
	gen := NewMarkdownGenerator(Options{IndexDescriptionLimit: 10, IndexPropertyLimit: 1}, nil)
	md := gen.RenderIndex([]extractor.ControlRecord{{
		Name:        "DaisyRange",
		Description: "Slider for numeric ranges.",
		Properties:  []extractor.PropertyRecord{{Name: "Min"}, {Name: "Max"}},
	}})
	assert.Contains(t, md, "| [DaisyRange](controls/DaisyRange.html) | Slider ... | Min, ... |")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, strings.Repeat("x", 50), truncate(strings.Repeat("x", 50), 50))
	assert.Equal(t, "ééé...", truncate("éééééé!", 6))
}
