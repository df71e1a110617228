package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFragment(t *testing.T) {
	in := "<!-- generator: keep -->\n" +
		"# Overview\n" +
		"Intro text <!-- inline --> continues.\n" +
		"\n" +
		"```xml\n" +
		"<!-- shown to readers -->\n" +
		"<daisy:DaisyButton/>\n" +
		"```\n" +
		"# Overview of variants\n" +
		"# Overviews\n"

	want := "## Overview\n" +
		"Intro text  continues.\n" +
		"\n" +
		"```xml\n" +
		"<!-- shown to readers -->\n" +
		"<daisy:DaisyButton/>\n" +
		"```\n" +
		"## Overview of variants\n" +
		"# Overviews"

	assert.Equal(t, want, CleanFragment(in))
}

func TestCleanFragment_IndentedFence(t *testing.T) {
	in := "  ```\n<!-- kept -->\n  ```\n<!-- dropped -->\ntext"
	assert.Equal(t, "```\n<!-- kept -->\n  ```\ntext", CleanFragment(in))
}

func TestAssetStore_LoadFragment(t *testing.T) {
	dir := newExtrasDir(t, map[string]string{
		"DaisyLoading.md": "\xEF\xBB\xBF## Variants\nSpinner, Dots\n",
	})
	store := &AssetStore{Dir: dir}

	assert.True(t, store.HasFragment("DaisyLoading"))
	assert.Equal(t, "## Variants\nSpinner, Dots", store.LoadFragment("DaisyLoading"))
	assert.False(t, store.HasFragment("DaisyButton"))
	assert.Empty(t, store.LoadFragment("DaisyButton"))

	var disabled *AssetStore
	assert.Empty(t, disabled.LoadFragment("DaisyLoading"))
	assert.Nil(t, disabled.DiscoverImages("DaisyLoading"))
}

func TestAssetStore_DiscoverImages(t *testing.T) {
	t.Run("Suffix chunks without exact match", func(t *testing.T) {
		dir := newExtrasDir(t, map[string]string{
			"images/Foo_a.png": "",
			"images/Foo_b.png": "",
		})
		store := &AssetStore{Dir: dir, Prefix: "Daisy"}
		assert.Equal(t, []string{"images/Foo_a.png", "images/Foo_b.png"}, store.DiscoverImages("Foo"))
	})

	t.Run("Single suffix is still a sequence", func(t *testing.T) {
		dir := newExtrasDir(t, map[string]string{"images/DaisyGlass_a.png": ""})
		store := &AssetStore{Dir: dir, Prefix: "Daisy"}
		assert.Equal(t, []string{"images/DaisyGlass_a.png"}, store.DiscoverImages("DaisyGlass"))
	})

	t.Run("Exact then chunks then descriptive", func(t *testing.T) {
		dir := newExtrasDir(t, map[string]string{
			"images/DaisyGlass.png":            "",
			"images/DaisyGlass_c.png":          "",
			"images/Glass(Blur).png":           "",
			"images/DaisyGlass(Capture).png":   "",
			"images/DaisyGlassCard(Other).png": "",
			"images/Glass(NotAPng).jpg":        "",
			"images/DaisyGlass(Unclosed.png":   "",
		})
		store := &AssetStore{Dir: dir, Prefix: "Daisy"}
		assert.Equal(t, []string{
			"images/DaisyGlass.png",
			"images/DaisyGlass_c.png",
			"images/DaisyGlass(Capture).png",
			"images/Glass(Blur).png",
		}, store.DiscoverImages("DaisyGlass"))
	})

	t.Run("No image directory", func(t *testing.T) {
		store := &AssetStore{Dir: t.TempDir()}
		assert.Empty(t, store.DiscoverImages("DaisyGlass"))
	})
}
