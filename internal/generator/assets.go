package generator

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"flowerytools/internal/fsutil"

	"github.com/bmatcuk/doublestar/v4"
)

// chunkSuffixes are the letters a multi-part screenshot set may use, in order.
const chunkSuffixes = "abcdefghij"

var (
	htmlComment     = regexp.MustCompile(`<!--.*?-->`)
	overviewHeading = regexp.MustCompile(`(?m)^# Overview\b`)
)

// AssetStore reads hand-written fragments and screenshots from the
// supplementary directory. A zero Dir disables both.
type AssetStore struct {
	Dir      string
	ImageDir string // relative to Dir, also the link prefix
	Prefix   string // common control-name prefix, e.g. "Daisy"
}

// HasFragment reports whether a fragment file exists for name.
func (a *AssetStore) HasFragment(name string) bool {
	if a == nil || a.Dir == "" {
		return false
	}
	return fsutil.Exists(filepath.Join(a.Dir, name+".md"))
}

// LoadFragment returns the cleaned supplementary markdown for a control, or
// "" when there is none.
func (a *AssetStore) LoadFragment(name string) string {
	if a == nil || a.Dir == "" {
		return ""
	}
	data, err := fsutil.ReadText(filepath.Join(a.Dir, name+".md"))
	if err != nil {
		return ""
	}
	return CleanFragment(string(data))
}

// CleanFragment strips HTML comments outside fenced code and demotes a
// top-level "# Overview" so it sits below the control title.
func CleanFragment(content string) string {
	content = stripHTMLCommentsOutsideCode(content)
	content = overviewHeading.ReplaceAllString(content, "## Overview")
	return strings.TrimSpace(content)
}

// stripHTMLCommentsOutsideCode removes single-line <!-- --> comments except
// inside ``` fences. Lines that only held a comment are dropped; blank lines
// are kept.
func stripHTMLCommentsOutsideCode(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	inCode := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCode = !inCode
			result = append(result, line)
			continue
		}
		if inCode {
			result = append(result, line)
			continue
		}

		cleaned := htmlComment.ReplaceAllString(line, "")
		if strings.TrimSpace(cleaned) != "" || strings.TrimSpace(line) == "" {
			result = append(result, cleaned)
		}
	}

	return strings.Join(result, "\n")
}

// DiscoverImages lists the screenshots for a control as link paths:
//   - Name.png
//   - Name_a.png … Name_j.png
//   - Short(Description).png or Name(Description).png, sorted by file name
func (a *AssetStore) DiscoverImages(name string) []string {
	if a == nil || a.Dir == "" {
		return nil
	}
	imageDir := a.ImageDir
	if imageDir == "" {
		imageDir = "images"
	}
	dir := filepath.Join(a.Dir, imageDir)
	if !fsutil.IsDir(dir) {
		return nil
	}

	var found []string
	seen := make(map[string]bool)
	add := func(file string) {
		rel := path.Join(imageDir, file)
		if seen[rel] {
			return
		}
		seen[rel] = true
		found = append(found, rel)
	}

	if fsutil.Exists(filepath.Join(dir, name+".png")) {
		add(name + ".png")
	}

	for _, suffix := range chunkSuffixes {
		file := name + "_" + string(suffix) + ".png"
		if fsutil.Exists(filepath.Join(dir, file)) {
			add(file)
		}
	}

	short := name
	if a.Prefix != "" {
		short = strings.ReplaceAll(name, a.Prefix, "")
	}
	files, err := doublestar.Glob(os.DirFS(dir), "*.png", doublestar.WithFilesOnly())
	if err != nil {
		return found
	}
	sort.Strings(files)
	for _, file := range files {
		if !strings.HasSuffix(file, ").png") {
			continue
		}
		if strings.HasPrefix(file, short+"(") || strings.HasPrefix(file, name+"(") {
			add(file)
		}
	}

	return found
}

// isChunkImage reports whether rel is one of name's lettered parts. A lone
// part still renders as a numbered sequence.
func isChunkImage(name, rel string) bool {
	base := path.Base(rel)
	for _, suffix := range chunkSuffixes {
		if base == name+"_"+string(suffix)+".png" {
			return true
		}
	}
	return false
}
