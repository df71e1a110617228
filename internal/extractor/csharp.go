package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	summaryPattern = regexp.MustCompile(`(?s)///\s*<summary>\s*(.*?)\s*///\s*</summary>`)
	enumPattern    = regexp.MustCompile(`(?s)public\s+enum\s+(\w+)\s*\{([^}]+)\}`)

	// The registration call runs up to the ");" that closes it so nested
	// calls such as nameof(...) and typeof(...) stay inside the block.
	propertyPattern = regexp.MustCompile(
		`(?s)public\s+static\s+readonly\s+DependencyProperty\s+(\w+)Property\s*=\s*` +
			`DependencyProperty\.Register\s*\(.*?\)\s*;`)
	typeofPattern = regexp.MustCompile(`typeof\(([^)]+)\)`)

	// Tried in order; each locates the start of the default argument.
	defaultPatterns = []*regexp.Regexp{
		regexp.MustCompile(`new\s+PropertyMetadata\s*\(\s*`),
		regexp.MustCompile(`defaultValue:\s*`),
	}

	summaryPrefix    = regexp.MustCompile(`^///\s*`)
	thicknessPattern = regexp.MustCompile(`^new\s+Thickness\(\s*(\d+)\s*\)$`)
	numericPattern   = regexp.MustCompile(`^-?\d+(\.\d+)?[fFdDmM]?$`)
)

func (e *Extractor) extractClass(source, target string) (name, base, description string, ok bool) {
	classPattern, err := regexp.Compile(
		`public\s+(?:partial\s+)?class\s+(` + regexp.QuoteMeta(target) + `)\s*:\s*(\w+)`)
	if err != nil {
		return "", "", "", false
	}

	loc := classPattern.FindStringSubmatchIndex(source)
	if loc == nil {
		return "", "", "", false
	}
	name = source[loc[2]:loc[3]]
	base = source[loc[4]:loc[5]]
	description = lastSummary(source[windowStart(source, loc[0], e.opts.SummaryWindow):loc[0]])
	return name, base, description, true
}

func (e *Extractor) extractEnums(source string) []EnumRecord {
	var enums []EnumRecord
	for _, m := range enumPattern.FindAllStringSubmatchIndex(source, -1) {
		values := enumValues(source[m[4]:m[5]])
		if len(values) == 0 {
			continue
		}
		enums = append(enums, EnumRecord{
			Name:        source[m[2]:m[3]],
			Values:      values,
			Description: lastSummary(source[windowStart(source, m[0], e.opts.SummaryWindow):m[0]]),
		})
	}
	return enums
}

func enumValues(body string) []string {
	var values []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "[") {
			continue
		}
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		line = strings.TrimRight(line, ",")

		value, _, _ := strings.Cut(line, "=")
		value = strings.TrimSpace(value)
		if r, _ := utf8.DecodeRuneInString(value); value != "" && unicode.IsUpper(r) {
			values = append(values, value)
		}
	}
	return values
}

func (e *Extractor) extractProperties(source string) []PropertyRecord {
	var props []PropertyRecord
	for _, m := range propertyPattern.FindAllStringSubmatchIndex(source, -1) {
		block := source[m[0]:m[1]]

		propType := "object"
		if tm := typeofPattern.FindStringSubmatch(block); tm != nil {
			propType = tm[1]
		}

		props = append(props, PropertyRecord{
			Name:        source[m[2]:m[3]],
			Type:        propType,
			Default:     extractDefault(block, propType),
			Description: lastSummary(source[windowStart(source, m[0], e.opts.PropertyWindow):m[0]]),
		})
	}
	return props
}

func extractDefault(block, propType string) string {
	for _, p := range defaultPatterns {
		loc := p.FindStringIndex(block)
		if loc == nil {
			continue
		}
		return cleanDefault(firstArgument(block[loc[1]:]), propType)
	}
	return "-"
}

// firstArgument returns the text up to the first ',' or ')' that is not
// nested inside parentheses.
func firstArgument(s string) string {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return s[:i]
			}
			depth--
		case ',':
			if depth == 0 {
				return s[:i]
			}
		}
	}
	return s
}

// cleanDefault shortens common default-value shapes for display.
func cleanDefault(raw, propType string) string {
	value := strings.TrimRight(strings.TrimSpace(raw), ",")
	if value == "" {
		if strings.Contains(propType, "?") {
			return "null"
		}
		return "-"
	}

	switch {
	case strings.Contains(value, "new Thickness("):
		if m := thicknessPattern.FindStringSubmatch(value); m != nil {
			return "Thickness(" + m[1] + ")"
		}
		return "Thickness"
	case strings.Contains(value, "Color.FromArgb"):
		return "Color(semitransparent)"
	case strings.Contains(value, "Colors."):
		return strings.ReplaceAll(value, "Colors.", "")
	case strings.HasPrefix(value, `"`), numericPattern.MatchString(value):
		return value
	case strings.Contains(value, "."):
		return value[strings.LastIndex(value, ".")+1:]
	}
	return value
}

// lastSummary returns the cleaned text of the last <summary> block in text,
// which is the one closest to whatever follows the window.
func lastSummary(text string) string {
	matches := summaryPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return cleanSummary(matches[len(matches)-1][1])
}

func cleanSummary(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = summaryPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}

// windowStart returns the byte offset n characters before end.
func windowStart(s string, end, n int) int {
	i := end
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return i
}
