package extractor

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractFromFile(t *testing.T) {
	ext := NewExtractor(Options{})

	record, err := ext.ExtractFromFile(filepath.Join("testdata", "DaisyCard.cs"))
	require.NoError(t, err)
	require.NotNil(t, record)

	propsByName := make(map[string]PropertyRecord)
	for _, p := range record.Properties {
		propsByName[p.Name] = p
	}

	t.Run("Class", func(t *testing.T) {
		assert.Equal(t, "DaisyCard", record.Name)
		assert.Equal(t, "ContentControl", record.BaseClass)
		assert.Equal(t, "A Card control styled after DaisyUI's Card component. Supports glass and side layouts.", record.Description)
		assert.Equal(t, filepath.Join("testdata", "DaisyCard.cs"), record.SourcePath)
	})

	t.Run("Property Order", func(t *testing.T) {
		var names []string
		for _, p := range record.Properties {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{
			"BodyPadding", "Accent", "Layout", "Tint", "OpacityLevel",
			"Icon", "TagText", "Margins", "CallbackOnly",
		}, names)
	})

	t.Run("Thickness Default", func(t *testing.T) {
		p := propsByName["BodyPadding"]
		assert.Equal(t, "Thickness", p.Type)
		assert.Equal(t, "Thickness(8)", p.Default)
		assert.Equal(t, "Gets or sets the inner padding.", p.Description)

		assert.Equal(t, "Thickness", propsByName["Margins"].Default, "multi-value thickness collapses to its type")
	})

	t.Run("Color Defaults", func(t *testing.T) {
		assert.Equal(t, "CornflowerBlue", propsByName["Accent"].Default)
		assert.Equal(t, "Color(semitransparent)", propsByName["Tint"].Default)
	})

	t.Run("Enum Default", func(t *testing.T) {
		p := propsByName["Layout"]
		assert.Equal(t, "DaisyCardLayout", p.Type)
		assert.Equal(t, "Normal", p.Default)
		// No summary of its own: the closest one inside the window wins.
		assert.Equal(t, "Gets or sets the accent color.", p.Description)
	})

	t.Run("Literal Defaults", func(t *testing.T) {
		assert.Equal(t, "0.5", propsByName["OpacityLevel"].Default)
		assert.Equal(t, "null", propsByName["Icon"].Default)
		assert.Equal(t, "Symbol?", propsByName["Icon"].Type)
		assert.Equal(t, `"card.default"`, propsByName["TagText"].Default)
		assert.Equal(t, "-", propsByName["CallbackOnly"].Default)
	})

	t.Run("Enums", func(t *testing.T) {
		want := []EnumRecord{{
			Name:        "DaisyCardLayout",
			Values:      []string{"Normal", "Side", "Glass"},
			Description: "Layout mode for a card.",
		}}
		if diff := cmp.Diff(want, record.Enums); diff != "" {
			t.Fatalf("enums mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestExtractor_NoSummaryStillProducesRecord(t *testing.T) {
	ext := NewExtractor(Options{})

	record, err := ext.ExtractFromFile(filepath.Join("testdata", "DaisyButton.cs"))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "DaisyButton", record.Name)
	assert.Equal(t, "Button", record.BaseClass)
	assert.Empty(t, record.Description)
	assert.Empty(t, record.Properties)
	assert.Empty(t, record.Enums)
}

func TestExtractor_SoftSkip(t *testing.T) {
	ext := NewExtractor(Options{})

	t.Run("Partial file name", func(t *testing.T) {
		record, err := ext.ExtractFromFile(filepath.Join("testdata", "DaisyHelper.Skia.cs"))
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("Name mismatch", func(t *testing.T) {
		record, ok := ext.ExtractFromSource("public class DaisyButtonGroup : Panel {}", "DaisyButton")
		assert.False(t, ok)
		assert.Nil(t, record)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := ext.ExtractFromFile(filepath.Join("testdata", "Nope.cs"))
		assert.Error(t, err)
	})
}

func TestExtractor_BOMPrefixedFile(t *testing.T) {
	record, err := NewExtractor(Options{}).ExtractFromFile(filepath.Join("testdata", "DaisyBadge.cs"))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Badge with a BOM.", record.Description)
}

func TestExtractor_FirstDeclarationWins(t *testing.T) {
	src := `
/// <summary>
/// First.
/// </summary>
public class DaisyDup : Button {}
/// <summary>
/// Second.
/// </summary>
public class DaisyDup : Control {}
`
	record, ok := NewExtractor(Options{}).ExtractFromSource(src, "DaisyDup")
	require.True(t, ok)
	assert.Equal(t, "Button", record.BaseClass)
	assert.Equal(t, "First.", record.Description)
}

func TestExtractor_SummaryWindow(t *testing.T) {
	src := "/// <summary>\n/// Far away.\n/// </summary>\n" + strings.Repeat(" ", 400) + "public class DaisyFar : Control {}"

	record, ok := NewExtractor(Options{}).ExtractFromSource(src, "DaisyFar")
	require.True(t, ok)
	assert.Empty(t, record.Description, "summary beyond the default window is ignored")

	record, ok = NewExtractor(Options{SummaryWindow: 1000}).ExtractFromSource(src, "DaisyFar")
	require.True(t, ok)
	assert.Equal(t, "Far away.", record.Description)
}

func TestCleanDefault(t *testing.T) {
	tests := []struct {
		raw, propType, want string
	}{
		{"new Thickness(8)", "Thickness", "Thickness(8)"},
		{"new Thickness( 12 )", "Thickness", "Thickness(12)"},
		{"new Thickness(1,2)", "Thickness", "Thickness"},
		{"Color.FromArgb(0x33, 1, 2, 3)", "Color", "Color(semitransparent)"},
		{"Colors.CornflowerBlue", "Color", "CornflowerBlue"},
		{"DaisySize.Medium", "DaisySize", "Medium"},
		{"Flowery.Enums.Placement.Top", "Placement", "Top"},
		{"true", "bool", "true"},
		{"1.5", "double", "1.5"},
		{"", "int?", "null"},
		{"", "int", "-"},
		{"  42,", "int", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanDefault(tt.raw, tt.propType))
		})
	}
}

func TestCleanSummary(t *testing.T) {
	got := cleanSummary("Line one.\n    /// Line two.\n    ///\n    /// Line three.")
	assert.Equal(t, "Line one. Line two. Line three.", got)
}

func TestFirstArgument(t *testing.T) {
	assert.Equal(t, "new Thickness(8, 6)", firstArgument("new Thickness(8, 6), OnChanged));"))
	assert.Equal(t, "null", firstArgument("null));"))
	assert.Equal(t, "x", firstArgument("x"))
}

func TestTargetName(t *testing.T) {
	assert.Equal(t, "DaisyButton", TargetName("/src/Controls/DaisyButton.cs"))
	assert.Equal(t, "DaisyHelper.Skia", TargetName("DaisyHelper.Skia.cs"))
}
