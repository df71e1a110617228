package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("FLOWERY_ROOT", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Equal(t, 300, cfg.Docs.SummaryWindow)
	assert.Equal(t, 500, cfg.Docs.PropertyWindow)
	assert.Equal(t, 50, cfg.Docs.IndexDescriptionLimit)
	assert.Equal(t, 3, cfg.Docs.IndexPropertyLimit)
	assert.Equal(t, "en.json", cfg.Translations.Reference)
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	t.Setenv("FLOWERY_ROOT", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
project:
  root: /repo
docs:
  output_dir: out
  index_description_limit: 40
  categories:
    Actions:
      - DaisyButton
      - DaisyDropdown
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/repo", cfg.Project.Root)
	assert.Equal(t, "out", cfg.Docs.OutputDir)
	assert.Equal(t, 40, cfg.Docs.IndexDescriptionLimit)
	assert.Equal(t, 3, cfg.Docs.IndexPropertyLimit, "unset keys keep their defaults")
	assert.Equal(t, []string{"DaisyButton", "DaisyDropdown"}, cfg.Docs.Categories["Actions"])
	assert.Equal(t, filepath.Join("/repo", "out"), cfg.Resolve(cfg.Docs.OutputDir))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FLOWERY_ROOT", "/elsewhere")
	t.Setenv("FLOWERY_SUMMARY_WINDOW", "120")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cfg.Project.Root)
	assert.Equal(t, 120, cfg.Docs.SummaryWindow)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("docs: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
