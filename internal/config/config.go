package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // json or console
	} `yaml:"log"`
	Docs struct {
		ControlsDir string `yaml:"controls_dir"`
		OutputDir   string `yaml:"output_dir"`
		ExtrasDir   string `yaml:"extras_dir"`
		Pattern     string `yaml:"pattern"` // doublestar glob relative to ControlsDir

		SummaryWindow         int `yaml:"summary_window"`  // chars searched before a class declaration
		PropertyWindow        int `yaml:"property_window"` // chars searched before a property registration
		IndexDescriptionLimit int `yaml:"index_description_limit"`
		IndexPropertyLimit    int `yaml:"index_property_limit"`

		Categories map[string][]string `yaml:"categories"`
	} `yaml:"docs"`
	Translations struct {
		Dir       string `yaml:"dir"`
		Reference string `yaml:"reference"`
	} `yaml:"translations"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	var cfg Config
	cfg.Project.Root = "."
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
	cfg.Docs.ControlsDir = filepath.Join("Flowery.Uno", "Controls")
	cfg.Docs.OutputDir = "llms"
	cfg.Docs.ExtrasDir = "llms-static"
	cfg.Docs.Pattern = "**/Daisy*.cs"
	cfg.Docs.SummaryWindow = 300
	cfg.Docs.PropertyWindow = 500
	cfg.Docs.IndexDescriptionLimit = 50
	cfg.Docs.IndexPropertyLimit = 3
	cfg.Translations.Dir = filepath.Join("Flowery.Uno.Gallery", "Localization")
	cfg.Translations.Reference = "en.json"
	return &cfg
}

// LoadConfig reads path on top of Default. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if root := os.Getenv("FLOWERY_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if level := os.Getenv("FLOWERY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if out := os.Getenv("FLOWERY_DOCS_OUTPUT"); out != "" {
		cfg.Docs.OutputDir = out
	}
	if dir := os.Getenv("FLOWERY_LOCALIZATION_DIR"); dir != "" {
		cfg.Translations.Dir = dir
	}
	if v := os.Getenv("FLOWERY_SUMMARY_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Docs.SummaryWindow = n
		}
	}

	return cfg, nil
}

// Resolve joins p onto the project root unless it is already absolute.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Project.Root, p)
}
