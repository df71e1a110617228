package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"flowerytools/internal/config"
	"flowerytools/internal/extractor"
	"flowerytools/internal/generator"
	"flowerytools/internal/i18n"
	"flowerytools/internal/logger"
	"flowerytools/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "flowerytools",
		Short: "Documentation and localization tooling for Flowery.Uno",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig()
			return err
		},
		SilenceUsage: true,
	}

	cfg        *config.Config
	configPath string
	logLevel   string
)

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	docsCmd.Flags().BoolVar(&checkDocs, "check", false, "Verify the generated docs are up to date without writing")
	docsCmd.Flags().StringVarP(&catalogPath, "db", "d", "", "Also save the extracted controls to this SQLite catalog")
	translationsCmd.Flags().StringVar(&localizationDir, "localization-dir", "", "Directory holding the localization JSON files")

	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(translationsCmd)
}

// loadConfig loads the configuration and initializes the logger from it.
func loadConfig() (*config.Config, error) {
	c, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if err := logger.Init(c.Log.Level, c.Log.Format); err != nil {
		return nil, err
	}
	return c, nil
}

var (
	checkDocs   bool
	catalogPath string
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate LLM-friendly documentation from the control sources",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := pipeline.Options{
			ControlsDir: cfg.Resolve(cfg.Docs.ControlsDir),
			OutputDir:   cfg.Resolve(cfg.Docs.OutputDir),
			ExtrasDir:   cfg.Resolve(cfg.Docs.ExtrasDir),
			Pattern:     cfg.Docs.Pattern,
			Extractor: extractor.Options{
				SummaryWindow:  cfg.Docs.SummaryWindow,
				PropertyWindow: cfg.Docs.PropertyWindow,
			},
			Generator: generator.Options{
				IndexDescriptionLimit: cfg.Docs.IndexDescriptionLimit,
				IndexPropertyLimit:    cfg.Docs.IndexPropertyLimit,
			},
			Categories:  cfg.Docs.Categories,
			CatalogPath: catalogPath,
			Check:       checkDocs,
		}

		_, err := pipeline.NewDocPipeline(opts, logger.L()).Run(context.Background())
		if errors.Is(err, pipeline.ErrStale) {
			fmt.Println("Run `flowerytools docs` to regenerate.")
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Documentation generation failed: %v", err)
		}
	},
}

var localizationDir string

var translationsCmd = &cobra.Command{
	Use:   "translations [lang]",
	Short: "Report keys missing from or extra in each localization file",
	Long: "Compares every localization file (or only [lang], e.g. \"de\") against the\n" +
		"reference file and lists missing and extra keys. Exits 1 when any differ.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lang := i18n.AllLanguages
		if len(args) > 0 {
			lang = strings.TrimSpace(args[0])
		}

		dir := cfg.Resolve(cfg.Translations.Dir)
		if localizationDir != "" {
			dir = localizationDir
		}

		report, err := i18n.NewChecker(dir, cfg.Translations.Reference, logger.L()).Run(lang)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		i18n.RenderReport(os.Stdout, report)
		if report.Failed() {
			os.Exit(1)
		}
	},
}
