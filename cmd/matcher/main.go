// Package main provides the resume-matcher CLI: resume analysis, job
// matching, and search-query generation around the matching engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abdulmukhitx/resume-matcher/internal/config"
	"github.com/abdulmukhitx/resume-matcher/internal/engine"
	"github.com/abdulmukhitx/resume-matcher/internal/taxonomy"
)

var rootCmd = &cobra.Command{
	Use:   "matcher",
	Short: "Resume-to-job matching engine",
	Long:  "matcher analyzes resume text against job postings and produces ranked, explainable matches: a score, matched skills, and missing skills.",
}

var (
	flagConfig   string
	flagTaxonomy string
	flagVerbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagTaxonomy, "taxonomy", "", "path to taxonomy override JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print human-readable output to stderr")
}

// loadConfig merges the config file (if any) with defaults.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flagTaxonomy != "" {
		cfg.TaxonomyFile = flagTaxonomy
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine constructs the engine from config: built-in taxonomy or
// a validated override file.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	tax := taxonomy.Default()
	if cfg.TaxonomyFile != "" {
		loaded, err := taxonomy.LoadFile(cfg.TaxonomyFile)
		if err != nil {
			return nil, err
		}
		tax = loaded
	}
	return engine.NewWithConfig(tax, cfg.ScoringConfig(), cfg.RankingOptions())
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
