// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdulmukhitx/resume-matcher/internal/ranking"
	"github.com/abdulmukhitx/resume-matcher/internal/scoring"
)

// Config represents the matcher configuration that can be loaded from
// a JSON file. All fields are optional; missing values use defaults.
type Config struct {
	// Paths
	TaxonomyFile string `json:"taxonomy_file,omitempty"` // Override the built-in skill taxonomy
	Resume       string `json:"resume,omitempty"`        // Path to resume text file
	Jobs         string `json:"jobs,omitempty"`          // Path to job postings JSON file

	// Ranking
	MinMatchScore float64 `json:"min_match_score,omitempty"` // Floor below which matches are dropped
	TopN          int     `json:"top_n,omitempty"`           // Maximum matches to return (0 = all)

	// Scoring overrides; zero values fall back to scoring defaults.
	Scoring scoring.Config `json:"scoring,omitempty"`

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed breakdowns
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL cache (optional)
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Headless browser fallback when fetching postings
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		MinMatchScore: ranking.DefaultMinScore,
		Scoring:       scoring.DefaultConfig(),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MinMatchScore < 0 || c.MinMatchScore > 100 {
		return fmt.Errorf("config error: 'min_match_score' must be within [0,100]")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.TaxonomyFile != "" {
		if _, err := os.Stat(c.TaxonomyFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyFile)
		}
	}
	return nil
}

// ScoringConfig returns the scoring policy with zero-valued overrides
// replaced by defaults, so a partial "scoring" block in the JSON file
// tunes only what it names.
func (c *Config) ScoringConfig() scoring.Config {
	def := scoring.DefaultConfig()
	out := c.Scoring
	if out.CoreSkillMax == 0 {
		out.CoreSkillMax = def.CoreSkillMax
	}
	if out.TechStackMax == 0 {
		out.TechStackMax = def.TechStackMax
	}
	if out.ExperienceMax == 0 {
		out.ExperienceMax = def.ExperienceMax
	}
	if out.SpecializationMax == 0 {
		out.SpecializationMax = def.SpecializationMax
	}
	if out.NoOverlapFloorPoints == 0 {
		out.NoOverlapFloorPoints = def.NoOverlapFloorPoints
	}
	if out.HighValueBonusThree == 0 {
		out.HighValueBonusThree = def.HighValueBonusThree
	}
	if out.HighValueBonusTwo == 0 {
		out.HighValueBonusTwo = def.HighValueBonusTwo
	}
	if out.StackNameMatchPoints == 0 {
		out.StackNameMatchPoints = def.StackNameMatchPoints
	}
	if out.StackCoveragePoints == 0 {
		out.StackCoveragePoints = def.StackCoveragePoints
	}
	if out.StackCoverageTrigger == 0 {
		out.StackCoverageTrigger = def.StackCoverageTrigger
	}
	if out.StackBonusPerSkill == 0 {
		out.StackBonusPerSkill = def.StackBonusPerSkill
	}
	if out.StackBonusCap == 0 {
		out.StackBonusCap = def.StackBonusCap
	}
	if out.SpecializationWordPoints == 0 {
		out.SpecializationWordPoints = def.SpecializationWordPoints
	}
	if out.SpecializationMinWordLen == 0 {
		out.SpecializationMinWordLen = def.SpecializationMinWordLen
	}
	if out.MissingSkillsLimit == 0 {
		out.MissingSkillsLimit = def.MissingSkillsLimit
	}
	if out.FreeTextMinMentions == 0 {
		out.FreeTextMinMentions = def.FreeTextMinMentions
	}
	return out
}

// RankingOptions returns the ranking policy derived from the config.
func (c *Config) RankingOptions() ranking.Options {
	opts := ranking.DefaultOptions()
	if c.MinMatchScore > 0 {
		opts.MinScore = c.MinMatchScore
	}
	if c.TopN > 0 {
		opts.TopN = c.TopN
	}
	return opts
}
