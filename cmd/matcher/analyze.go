package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdulmukhitx/resume-matcher/internal/ingestion"
	"github.com/abdulmukhitx/resume-matcher/internal/observability"
)

var (
	analyzeResumePath string
	analyzeTitles     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume text file into a profile",
	Long:  "Extracts skills, profession, experience level and specialization from resume text and prints the profile as JSON.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "path to resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeTitles, "titles", "", "comma-separated past job titles")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func splitTitles(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	titles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			titles = append(titles, p)
		}
	}
	return titles
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	text, err := ingestion.ReadTextFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	profile := eng.AnalyzeResume(text, splitTitles(analyzeTitles))

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintProfile(profile)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}
