package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdulmukhitx/resume-matcher/internal/ingestion"
	"github.com/abdulmukhitx/resume-matcher/internal/observability"
)

var (
	queriesResumePath string
	queriesTitles     string
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Generate job-board search queries for a resume",
	Long:  "Analyzes the resume and prints search queries ordered by specificity, for use against an external job-search API.",
	RunE:  runQueries,
}

func init() {
	queriesCmd.Flags().StringVar(&queriesResumePath, "resume", "", "path to resume text file (required)")
	queriesCmd.Flags().StringVar(&queriesTitles, "titles", "", "comma-separated past job titles")
	_ = queriesCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(queriesCmd)
}

func runQueries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	text, err := ingestion.ReadTextFile(queriesResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	titles := splitTitles(queriesTitles)
	profile := eng.AnalyzeResume(text, titles)
	queries := eng.SearchQueries(profile, titles)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintQueries(queries)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(queries)
}
