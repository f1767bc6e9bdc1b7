package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abdulmukhitx/resume-matcher/internal/db"
	"github.com/abdulmukhitx/resume-matcher/internal/fetch"
	"github.com/abdulmukhitx/resume-matcher/internal/ingestion"
	"github.com/abdulmukhitx/resume-matcher/internal/observability"
	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

var (
	matchResumePath string
	matchJobsPath   string
	matchJobURLs    []string
	matchTitles     string
	matchResumeID   string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against job postings",
	Long:  "Scores the resume against each posting (from a JSON file and/or fetched URLs) and prints the ranked matches as JSON.",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchResumePath, "resume", "", "path to resume text file (required)")
	matchCmd.Flags().StringVar(&matchJobsPath, "jobs", "", "path to JSON file with an array of job postings")
	matchCmd.Flags().StringArrayVar(&matchJobURLs, "url", nil, "job posting URL to fetch (repeatable)")
	matchCmd.Flags().StringVar(&matchTitles, "titles", "", "comma-separated past job titles")
	matchCmd.Flags().StringVar(&matchResumeID, "resume-id", "", "resume UUID for result caching (requires DATABASE_URL)")
	_ = matchCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(matchCmd)
}

// loadJobs reads postings from the JSON file and fetches any URLs.
func loadJobs(ctx context.Context, useBrowser bool) ([]types.JobPosting, error) {
	var jobs []types.JobPosting

	if matchJobsPath != "" {
		data, err := os.ReadFile(matchJobsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read jobs file: %w", err)
		}
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, fmt.Errorf("failed to parse jobs JSON: %w", err)
		}
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = useBrowser
	for _, u := range matchJobURLs {
		result, err := fetch.Posting(ctx, u, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", u, err)
			continue
		}
		jobs = append(jobs, types.JobPosting{
			Title:       postingTitle(result),
			Description: result.Text,
			URL:         result.URL,
		})
	}

	for i := range jobs {
		if jobs[i].ID == uuid.Nil {
			jobs[i].ID = uuid.New()
		}
		if err := jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid job posting %d: %w", i, err)
		}
	}
	return jobs, nil
}

// postingTitle uses the first line of the extracted text as the job
// title, falling back to the URL for pages with no usable text.
func postingTitle(result *fetch.Result) string {
	for _, line := range strings.Split(result.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			if len(line) > 120 {
				line = line[:120]
			}
			return line
		}
	}
	return result.URL
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	text, err := ingestion.ReadTextFile(matchResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobs, err := loadJobs(ctx, cfg.UseBrowser)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no job postings given; use --jobs or --url")
	}

	profile := eng.AnalyzeResume(text, splitTitles(matchTitles))
	ranked, err := eng.MatchJobs(ctx, profile, jobs)
	if err != nil {
		return err
	}

	if err := cacheResults(ctx, cfg.DatabaseURL, eng.Taxonomy().Version, profile, ranked); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: caching failed: %v\n", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(profile)
		printer.PrintMatches(ranked)
	}

	out := make([]map[string]any, len(ranked))
	for i, r := range ranked {
		out[i] = r.ToMap()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// cacheResults persists the profile and ranked matches when a database
// and resume ID are configured. Caching is best-effort; the match run
// succeeds without it.
func cacheResults(ctx context.Context, databaseURL, taxonomyVersion string, profile *types.ResumeProfile, results []*types.MatchResult) error {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" || matchResumeID == "" {
		return nil
	}
	resumeID, err := uuid.Parse(matchResumeID)
	if err != nil {
		return fmt.Errorf("invalid --resume-id: %w", err)
	}

	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	profile.ResumeID = resumeID
	if err := store.SaveProfile(ctx, resumeID, taxonomyVersion, profile); err != nil {
		return err
	}
	for _, r := range results {
		if err := store.SaveMatch(ctx, resumeID, r.JobID, taxonomyVersion, r); err != nil {
			return err
		}
	}
	return nil
}
