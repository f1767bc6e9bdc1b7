// Package engine wires the matching components into one facade:
// resume analysis, single and batch job scoring, ranking, and search
// query generation. The engine holds only immutable state (the
// taxonomy and compiled rule sets), so all methods are safe for
// concurrent use.
package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/abdulmukhitx/resume-matcher/internal/experience"
	"github.com/abdulmukhitx/resume-matcher/internal/extraction"
	"github.com/abdulmukhitx/resume-matcher/internal/profession"
	"github.com/abdulmukhitx/resume-matcher/internal/ranking"
	"github.com/abdulmukhitx/resume-matcher/internal/scoring"
	"github.com/abdulmukhitx/resume-matcher/internal/search"
	"github.com/abdulmukhitx/resume-matcher/internal/stack"
	"github.com/abdulmukhitx/resume-matcher/internal/taxonomy"
	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

// Engine is the matching facade. Construct once, share freely.
type Engine struct {
	tax        *taxonomy.Taxonomy
	extractor  *extraction.Extractor
	classifier *profession.Classifier
	stacks     *stack.Identifier
	scorer     *scoring.Scorer
	rankOpts   ranking.Options
}

// New builds an Engine over the taxonomy with default policies.
// Fails only on a malformed taxonomy.
func New(tax *taxonomy.Taxonomy) (*Engine, error) {
	return NewWithConfig(tax, scoring.DefaultConfig(), ranking.DefaultOptions())
}

// NewWithConfig builds an Engine with custom scoring and ranking
// policies.
func NewWithConfig(tax *taxonomy.Taxonomy, scoringCfg scoring.Config, rankOpts ranking.Options) (*Engine, error) {
	if err := tax.Validate(); err != nil {
		return nil, err
	}
	extractor := extraction.New(tax)
	stacks := stack.New(tax, extractor)
	return &Engine{
		tax:        tax,
		extractor:  extractor,
		classifier: profession.New(tax),
		stacks:     stacks,
		scorer:     scoring.NewWithConfig(tax, extractor, stacks, scoringCfg),
		rankOpts:   rankOpts,
	}, nil
}

// Taxonomy returns the catalog the engine was built over.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// AnalyzeResume derives a ResumeProfile from extracted resume text and
// the candidate's past job titles. Each call recomputes from scratch;
// the new profile supersedes any previous one for the same resume.
func (e *Engine) AnalyzeResume(resumeText string, jobTitles []string) *types.ResumeProfile {
	detections := e.extractor.Detect(resumeText)

	skills := make([]string, 0, len(detections))
	byCategory := make(map[string][]string)
	var scoreSum float64
	for _, d := range detections {
		skills = append(skills, d.Skill)
		byCategory[d.Subcategory] = append(byCategory[d.Subcategory], d.Skill)
		scoreSum += d.Score
	}

	exp := experience.Analyze(resumeText)

	specialization := ""
	if identified := e.stacks.Identify(skills); len(identified) > 0 {
		specialization = identified[0]
	}

	return &types.ResumeProfile{
		Skills:            skills,
		SkillsByCategory:  byCategory,
		Profession:        e.classifier.Classify(resumeText, jobTitles),
		Level:             exp.Level,
		YearsOfExperience: exp.Years,
		Specialization:    specialization,
		Confidence:        profileConfidence(detections, scoreSum, exp.Confidence),
	}
}

// profileConfidence blends average extraction confidence with the
// experience confidence. Both inputs are already bounded to [0,1].
func profileConfidence(detections []extraction.Detection, scoreSum, expConfidence float64) float64 {
	if len(detections) == 0 {
		return expConfidence / 2
	}
	extractionConfidence := scoreSum / float64(len(detections))
	return (extractionConfidence + expConfidence) / 2
}

// MatchJob scores one resume profile against one job posting.
func (e *Engine) MatchJob(profile *types.ResumeProfile, job *types.JobPosting) *types.MatchResult {
	return e.scorer.Score(profile, job)
}

// MatchJobs scores the profile against every posting in parallel and
// returns the ranked list. Scoring is deterministic and
// order-independent, so parallelism cannot change the output; ties
// keep input order. Cancelling the context abandons unscored jobs.
func (e *Engine) MatchJobs(ctx context.Context, profile *types.ResumeProfile, jobs []types.JobPosting) ([]*types.MatchResult, error) {
	results := make([]*types.MatchResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.scorer.Score(profile, &jobs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ranking.Rank(results, e.rankOpts), nil
}

// SearchQueries produces ranked job-board queries for the profile.
func (e *Engine) SearchQueries(profile *types.ResumeProfile, jobTitles []string) []string {
	return search.Generate(e.tax, profile.Profession, jobTitles, profile.Skills)
}
