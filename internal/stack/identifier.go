// Package stack matches extracted skills and job text against the
// taxonomy's tech-stack templates to identify specializations.
package stack

import (
	"strings"

	"github.com/abdulmukhitx/resume-matcher/internal/extraction"
	"github.com/abdulmukhitx/resume-matcher/internal/taxonomy"
	"github.com/abdulmukhitx/resume-matcher/internal/textnorm"
)

const (
	// DefaultCoverageThreshold is the fraction of a template's required
	// skills a resume must cover before the stack counts as identified.
	DefaultCoverageThreshold = 0.6

	// Job-side scoring weights.
	keywordHitScore  = 3
	requiredHitScore = 5
	bonusHitScore    = 2
	contextualBonus  = 2
	// DefaultJobMinScore is the minimum job-side score before a stack
	// guess is trusted; below it the job stays unclassified, because
	// false precision here would corrupt the specialization bonus in
	// the scorer.
	DefaultJobMinScore = 4
)

// GeneralStack is returned for job text with no confident stack signal.
const GeneralStack = "general"

// Identifier matches skills and text against stack templates.
type Identifier struct {
	tax               *taxonomy.Taxonomy
	extractor         *extraction.Extractor
	coverageThreshold float64
	jobMinScore       int
}

// New creates an Identifier with default thresholds.
func New(tax *taxonomy.Taxonomy, extractor *extraction.Extractor) *Identifier {
	return &Identifier{
		tax:               tax,
		extractor:         extractor,
		coverageThreshold: DefaultCoverageThreshold,
		jobMinScore:       DefaultJobMinScore,
	}
}

// Identify returns every stack whose required-skill coverage by the
// extracted set clears the threshold. Real resumes span stacks, so
// multiple results are expected.
func (i *Identifier) Identify(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s)] = true
	}

	var identified []string
	for _, tmpl := range i.tax.Stacks {
		if Coverage(&tmpl, have) >= i.coverageThreshold {
			identified = append(identified, tmpl.Name)
		}
	}
	return identified
}

// Coverage returns the fraction of the template's required skills
// present in the lowercased skill set.
func Coverage(tmpl *taxonomy.StackTemplate, have map[string]bool) float64 {
	if len(tmpl.RequiredSkills) == 0 {
		return 0
	}
	hit := 0
	for _, req := range tmpl.RequiredSkills {
		if have[strings.ToLower(req)] {
			hit++
		}
	}
	return float64(hit) / float64(len(tmpl.RequiredSkills))
}

// IdentifyForJob guesses which stack a job posting wants from its
// text. The highest-scoring template wins only if it clears the
// minimum confidence score; otherwise GeneralStack is returned.
func (i *Identifier) IdentifyForJob(jobText string) string {
	text := textnorm.Normalize(jobText)
	if text == "" {
		return GeneralStack
	}

	bestName := GeneralStack
	bestScore := 0
	for _, tmpl := range i.tax.Stacks {
		s := i.scoreJobStack(&tmpl, text)
		if s > bestScore {
			bestScore = s
			bestName = tmpl.Name
		}
	}
	if bestScore < i.jobMinScore {
		return GeneralStack
	}
	return bestName
}

// scoreJobStack sums keyword, required-skill and bonus-skill hits for
// one template against normalized job text.
func (i *Identifier) scoreJobStack(tmpl *taxonomy.StackTemplate, text string) int {
	s := 0
	for _, kw := range tmpl.Keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			s += keywordHitScore
		}
	}
	for _, req := range tmpl.RequiredSkills {
		if i.extractor.MentionedAsWord(text, req) {
			s += requiredHitScore
		}
	}
	for _, bonus := range tmpl.BonusSkills {
		if i.extractor.MentionedAsWord(text, bonus) {
			s += bonusHitScore
		}
	}
	// Contextual nudge: a generic role word near the template's first
	// required skill, e.g. "backend" together with "python".
	if s > 0 && len(tmpl.RequiredSkills) > 0 {
		for _, word := range []string{"backend", "frontend", "full stack", "devops", "mobile", "data"} {
			if strings.Contains(strings.ToLower(tmpl.Name), word) && strings.Contains(text, word) {
				s += contextualBonus
				break
			}
		}
	}
	return s
}
