package scoring

import (
	"fmt"
	"strings"

	"github.com/abdulmukhitx/resume-matcher/internal/experience"
	"github.com/abdulmukhitx/resume-matcher/internal/extraction"
	"github.com/abdulmukhitx/resume-matcher/internal/stack"
	"github.com/abdulmukhitx/resume-matcher/internal/taxonomy"
	"github.com/abdulmukhitx/resume-matcher/internal/textnorm"
	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

// skillWeights maps taxonomy subcategories to per-hit core-skill
// points. Subcategories not listed score the base weight.
var skillWeights = map[string]float64{
	taxonomy.SubLanguages:  5.0,
	taxonomy.SubFrameworks: 4.5,
	taxonomy.SubDatabases:  4.0,
	taxonomy.SubCloud:      4.0,
	taxonomy.SubTools:      2.5,
}

const baseSkillWeight = 2.0

// highValueSubcategories are the subcategories whose matches count
// toward the breadth bonus.
var highValueSubcategories = map[string]bool{
	taxonomy.SubLanguages:  true,
	taxonomy.SubFrameworks: true,
}

// Scorer computes MatchResults. It is a pure function of its inputs:
// no I/O, no randomness, no mutable state, so concurrent calls for
// different (resume, job) pairs are safe.
type Scorer struct {
	tax         *taxonomy.Taxonomy
	extractor   *extraction.Extractor
	stacks      *stack.Identifier
	cfg         Config
	knownSkills map[string]bool // lowercased taxonomy skills
}

// New creates a Scorer with the default scoring policy.
func New(tax *taxonomy.Taxonomy, extractor *extraction.Extractor, stacks *stack.Identifier) *Scorer {
	return NewWithConfig(tax, extractor, stacks, DefaultConfig())
}

// NewWithConfig creates a Scorer with a custom policy.
func NewWithConfig(tax *taxonomy.Taxonomy, extractor *extraction.Extractor, stacks *stack.Identifier, cfg Config) *Scorer {
	known := make(map[string]bool)
	for _, e := range tax.Entries() {
		known[strings.ToLower(e.Skill)] = true
	}
	return &Scorer{tax: tax, extractor: extractor, stacks: stacks, cfg: cfg, knownSkills: known}
}

// Score computes the match between one resume profile and one job
// posting. A posting with empty text is scoreable: skill and stack
// components fall to their floors instead of erroring.
func (s *Scorer) Score(profile *types.ResumeProfile, job *types.JobPosting) *types.MatchResult {
	jobText := job.CombinedText()

	coreScore, matched := s.coreSkillScore(profile.Skills, jobText)
	stackScore, stackNameMatched := s.techStackScore(profile, jobText)
	requiredLevel := experience.RequiredLevel(jobText)
	levelGap := profile.Level.Ordinal() - requiredLevel.Ordinal()
	expScore := experienceFraction(levelGap) * s.cfg.ExperienceMax
	specScore := s.specializationScore(profile.Specialization, jobText)

	total := coreScore + stackScore + expScore + specScore
	maxTotal := s.cfg.CoreSkillMax + s.cfg.TechStackMax + s.cfg.ExperienceMax + s.cfg.SpecializationMax
	matchScore := clamp(total/maxTotal*100, 0, 100)

	result := &types.MatchResult{
		JobID:          job.ID,
		JobTitle:       job.Title,
		Company:        job.Company,
		MatchScore:     matchScore,
		MatchingSkills: matched,
		MissingSkills:  s.missingSkills(jobText, profile.Skills),
		Breakdown: types.Breakdown{
			CoreSkills:     clamp(coreScore/s.cfg.CoreSkillMax*100, 0, 100),
			TechStack:      clamp(stackScore/s.cfg.TechStackMax*100, 0, 100),
			Experience:     clamp(expScore/s.cfg.ExperienceMax*100, 0, 100),
			Specialization: clamp(specScore/s.cfg.SpecializationMax*100, 0, 100),
		},
		ExperienceMatch:     levelGap >= 0,
		SpecializationMatch: stackNameMatched || specScore > 0,
	}
	result.Notes = s.notes(result)
	return result
}

// coreSkillScore searches job text for each resume skill with the same
// multi-pattern detection the extractor applies to resumes. Returns
// the component score and the matched skills in resume order.
func (s *Scorer) coreSkillScore(resumeSkills []string, jobText string) (float64, []string) {
	if strings.TrimSpace(jobText) == "" || len(resumeSkills) == 0 {
		return s.cfg.NoOverlapFloorPoints, nil
	}

	raw := 0.0
	highValue := 0
	matched := make([]string, 0, len(resumeSkills))
	for _, skill := range resumeSkills {
		if !s.extractor.Contains(jobText, skill) {
			continue
		}
		matched = append(matched, skill)
		sub := s.tax.SubcategoryOf(skill)
		if w, ok := skillWeights[sub]; ok {
			raw += w
		} else {
			raw += baseSkillWeight
		}
		if highValueSubcategories[sub] {
			highValue++
		}
	}

	if len(matched) == 0 {
		return s.cfg.NoOverlapFloorPoints, nil
	}

	switch {
	case highValue >= 3:
		raw += s.cfg.HighValueBonusThree
	case highValue == 2:
		raw += s.cfg.HighValueBonusTwo
	}
	return clamp(raw, 0, s.cfg.CoreSkillMax), matched
}

// techStackScore combines the job's identified stack with the resume's
// specialization and template coverage. Returns the component score
// and whether the specialization name itself matched.
func (s *Scorer) techStackScore(profile *types.ResumeProfile, jobText string) (float64, bool) {
	if strings.TrimSpace(jobText) == "" {
		return 0, false
	}

	jobStack := s.stacks.IdentifyForJob(jobText)
	score := 0.0
	nameMatched := false

	if jobStack != stack.GeneralStack && profile.Specialization != "" {
		spec := strings.ToLower(profile.Specialization)
		js := strings.ToLower(jobStack)
		if strings.Contains(spec, js) || strings.Contains(js, spec) {
			score += s.cfg.StackNameMatchPoints
			nameMatched = true
		}
	}

	if tmpl := s.tax.StackByName(jobStack); tmpl != nil {
		have := make(map[string]bool, len(profile.Skills))
		for _, sk := range profile.Skills {
			have[strings.ToLower(sk)] = true
		}
		if stack.Coverage(tmpl, have) >= s.cfg.StackCoverageTrigger {
			score += s.cfg.StackCoveragePoints
		}
		bonus := 0.0
		for _, b := range tmpl.BonusSkills {
			if have[strings.ToLower(b)] {
				bonus += s.cfg.StackBonusPerSkill
			}
		}
		if bonus > s.cfg.StackBonusCap {
			bonus = s.cfg.StackBonusCap
		}
		score += bonus
	}

	return clamp(score, 0, s.cfg.TechStackMax), nameMatched
}

// specializationScore awards points per distinct meaningful word of
// the resume's specialization string found in job text.
func (s *Scorer) specializationScore(specialization, jobText string) float64 {
	if specialization == "" || strings.TrimSpace(jobText) == "" {
		return 0
	}
	score := 0.0
	seen := make(map[string]bool)
	for _, word := range textnorm.Tokenize(specialization) {
		if len(word) < s.cfg.SpecializationMinWordLen || seen[word] {
			continue
		}
		seen[word] = true
		if s.extractor.MentionedAsWord(jobText, word) {
			score += s.cfg.SpecializationWordPoints
		}
	}
	return clamp(score, 0, s.cfg.SpecializationMax)
}

// notes builds the human-readable explanation, in the spirit of the
// per-component breakdown but compact enough for list display.
func (s *Scorer) notes(r *types.MatchResult) string {
	var parts []string
	switch {
	case len(r.MatchingSkills) >= 4:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(r.MatchingSkills, ", ")))
	case len(r.MatchingSkills) > 0:
		parts = append(parts, fmt.Sprintf("Skill match (%s)", strings.Join(r.MatchingSkills, ", ")))
	default:
		parts = append(parts, "No direct skill matches")
	}
	if r.SpecializationMatch {
		parts = append(parts, "Specialization aligns")
	}
	if r.ExperienceMatch {
		parts = append(parts, "Experience level meets requirement")
	} else {
		parts = append(parts, "Below required experience level")
	}
	if len(r.MissingSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Missing: %s", strings.Join(r.MissingSkills, ", ")))
	}
	return strings.Join(parts, ". ")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
