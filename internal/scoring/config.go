// Package scoring implements the multi-factor match scorer: core
// skills, tech-stack affinity, experience alignment, and
// specialization overlap, combined into a 0-100 match score with a
// structured explanation.
package scoring

// Config exposes every scoring weight and threshold as a named,
// overridable value so behavior is auditable and tunable without
// touching algorithm logic.
type Config struct {
	CoreSkillMax      float64 `json:"core_skill_max"`
	TechStackMax      float64 `json:"tech_stack_max"`
	ExperienceMax     float64 `json:"experience_max"`
	SpecializationMax float64 `json:"specialization_max"`

	// NoOverlapFloorPoints is the deliberately non-zero core-skill
	// score assigned when resume and job share no skills at all. It
	// represents baseline plausibility, not true zero relevance, and
	// is the single floor constant used on every code path.
	NoOverlapFloorPoints float64 `json:"no_overlap_floor_points"`

	// Breadth bonuses for high-value (language/framework) matches.
	HighValueBonusThree float64 `json:"high_value_bonus_three"`
	HighValueBonusTwo   float64 `json:"high_value_bonus_two"`

	// Tech-stack component.
	StackNameMatchPoints float64 `json:"stack_name_match_points"`
	StackCoveragePoints  float64 `json:"stack_coverage_points"`
	StackCoverageTrigger float64 `json:"stack_coverage_trigger"`
	StackBonusPerSkill   float64 `json:"stack_bonus_per_skill"`
	StackBonusCap        float64 `json:"stack_bonus_cap"`

	// Specialization component.
	SpecializationWordPoints float64 `json:"specialization_word_points"`
	SpecializationMinWordLen int     `json:"specialization_min_word_len"`

	// MissingSkillsLimit bounds the returned missing-skills list so it
	// stays useful for display.
	MissingSkillsLimit int `json:"missing_skills_limit"`

	// FreeTextMinMentions gates the lower-precision free-text branch
	// of missing-skill detection: an unknown token is only reported
	// when it occurs at least this many times in job text.
	FreeTextMinMentions int `json:"free_text_min_mentions"`
}

// DefaultConfig returns the reference scoring policy.
func DefaultConfig() Config {
	return Config{
		CoreSkillMax:             40,
		TechStackMax:             25,
		ExperienceMax:            20,
		SpecializationMax:        15,
		NoOverlapFloorPoints:     6,
		HighValueBonusThree:      5,
		HighValueBonusTwo:        3,
		StackNameMatchPoints:     15,
		StackCoveragePoints:      10,
		StackCoverageTrigger:     0.7,
		StackBonusPerSkill:       2,
		StackBonusCap:            10,
		SpecializationWordPoints: 3,
		SpecializationMinWordLen: 4,
		MissingSkillsLimit:       8,
		FreeTextMinMentions:      2,
	}
}

// experienceLadder maps how far the candidate sits below the job's
// required level onto a fraction of the experience component. Equal or
// above gets full credit; one level under is only lightly penalized so
// stretch applications are not discouraged, while bigger gaps are
// flagged hard.
func experienceFraction(levelGap int) float64 {
	switch {
	case levelGap >= 0:
		return 1.0
	case levelGap == -1:
		return 0.8
	case levelGap == -2:
		return 0.5
	default:
		return 0.2
	}
}
