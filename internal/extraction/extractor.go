// Package extraction detects taxonomy skills in free text using the
// contextual regex rules from textnorm, with a per-skill confidence
// score and a tunable acceptance threshold.
package extraction

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/abdulmukhitx/resume-matcher/internal/taxonomy"
	"github.com/abdulmukhitx/resume-matcher/internal/textnorm"
)

const (
	// DefaultAcceptThreshold is the minimum context score a candidate
	// hit needs before it is accepted as a real skill mention.
	DefaultAcceptThreshold = 0.4

	// ruleTypeScore is awarded per distinct rule type that matched.
	ruleTypeScore = 0.3
	// mentionBonusStep is awarded per literal mention beyond the first.
	mentionBonusStep = 0.1
	// mentionBonusCap bounds the repeated-mention bonus.
	mentionBonusCap = 0.5
	// contextBonus is added when the contextual-phrase rule fired.
	contextBonus = 0.2
	// maxScore bounds the total per-skill context score.
	maxScore = 1.0
)

// Detection is one accepted skill hit.
type Detection struct {
	Skill       string
	Profession  string
	Subcategory string
	Score       float64
	Position    int // byte offset of the first mention in normalized text
}

// compiledSkill pairs a taxonomy entry with its precompiled rule set.
type compiledSkill struct {
	entry taxonomy.Entry
	rules []textnorm.Rule
}

// Extractor detects taxonomy skills in text. Construction compiles one
// rule set per catalog entry; the extractor is immutable and safe for
// concurrent use afterwards.
type Extractor struct {
	skills    []compiledSkill
	byName    map[string][]textnorm.Rule // lowercased skill -> rules
	threshold float64
}

// New builds an Extractor over the whole taxonomy with the default
// acceptance threshold.
func New(tax *taxonomy.Taxonomy) *Extractor {
	return NewWithThreshold(tax, DefaultAcceptThreshold)
}

// NewWithThreshold builds an Extractor with a custom threshold.
func NewWithThreshold(tax *taxonomy.Taxonomy, threshold float64) *Extractor {
	e := &Extractor{
		threshold: threshold,
		byName:    make(map[string][]textnorm.Rule),
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, entry := range tax.Entries() {
		key := textnorm.Normalize(entry.Skill)
		rules, compiledBefore := e.byName[key]
		if !compiledBefore {
			rules = textnorm.RulesFor(entry.Skill)
			e.byName[key] = rules
		}
		// The same skill may legitimately appear under several
		// professions; compile once, detect once.
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		e.skills = append(e.skills, compiledSkill{entry: entry, rules: rules})
	}
	return e
}

// score computes the context score for one skill against normalized
// text. Returns the score and the first-mention position (-1 if none).
func score(rules []textnorm.Rule, text string) (float64, int) {
	typesMatched := 0
	contextMatched := false
	mentions := 0
	position := -1

	for _, rule := range rules {
		if !rule.Match(text) {
			continue
		}
		typesMatched++
		if rule.Name == textnorm.RuleContext {
			contextMatched = true
		}
		if rule.Name == textnorm.RuleWordBoundary {
			mentions = rule.CountMatches(text)
			position = rule.FirstIndex(text)
		}
		if position < 0 {
			if idx := rule.FirstIndex(text); idx >= 0 {
				position = idx
			}
		}
	}
	if typesMatched == 0 {
		return 0, -1
	}

	s := ruleTypeScore * float64(typesMatched)
	if mentions > 1 {
		bonus := mentionBonusStep * float64(mentions-1)
		if bonus > mentionBonusCap {
			bonus = mentionBonusCap
		}
		s += bonus
	}
	if contextMatched {
		s += contextBonus
	}
	if s > maxScore {
		s = maxScore
	}
	return s, position
}

// Detect returns all accepted skill hits in the text, ordered by first
// occurrence. Empty text yields an empty slice, never an error.
func (e *Extractor) Detect(text string) []Detection {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return nil
	}

	var detections []Detection
	for _, cs := range e.skills {
		s, pos := score(cs.rules, normalized)
		if s < e.threshold {
			continue
		}
		detections = append(detections, Detection{
			Skill:       cs.entry.Skill,
			Profession:  cs.entry.Profession,
			Subcategory: cs.entry.Subcategory,
			Score:       s,
			Position:    pos,
		})
	}
	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Position < detections[j].Position
	})
	return detections
}

// Extract returns accepted skills grouped by taxonomy subcategory. The
// flattened output never contains the same skill twice.
func (e *Extractor) Extract(text string) map[string][]string {
	grouped := make(map[string][]string)
	for _, d := range e.Detect(text) {
		grouped[d.Subcategory] = append(grouped[d.Subcategory], d.Skill)
	}
	return grouped
}

// Contains reports whether the given skill is detected in the text
// with sufficient context. Unknown skills compile an ad-hoc rule set.
func (e *Extractor) Contains(text, skill string) bool {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return false
	}
	rules, ok := e.byName[textnorm.Normalize(skill)]
	if !ok {
		rules = textnorm.RulesFor(skill)
	}
	s, _ := score(rules, normalized)
	return s >= e.threshold
}

// MentionedAsWord reports a plain word-boundary occurrence of the
// skill, without the context-score gate. Used where a coarse presence
// check is wanted (stack templates, specialization words).
func (e *Extractor) MentionedAsWord(text, skill string) bool {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return false
	}
	rules, ok := e.byName[textnorm.Normalize(skill)]
	if !ok {
		rules = textnorm.RulesFor(skill)
	}
	for _, rule := range rules {
		if rule.Name == textnorm.RuleWordBoundary {
			return rule.Match(normalized)
		}
	}
	return false
}
