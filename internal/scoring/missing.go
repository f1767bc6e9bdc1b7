package scoring

import (
	"regexp"
	"sort"
	"strings"

	"github.com/abdulmukhitx/resume-matcher/internal/textnorm"
)

// freeTextMissRe captures technology tokens named after generic
// requirement phrases, to catch job-specific tools the taxonomy does
// not enumerate.
var freeTextMissRe = regexp.MustCompile(`(?:experience with|knowledge of|proficiency in)\s+([a-z0-9+#.][a-z0-9+#.\-]*)`)

// freeTextStopwords filters generic words the free-text branch would
// otherwise report as skills.
var freeTextStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "our": true, "their": true,
	"all": true, "any": true, "some": true, "both": true, "other": true,
	"modern": true, "various": true, "multiple": true, "relevant": true,
	"related": true, "similar": true, "strong": true, "good": true,
	"working": true, "building": true, "developing": true, "writing": true,
}

type missCandidate struct {
	name     string
	position int
}

// missingSkills scans the entire taxonomy (not just resume skills)
// against job text and reports detected skills the resume lacks, plus
// free-text "experience with <token>" technologies outside the
// taxonomy. The free-text branch has lower precision and is gated
// behind a minimum-mention threshold. Output is ordered by first
// occurrence, de-duplicated, and capped.
func (s *Scorer) missingSkills(jobText string, resumeSkills []string) []string {
	normalized := textnorm.Normalize(jobText)
	if normalized == "" {
		return nil
	}

	have := make(map[string]bool, len(resumeSkills))
	for _, sk := range resumeSkills {
		have[strings.ToLower(sk)] = true
	}

	var candidates []missCandidate
	seen := make(map[string]bool)

	for _, d := range s.extractor.Detect(jobText) {
		key := strings.ToLower(d.Skill)
		if have[key] || seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, missCandidate{name: d.Skill, position: d.Position})
	}

	for _, m := range freeTextMissRe.FindAllStringSubmatchIndex(normalized, -1) {
		token := normalized[m[2]:m[3]]
		token = strings.Trim(token, ".,;:")
		if len(token) < 2 || freeTextStopwords[token] || have[token] || seen[token] || s.knownSkills[token] {
			continue
		}
		if textnorm.WordBoundaryRule(token).CountMatches(normalized) < s.cfg.FreeTextMinMentions {
			continue
		}
		seen[token] = true
		candidates = append(candidates, missCandidate{name: token, position: m[2]})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].position < candidates[j].position
	})

	limit := s.cfg.MissingSkillsLimit
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	missing := make([]string, len(candidates))
	for i, c := range candidates {
		missing[i] = c.name
	}
	return missing
}
