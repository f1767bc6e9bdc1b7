// Package profession provides a coarse profession-category classifier.
// It is a categorical pre-filter: simple substring checks over the
// taxonomy are sufficient here, the fine-grained extractor runs later.
package profession

import (
	"strings"

	"github.com/abdulmukhitx/resume-matcher/internal/taxonomy"
	"github.com/abdulmukhitx/resume-matcher/internal/textnorm"
)

const (
	skillHitScore = 1
	titleHitScore = 2
)

// Classifier scores profession categories by skill and title keyword
// hits.
type Classifier struct {
	tax *taxonomy.Taxonomy
}

// New creates a Classifier over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Classifier {
	return &Classifier{tax: tax}
}

// Classify returns the best-scoring profession category for the resume
// text and job titles. Ties are broken by taxonomy declaration order;
// zero signal falls back to the default category. Never errors.
func (c *Classifier) Classify(resumeText string, jobTitles []string) string {
	text := textnorm.Normalize(resumeText)

	titles := make([]string, 0, len(jobTitles))
	for _, t := range jobTitles {
		titles = append(titles, textnorm.Normalize(t))
	}

	bestName := taxonomy.DefaultProfession
	bestScore := 0
	for _, p := range c.tax.Professions {
		s := c.scoreProfession(&p, text, titles)
		// Strict greater-than keeps declaration order on ties.
		if s > bestScore {
			bestScore = s
			bestName = p.Name
		}
	}
	return bestName
}

// scoreProfession sums substring skill hits and title-pattern hits for
// one category. A profession with no skills defined simply scores zero.
func (c *Classifier) scoreProfession(p *taxonomy.Profession, text string, titles []string) int {
	s := 0
	if text != "" {
		for _, sub := range p.Subcategories {
			for _, skill := range sub.Skills {
				if strings.Contains(text, strings.ToLower(skill)) {
					s += skillHitScore
				}
			}
		}
	}
	for _, title := range titles {
		for _, pattern := range p.TitlePatterns {
			if strings.Contains(title, pattern) {
				s += titleHitScore
			}
		}
	}
	return s
}
