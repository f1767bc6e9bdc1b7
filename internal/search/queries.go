// Package search generates ranked search queries for external
// job-board APIs, ordered by specificity: profession terms first, then
// the candidate's own titles, then top skills.
package search

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/abdulmukhitx/resume-matcher/internal/taxonomy"
)

const (
	maxTitleQueries = 3
	maxSkillQueries = 3
)

// Generate produces candidate search queries. The ingestion layer
// tries them in order until enough postings are retrieved.
func Generate(tax *taxonomy.Taxonomy, professionName string, jobTitles, skills []string) []string {
	var queries []string
	seen := mapset.NewThreadUnsafeSet[string]()
	add := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" {
			return
		}
		key := strings.ToLower(q)
		if seen.Contains(key) {
			return
		}
		seen.Add(key)
		queries = append(queries, q)
	}

	if p := tax.ProfessionByName(professionName); p != nil {
		for _, term := range p.SearchTerms {
			add(term)
		}
	}
	for i, title := range jobTitles {
		if i >= maxTitleQueries {
			break
		}
		add(title)
	}
	for i, skill := range skills {
		if i >= maxSkillQueries {
			break
		}
		add(skill + " developer")
	}
	return queries
}
