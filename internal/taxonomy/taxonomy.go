// Package taxonomy provides the versioned, immutable skill catalog the
// matching engine is built around: profession categories, their skill
// subcategories, job-title patterns, search terms, and tech-stack
// templates. The taxonomy is constructed once at startup and passed
// explicitly into every component; nothing mutates it afterwards.
package taxonomy

import (
	"fmt"
	"strings"
)

// Subcategory groups canonical skill names under a profession.
type Subcategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Profession is a top-level domain bucket. Declaration order matters:
// classifier ties are broken by it.
type Profession struct {
	Name          string        `json:"name"`
	SearchTerms   []string      `json:"search_terms"`
	TitlePatterns []string      `json:"title_patterns"`
	Subcategories []Subcategory `json:"subcategories"`
}

// StackTemplate describes a named cluster of co-occurring skills, such
// as "Python Backend". Keywords are phrases that signal the stack in
// job text; required skills define coverage; bonus skills add weight.
type StackTemplate struct {
	Name           string   `json:"name"`
	Profession     string   `json:"profession"`
	Keywords       []string `json:"keywords"`
	RequiredSkills []string `json:"required_skills"`
	BonusSkills    []string `json:"bonus_skills"`
}

// Entry is one skill with its position in the catalog, in declared order.
type Entry struct {
	Skill       string
	Profession  string
	Subcategory string
}

// Taxonomy is the full catalog. Treat as read-only after construction.
type Taxonomy struct {
	Version     string          `json:"version"`
	Professions []Profession    `json:"professions"`
	Stacks      []StackTemplate `json:"stacks"`
}

// ProfessionNames returns profession names in declared order.
func (t *Taxonomy) ProfessionNames() []string {
	names := make([]string, len(t.Professions))
	for i, p := range t.Professions {
		names[i] = p.Name
	}
	return names
}

// ProfessionByName returns the profession with the given name, or nil.
func (t *Taxonomy) ProfessionByName(name string) *Profession {
	for i := range t.Professions {
		if t.Professions[i].Name == name {
			return &t.Professions[i]
		}
	}
	return nil
}

// Entries returns every (skill, profession, subcategory) triple in
// declared order. The same skill may appear under several professions;
// callers that need one subcategory per skill take the first.
func (t *Taxonomy) Entries() []Entry {
	var entries []Entry
	for _, p := range t.Professions {
		for _, sub := range p.Subcategories {
			for _, skill := range sub.Skills {
				entries = append(entries, Entry{Skill: skill, Profession: p.Name, Subcategory: sub.Name})
			}
		}
	}
	return entries
}

// SubcategoryOf returns the first declared subcategory containing the
// skill (case-insensitive), or empty string if the skill is unknown.
func (t *Taxonomy) SubcategoryOf(skill string) string {
	lower := strings.ToLower(skill)
	for _, e := range t.Entries() {
		if strings.ToLower(e.Skill) == lower {
			return e.Subcategory
		}
	}
	return ""
}

// StackByName returns the stack template with the given name, or nil.
func (t *Taxonomy) StackByName(name string) *StackTemplate {
	for i := range t.Stacks {
		if strings.EqualFold(t.Stacks[i].Name, name) {
			return &t.Stacks[i]
		}
	}
	return nil
}

// Validate checks structural soundness. A malformed taxonomy is a
// programmer error and the only condition under which engine
// construction fails.
func (t *Taxonomy) Validate() error {
	if t.Version == "" {
		return &InvalidTaxonomyError{Message: "missing version"}
	}
	if len(t.Professions) == 0 {
		return &InvalidTaxonomyError{Message: "no professions defined"}
	}
	seen := make(map[string]bool)
	for _, p := range t.Professions {
		if p.Name == "" {
			return &InvalidTaxonomyError{Message: "profession with empty name"}
		}
		if seen[p.Name] {
			return &InvalidTaxonomyError{Message: fmt.Sprintf("duplicate profession %q", p.Name)}
		}
		seen[p.Name] = true
		for _, sub := range p.Subcategories {
			if sub.Name == "" {
				return &InvalidTaxonomyError{Message: fmt.Sprintf("profession %q has a subcategory with empty name", p.Name)}
			}
		}
	}
	for _, s := range t.Stacks {
		if s.Name == "" {
			return &InvalidTaxonomyError{Message: "stack template with empty name"}
		}
		if len(s.RequiredSkills) == 0 {
			return &InvalidTaxonomyError{Message: fmt.Sprintf("stack %q has no required skills", s.Name)}
		}
	}
	return nil
}
