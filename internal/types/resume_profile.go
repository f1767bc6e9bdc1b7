// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// ResumeProfile represents the derived analysis of one resume. It is
// recomputed from raw text on every analysis run and supersedes any
// previous profile for the same resume.
type ResumeProfile struct {
	ResumeID          uuid.UUID           `json:"resume_id,omitempty"`
	Skills            []string            `json:"skills"`
	SkillsByCategory  map[string][]string `json:"skills_by_category"`
	Profession        string              `json:"profession"`
	Level             Level               `json:"experience_level"`
	YearsOfExperience int                 `json:"years_of_experience"`
	Specialization    string              `json:"specialization,omitempty"`
	Confidence        float64             `json:"confidence"` // 0-1
}

// HasSkill reports whether the profile contains the given skill
// (case-insensitive comparison is the caller's responsibility; profiles
// store canonical taxonomy names).
func (p *ResumeProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
