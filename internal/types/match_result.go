package types

import "github.com/google/uuid"

// Breakdown holds the per-component sub-scores of a match, each on its
// own 0-100 scale.
type Breakdown struct {
	CoreSkills     float64 `json:"core_skills"`
	TechStack      float64 `json:"tech_stack"`
	Experience     float64 `json:"experience"`
	Specialization float64 `json:"specialization"`
}

// MatchResult is the engine output for one resume x job pair.
type MatchResult struct {
	JobID               uuid.UUID `json:"job_id,omitempty"`
	JobTitle            string    `json:"job_title"`
	Company             string    `json:"company,omitempty"`
	MatchScore          float64   `json:"match_score"` // 0-100
	MatchingSkills      []string  `json:"matching_skills"`
	MissingSkills       []string  `json:"missing_skills"`
	Breakdown           Breakdown `json:"breakdown"`
	ExperienceMatch     bool      `json:"experience_match"`
	SpecializationMatch bool      `json:"specialization_match"`
	Notes               string    `json:"notes,omitempty"`
}

// ToMap flattens the result into a map of primitive values for
// persistence or JSON transport by external collaborators.
func (m *MatchResult) ToMap() map[string]any {
	out := map[string]any{
		"job_title":            m.JobTitle,
		"company":              m.Company,
		"match_score":          m.MatchScore,
		"matching_skills":      append([]string(nil), m.MatchingSkills...),
		"missing_skills":       append([]string(nil), m.MissingSkills...),
		"experience_match":     m.ExperienceMatch,
		"specialization_match": m.SpecializationMatch,
		"breakdown": map[string]any{
			"core_skills":    m.Breakdown.CoreSkills,
			"tech_stack":     m.Breakdown.TechStack,
			"experience":     m.Breakdown.Experience,
			"specialization": m.Breakdown.Specialization,
		},
	}
	if m.JobID != uuid.Nil {
		out["job_id"] = m.JobID.String()
	}
	if m.Notes != "" {
		out["notes"] = m.Notes
	}
	return out
}
