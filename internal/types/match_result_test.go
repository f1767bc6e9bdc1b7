package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResultToMap(t *testing.T) {
	id := uuid.New()
	result := &MatchResult{
		JobID:          id,
		JobTitle:       "Backend Developer",
		Company:        "Acme",
		MatchScore:     74,
		MatchingSkills: []string{"Python", "Django"},
		MissingSkills:  []string{"Redis"},
		Breakdown: Breakdown{
			CoreSkills: 57.5, TechStack: 100, Experience: 100, Specialization: 40,
		},
		ExperienceMatch:     true,
		SpecializationMatch: true,
		Notes:               "Skill match (Python, Django)",
	}

	m := result.ToMap()
	assert.Equal(t, id.String(), m["job_id"])
	assert.Equal(t, "Backend Developer", m["job_title"])
	assert.Equal(t, 74.0, m["match_score"])
	assert.Equal(t, []string{"Python", "Django"}, m["matching_skills"])
	assert.Equal(t, []string{"Redis"}, m["missing_skills"])
	assert.Equal(t, true, m["experience_match"])

	breakdown, ok := m["breakdown"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 57.5, breakdown["core_skills"])
}

func TestMatchResultToMap_OmitsZeroOptionals(t *testing.T) {
	m := (&MatchResult{JobTitle: "Untitled"}).ToMap()
	_, hasID := m["job_id"]
	assert.False(t, hasID)
	_, hasNotes := m["notes"]
	assert.False(t, hasNotes)
}

func TestResumeProfileHasSkill(t *testing.T) {
	p := &ResumeProfile{Skills: []string{"Python", "Django"}}
	assert.True(t, p.HasSkill("Python"))
	assert.False(t, p.HasSkill("python"))
	assert.False(t, p.HasSkill("Redis"))
}
