package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

func TestMissingSkills_CappedAndOrdered(t *testing.T) {
	s := newScorer(t)
	job := &types.JobPosting{
		Title: "Polyglot Engineer",
		Requirements: "Required: Python, Java, Go. " +
			"Required: React, Django, Redis. " +
			"Required: Docker, AWS, Kubernetes, Terraform.",
	}
	profile := &types.ResumeProfile{Level: types.LevelMiddle}

	result := s.Score(profile, job)
	require.Len(t, result.MissingSkills, DefaultConfig().MissingSkillsLimit)
	assert.Equal(t,
		[]string{"Python", "Java", "Go", "React", "Django", "Redis", "Docker", "AWS"},
		result.MissingSkills)
}

func TestMissingSkills_ExcludesResumeSkills(t *testing.T) {
	s := newScorer(t)
	result := s.Score(backendProfile(), backendJob())
	for _, skill := range backendProfile().Skills {
		assert.NotContains(t, result.MissingSkills, skill)
	}
}

func TestMissingSkills_FreeTextGatedByMentionCount(t *testing.T) {
	s := newScorer(t)
	profile := &types.ResumeProfile{Skills: []string{"Python"}, Level: types.LevelMiddle}

	// One mention of an unknown technology: below the gate.
	once := s.Score(profile, &types.JobPosting{
		Title:        "Engineer",
		Requirements: "Requirements: Python. Also experience with erlang appreciated.",
	})
	assert.NotContains(t, once.MissingSkills, "erlang")

	// Repeated mentions clear the gate.
	twice := s.Score(profile, &types.JobPosting{
		Title:        "Engineer",
		Requirements: "Requirements: Python. Experience with erlang required. Our erlang services are core.",
	})
	assert.Contains(t, twice.MissingSkills, "erlang")
}

func TestMissingSkills_FreeTextSkipsStopwords(t *testing.T) {
	s := newScorer(t)
	profile := &types.ResumeProfile{Skills: []string{"Python"}, Level: types.LevelMiddle}
	result := s.Score(profile, &types.JobPosting{
		Title:        "Engineer",
		Requirements: "Experience with modern tooling. Knowledge of modern practices. Requirements: Python.",
	})
	assert.NotContains(t, result.MissingSkills, "modern")
}

func TestMissingSkills_EmptyJobText(t *testing.T) {
	s := newScorer(t)
	result := s.Score(backendProfile(), &types.JobPosting{})
	assert.Empty(t, result.MissingSkills)
}
