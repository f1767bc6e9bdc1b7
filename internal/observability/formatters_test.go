package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.ResumeProfile{
		Skills:            []string{"Python", "Django"},
		Profession:        "technology",
		Level:             types.LevelSenior,
		YearsOfExperience: 8,
		Specialization:    "Python Backend",
		Confidence:        0.92,
	})

	out := buf.String()
	assert.Contains(t, out, "Profession:     technology")
	assert.Contains(t, out, "senior (8 years)")
	assert.Contains(t, out, "Specialization: Python Backend")
	assert.Contains(t, out, "Python, Django")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil)
	assert.Contains(t, buf.String(), "No matches above the minimum score.")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches([]*types.MatchResult{
		{
			JobTitle:       "Backend Developer",
			Company:        "Acme",
			MatchScore:     74.2,
			MatchingSkills: []string{"Python", "Django"},
			MissingSkills:  []string{"Redis"},
			Breakdown:      types.Breakdown{CoreSkills: 57, TechStack: 100, Experience: 100, Specialization: 40},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Backend Developer (Acme)")
	assert.Contains(t, out, "74.2%")
	assert.Contains(t, out, "matched: Python, Django")
	assert.Contains(t, out, "missing: Redis")
	assert.Contains(t, out, "core 57")
}

func TestPrintQueries(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintQueries([]string{"software engineer", "Python developer"})

	out := buf.String()
	assert.Contains(t, out, " 1. software engineer")
	assert.Contains(t, out, " 2. Python developer")
}

func TestJoinCapped(t *testing.T) {
	short := joinCapped([]string{"a", "b"}, 3)
	assert.Equal(t, "a, b", short)

	long := joinCapped([]string{"a", "b", "c", "d", "e"}, 3)
	assert.Equal(t, "a, b, c ... and 2 more", long)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long st...", truncate("long string here", 10))
}
