package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulmukhitx/resume-matcher/internal/taxonomy"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(taxonomy.Default())
}

func TestDetect_EmptyText(t *testing.T) {
	e := newExtractor(t)
	assert.Empty(t, e.Detect(""))
	assert.Empty(t, e.Detect("   \n\t "))
}

func TestDetect_RequirementsList(t *testing.T) {
	e := newExtractor(t)
	detections := e.Detect("Requirements: Python, Django, PostgreSQL")

	require.Len(t, detections, 3)
	assert.Equal(t, "Python", detections[0].Skill)
	assert.Equal(t, "Django", detections[1].Skill)
	assert.Equal(t, "PostgreSQL", detections[2].Skill)
	for _, d := range detections {
		assert.GreaterOrEqual(t, d.Score, DefaultAcceptThreshold)
		assert.LessOrEqual(t, d.Score, 1.0)
		assert.GreaterOrEqual(t, d.Position, 0)
	}
}

func TestDetect_OrderedByFirstOccurrence(t *testing.T) {
	e := newExtractor(t)
	detections := e.Detect("Experienced in Redis caching. Proficient in Python and Django.")

	require.NotEmpty(t, detections)
	assert.Equal(t, "Redis", detections[0].Skill)
	for i := 1; i < len(detections); i++ {
		assert.LessOrEqual(t, detections[i-1].Position, detections[i].Position)
	}
}

func TestDetect_NoFalseSubstringHits(t *testing.T) {
	e := newExtractor(t)
	assert.Empty(t, e.Detect("I am a director of operations"))
	assert.Empty(t, e.Detect("we enjoy painting and hiking"))
}

func TestDetect_BareMentionBelowThreshold(t *testing.T) {
	e := newExtractor(t)
	// A single mention with no supporting context stays below the
	// acceptance threshold.
	assert.Empty(t, e.Detect("python"))
}

func TestDetect_RepeatedMentionsRaiseScore(t *testing.T) {
	e := newExtractor(t)
	single := 0.0
	for _, d := range e.Detect("experience with python") {
		if d.Skill == "Python" {
			single = d.Score
		}
	}
	repeated := 0.0
	for _, d := range e.Detect("experience with python. python, python, python everywhere") {
		if d.Skill == "Python" {
			repeated = d.Score
		}
	}
	require.Greater(t, single, 0.0)
	assert.GreaterOrEqual(t, repeated, single)
}

func TestDetect_Deterministic(t *testing.T) {
	e := newExtractor(t)
	text := "Requirements: Python, Django, PostgreSQL, AWS, Docker, Redis"
	first := e.Detect(text)
	second := e.Detect(text)
	assert.Equal(t, first, second)
}

func TestExtract_GroupsBySubcategory(t *testing.T) {
	e := newExtractor(t)
	grouped := e.Extract("Requirements: Python, Django, PostgreSQL")

	assert.Equal(t, []string{"Python"}, grouped[taxonomy.SubLanguages])
	assert.Equal(t, []string{"Django"}, grouped[taxonomy.SubFrameworks])
	assert.Equal(t, []string{"PostgreSQL"}, grouped[taxonomy.SubDatabases])
}

func TestContains(t *testing.T) {
	e := newExtractor(t)
	assert.True(t, e.Contains("3+ years of experience with python development", "Python"))
	assert.True(t, e.Contains("requirements: python, django", "Django"))
	assert.False(t, e.Contains("we build spacecraft", "Python"))
	assert.False(t, e.Contains("", "Python"))
}

func TestContains_UnknownSkillCompilesAdHoc(t *testing.T) {
	e := newExtractor(t)
	assert.True(t, e.Contains("experience with zig required", "zig"))
	assert.False(t, e.Contains("nothing relevant", "zig"))
}

func TestMentionedAsWord(t *testing.T) {
	e := newExtractor(t)
	assert.True(t, e.MentionedAsWord("plain python mention", "Python"))
	assert.False(t, e.MentionedAsWord("pythonic", "Python"))
	assert.False(t, e.MentionedAsWord("director", "R"))
	assert.False(t, e.MentionedAsWord("", "Python"))
}

func TestNewWithThreshold_StricterThresholdFiltersMore(t *testing.T) {
	tax := taxonomy.Default()
	lenient := NewWithThreshold(tax, 0.1)
	strict := NewWithThreshold(tax, 0.9)

	text := "worked with docker occasionally"
	assert.NotEmpty(t, lenient.Detect(text))
	assert.GreaterOrEqual(t, len(lenient.Detect(text)), len(strict.Detect(text)))
}
