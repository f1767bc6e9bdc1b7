package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdulmukhitx/resume-matcher/internal/fetch"
)

func TestSplitTitles(t *testing.T) {
	assert.Nil(t, splitTitles(""))
	assert.Nil(t, splitTitles("   "))
	assert.Equal(t, []string{"Backend Engineer"}, splitTitles("Backend Engineer"))
	assert.Equal(t,
		[]string{"Backend Engineer", "Team Lead"},
		splitTitles(" Backend Engineer , Team Lead ,"))
}

func TestPostingTitle(t *testing.T) {
	result := &fetch.Result{
		URL:  "https://example.com/jobs/1",
		Text: "\n  Backend Developer\nWe build APIs.",
	}
	assert.Equal(t, "Backend Developer", postingTitle(result))

	empty := &fetch.Result{URL: "https://example.com/jobs/2", Text: "  \n "}
	assert.Equal(t, "https://example.com/jobs/2", postingTitle(empty))
}

func TestPostingTitle_TruncatesLongLines(t *testing.T) {
	long := &fetch.Result{Text: strings.Repeat("very long title ", 20)}
	assert.Len(t, postingTitle(long), 120)
}
