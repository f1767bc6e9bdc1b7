package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

func results(scores ...float64) []*types.MatchResult {
	out := make([]*types.MatchResult, len(scores))
	for i, s := range scores {
		out[i] = &types.MatchResult{JobTitle: string(rune('a' + i)), MatchScore: s}
	}
	return out
}

func TestRank_DescendingByScore(t *testing.T) {
	ranked := Rank(results(20, 80, 50), DefaultOptions())
	require.Len(t, ranked, 3)
	assert.Equal(t, 80.0, ranked[0].MatchScore)
	assert.Equal(t, 50.0, ranked[1].MatchScore)
	assert.Equal(t, 20.0, ranked[2].MatchScore)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	input := results(47, 47, 47)
	ranked := Rank(input, DefaultOptions())
	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].JobTitle)
	assert.Equal(t, "b", ranked[1].JobTitle)
	assert.Equal(t, "c", ranked[2].JobTitle)
}

func TestRank_MinScoreFilter(t *testing.T) {
	ranked := Rank(results(4.9, 5.0, 90), Options{MinScore: 5.0})
	require.Len(t, ranked, 2)
	assert.Equal(t, 90.0, ranked[0].MatchScore)
	assert.Equal(t, 5.0, ranked[1].MatchScore)
}

func TestRank_TopN(t *testing.T) {
	ranked := Rank(results(10, 90, 50, 70), Options{TopN: 2})
	require.Len(t, ranked, 2)
	assert.Equal(t, 90.0, ranked[0].MatchScore)
	assert.Equal(t, 70.0, ranked[1].MatchScore)
}

func TestRank_ZeroTopNMeansNoLimit(t *testing.T) {
	ranked := Rank(results(10, 20, 30), Options{})
	assert.Len(t, ranked, 3)
}

func TestRank_SkipsNilEntries(t *testing.T) {
	input := results(40, 60)
	input = append(input, nil)
	ranked := Rank(input, DefaultOptions())
	assert.Len(t, ranked, 2)
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	input := results(10, 90, 50)
	_ = Rank(input, DefaultOptions())
	assert.Equal(t, 10.0, input[0].MatchScore)
	assert.Equal(t, 90.0, input[1].MatchScore)
	assert.Equal(t, 50.0, input[2].MatchScore)
}

func TestRank_Idempotent(t *testing.T) {
	once := Rank(results(30, 70, 70, 10), DefaultOptions())
	twice := Rank(once, DefaultOptions())
	assert.Equal(t, once, twice)
}

func TestRank_EmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, DefaultOptions()))
}
