// Package ranking orders match results for presentation: descending by
// score, stable on ties, with a minimum-score floor that keeps
// near-zero noise out of the list.
package ranking

import (
	"sort"

	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

// DefaultMinScore is the reference floor: matches under it are not
// presented at all. A policy value, not a discovered law.
const DefaultMinScore = 5.0

// Options configures ranking behavior.
type Options struct {
	// MinScore filters out results scoring below it before ranking.
	MinScore float64
	// TopN truncates the ranked list; zero or negative means no limit.
	TopN int
}

// DefaultOptions returns the reference ranking policy.
func DefaultOptions() Options {
	return Options{MinScore: DefaultMinScore}
}

// Rank returns a new slice sorted descending by match score. Ties keep
// their input order, so repeated runs over the same batch are
// reproducible. The input slice is not modified.
func Rank(results []*types.MatchResult, opts Options) []*types.MatchResult {
	ranked := make([]*types.MatchResult, 0, len(results))
	for _, r := range results {
		if r == nil || r.MatchScore < opts.MinScore {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if opts.TopN > 0 && len(ranked) > opts.TopN {
		ranked = ranked[:opts.TopN]
	}
	return ranked
}
