// Package experience derives years-of-experience and a categorical
// experience level from resume text using ordered regex heuristics.
package experience

import (
	"regexp"
	"strconv"

	"github.com/abdulmukhitx/resume-matcher/internal/textnorm"
	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

// yearsPatterns match the ways resumes state total experience. All
// matches are collected and the maximum wins: resumes restate their
// total several ways and the maximum is the more reliable figure.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})\+?\s*(?:years?|yrs)\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience[^.\n]{0,40}?(\d{1,2})\+?\s*(?:years?|yrs)`),
	regexp.MustCompile(`(\d{1,2})\+?\s*(?:years?|yrs)\s+(?:in|with|of)\b`),
}

var (
	seniorRe = regexp.MustCompile(`\b(?:senior|sr\.?|lead|principal|staff|architect)\b`)
	middleRe = regexp.MustCompile(`\b(?:middle|mid[ -]level|intermediate)\b`)
	juniorRe = regexp.MustCompile(`\b(?:junior|jr\.?|entry[ -]level|intern|graduate|trainee)\b`)
)

// leadershipPatterns match explicit people/tech leadership signals.
var leadershipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:team lead|tech lead|engineering manager|cto|vp|vice president|director|head of)\b`),
	regexp.MustCompile(`\bmanaged\s+\d+\s+(?:people|developers|engineers|employees|reports)\b`),
	regexp.MustCompile(`\b(?:mentored|guided|supervised|coached)\b`),
}

// Analysis is the derived experience signal for one resume.
type Analysis struct {
	Level           types.Level
	Years           int
	LeadershipScore int
	SeniorHits      int
	MiddleHits      int
	JuniorHits      int
	// Confidence is a bounded heuristic, not a statistical estimate:
	// min(years*0.1 + leadership*0.2 + 0.5, 1.0).
	Confidence float64
}

// Analyze extracts experience signals from resume text. Empty or
// garbled text yields an entry-level result, never an error.
func Analyze(resumeText string) Analysis {
	text := textnorm.Normalize(resumeText)

	a := Analysis{
		Years:           maxYears(text),
		LeadershipScore: countAll(leadershipPatterns, text),
		SeniorHits:      len(seniorRe.FindAllString(text, -1)),
		MiddleHits:      len(middleRe.FindAllString(text, -1)),
		JuniorHits:      len(juniorRe.FindAllString(text, -1)),
	}
	a.Level = decideLevel(a)
	a.Confidence = confidence(a)
	return a
}

// maxYears returns the largest year count any pattern found.
func maxYears(text string) int {
	max := 0
	for _, re := range yearsPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if n > max {
				max = n
			}
		}
	}
	return max
}

func countAll(patterns []*regexp.Regexp, text string) int {
	total := 0
	for _, re := range patterns {
		total += len(re.FindAllString(text, -1))
	}
	return total
}

// decideLevel applies the priority ladder; the first rule that fires
// wins.
func decideLevel(a Analysis) types.Level {
	switch {
	case a.LeadershipScore > 2 && a.Years >= 8:
		return types.LevelLead
	case a.Years >= 8 || a.LeadershipScore > 2 || a.SeniorHits > 1:
		return types.LevelSenior
	case a.Years >= 4 || a.MiddleHits > 0:
		return types.LevelMiddle
	case a.Years >= 1 || a.JuniorHits > 0:
		return types.LevelJunior
	default:
		return types.LevelEntry
	}
}

func confidence(a Analysis) float64 {
	c := float64(a.Years)*0.1 + float64(a.LeadershipScore)*0.2 + 0.5
	if c > 1.0 {
		c = 1.0
	}
	return c
}

// RequiredLevel infers the experience level a job posting asks for,
// using the same keyword detection applied to job text.
func RequiredLevel(jobText string) types.Level {
	text := textnorm.Normalize(jobText)
	years := maxYears(text)
	switch {
	case years >= 8 || len(seniorRe.FindAllString(text, -1)) > 0:
		return types.LevelSenior
	case years >= 4 || len(middleRe.FindAllString(text, -1)) > 0:
		return types.LevelMiddle
	case years >= 1 || len(juniorRe.FindAllString(text, -1)) > 0:
		return types.LevelJunior
	default:
		return types.LevelEntry
	}
}
