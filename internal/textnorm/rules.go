package textnorm

import (
	"regexp"
	"strings"
)

// Rule names, used by the extractor to weight matches per rule type.
const (
	RuleWordBoundary = "word_boundary"
	RuleVersion      = "version"
	RuleContext      = "context"
	RuleRoleWord     = "role_word"
	RuleYears        = "years"
)

// Word boundaries are hand-rolled instead of \b because canonical skill
// names may end in non-word characters (c++, c#, .net), where \b does
// not behave as intended.
const (
	boundaryLeft  = `(?:^|[^a-z0-9])`
	boundaryRight = `(?:[^a-z0-9]|$)`
)

// contextPhrases are the lead-ins that mark a skill mention as
// supported by real usage context rather than incidental text.
var contextPhrases = []string{
	"using", "experience with", "experienced in", "proficient in",
	"worked with", "knowledge of", "familiar with", "expertise in",
	"skills", "skilled in", "requirements", "required", "technologies",
}

// roleWords follow a skill name and confirm it names a technology.
var roleWords = []string{
	"framework", "library", "database", "tool", "platform", "language", "stack",
}

// Rule is one compiled skill-detection pattern.
type Rule struct {
	Name string
	re   *regexp.Regexp
}

// Match reports whether the rule fires anywhere in normalized text.
func (r Rule) Match(text string) bool {
	return r.re.MatchString(text)
}

// FirstIndex returns the byte offset of the first match, or -1.
func (r Rule) FirstIndex(text string) int {
	loc := r.re.FindStringIndex(text)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// CountMatches returns the number of non-overlapping matches.
func (r Rule) CountMatches(text string) int {
	return len(r.re.FindAllStringIndex(text, -1))
}

// skillLiteral builds the regex fragment for a skill name: lowercased,
// metacharacters escaped, internal spaces optionally hyphens.
func skillLiteral(skill string) string {
	lit := regexp.QuoteMeta(strings.ToLower(strings.TrimSpace(skill)))
	return strings.ReplaceAll(lit, " ", `[ \-]`)
}

// WordBoundaryRule matches the skill as a whole word. "R" must not
// match inside "director".
func WordBoundaryRule(skill string) Rule {
	return Rule{
		Name: RuleWordBoundary,
		re:   regexp.MustCompile(boundaryLeft + skillLiteral(skill) + boundaryRight),
	}
}

// VersionRule matches the skill followed by a version number or a bare
// plus, e.g. "python 3.11", "java 17", "spring 5+".
func VersionRule(skill string) Rule {
	return Rule{
		Name: RuleVersion,
		re:   regexp.MustCompile(boundaryLeft + skillLiteral(skill) + `\s*v?(?:\d+(?:\.\d+)*\+?|\+)` + boundaryRight),
	}
}

// ContextRule matches the skill shortly after a usage phrase such as
// "experience with" or "proficient in".
func ContextRule(skill string) Rule {
	phrases := strings.Join(contextPhrases, "|")
	return Rule{
		Name: RuleContext,
		re:   regexp.MustCompile(`(?:` + phrases + `)[^.\n]{0,60}?` + boundaryLeft + skillLiteral(skill) + boundaryRight),
	}
}

// RoleWordRule matches the skill immediately followed by a technology
// role word, e.g. "django framework", "redis database".
func RoleWordRule(skill string) Rule {
	words := strings.Join(roleWords, "|")
	return Rule{
		Name: RuleRoleWord,
		re:   regexp.MustCompile(boundaryLeft + skillLiteral(skill) + `\s+(?:` + words + `)` + boundaryRight),
	}
}

// YearsRule matches "<N>+ years ... <skill>" phrasings, e.g.
// "5+ years of experience with python".
func YearsRule(skill string) Rule {
	return Rule{
		Name: RuleYears,
		re:   regexp.MustCompile(`\d+\+?\s*(?:years?|yrs)[^.\n]{0,60}?` + boundaryLeft + skillLiteral(skill) + boundaryRight),
	}
}

// RulesFor returns the full detection rule set for one skill, in a
// fixed order with the word-boundary rule first.
func RulesFor(skill string) []Rule {
	return []Rule{
		WordBoundaryRule(skill),
		VersionRule(skill),
		ContextRule(skill),
		RoleWordRule(skill),
		YearsRule(skill),
	}
}
