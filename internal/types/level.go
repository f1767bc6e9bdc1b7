package types

// Level represents a categorical experience level derived from resume text.
type Level string

const (
	// LevelEntry is a candidate with no detectable professional experience
	LevelEntry Level = "entry"
	// LevelJunior is roughly 1-3 years of experience
	LevelJunior Level = "junior"
	// LevelMiddle is roughly 4-7 years of experience
	LevelMiddle Level = "middle"
	// LevelSenior is 8+ years, strong seniority signals, or leadership signals
	LevelSenior Level = "senior"
	// LevelLead is a senior candidate with explicit people/tech leadership
	LevelLead Level = "lead"
)

// levelOrdinals maps levels onto an ordinal scale for comparisons.
var levelOrdinals = map[Level]int{
	LevelEntry:  0,
	LevelJunior: 1,
	LevelMiddle: 2,
	LevelSenior: 3,
	LevelLead:   4,
}

// Ordinal returns the position of the level on the entry..lead scale.
// Unknown levels map to entry (0).
func (l Level) Ordinal() int {
	return levelOrdinals[l]
}

// ParseLevel converts a string to a Level, defaulting to entry for
// unrecognized input.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelEntry, LevelJunior, LevelMiddle, LevelSenior, LevelLead:
		return Level(s)
	default:
		return LevelEntry
	}
}
