package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrdinal_Ordering(t *testing.T) {
	levels := []Level{LevelEntry, LevelJunior, LevelMiddle, LevelSenior, LevelLead}
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].Ordinal(), levels[i-1].Ordinal(),
			"%s should outrank %s", levels[i], levels[i-1])
	}
}

func TestLevelOrdinal_UnknownMapsToEntry(t *testing.T) {
	assert.Equal(t, 0, Level("wizard").Ordinal())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelSenior, ParseLevel("senior"))
	assert.Equal(t, LevelLead, ParseLevel("lead"))
	assert.Equal(t, LevelEntry, ParseLevel(""))
	assert.Equal(t, LevelEntry, ParseLevel("Senior"))
}
