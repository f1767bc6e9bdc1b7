package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\n  "))
}

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "line one\nline two", CleanText("line one\r\nline two"))
	assert.Equal(t, "line one\nline two", CleanText("line one\rline two"))
}

func TestCleanText_BulletMarkers(t *testing.T) {
	input := "Skills:\n•   Python\n* Django\n· Redis\n- Docker"
	want := "Skills:\n- Python\n- Django\n- Redis\n- Docker"
	assert.Equal(t, want, CleanText(input))
}

func TestCleanText_CollapsesBlankLines(t *testing.T) {
	input := "Experience\n\n\n\n\nEducation"
	assert.Equal(t, "Experience\n\nEducation", CleanText(input))
}

func TestCleanText_CollapsesInternalSpaces(t *testing.T) {
	assert.Equal(t, "Backend Engineer at Acme", CleanText("Backend    Engineer \t at   Acme"))
}

func TestCleanText_StripsControlCharacters(t *testing.T) {
	assert.Equal(t, "abc", CleanText("a\x00b\x07c"))
}

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\n•  Python\r\n"), 0o644))

	text, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n- Python", text)
}

func TestReadTextFile_Missing(t *testing.T) {
	_, err := ReadTextFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
