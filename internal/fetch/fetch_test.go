package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<html>
<head><title>Job</title><script>track();</script></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
<h1>Backend Developer</h1>
<p>We build APIs in Python.</p>
<p>Requirements: Django, PostgreSQL</p>
</div>
<footer>Copyright Acme</footer>
</body>
</html>`

func TestExtractText_UsesContentSelector(t *testing.T) {
	text, err := ExtractText(jobPageHTML, SelectorsFor(BoardUnknown))
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Developer")
	assert.Contains(t, text, "Requirements: Django, PostgreSQL")
	assert.NotContains(t, text, "Home | Jobs | About")
	assert.NotContains(t, text, "Copyright Acme")
	assert.NotContains(t, text, "track()")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>plain posting text</p></body></html>`
	text, err := ExtractText(html, []string{".does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "plain posting text", text)
}

func TestExtractText_EmptyDocument(t *testing.T) {
	text, err := ExtractText("", SelectorsFor(BoardUnknown))
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestPosting_FetchesAndExtracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	result, err := Posting(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.Text, "Backend Developer")
}

func TestPosting_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Posting(context.Background(), srv.URL, nil)
	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestPosting_InvalidURL(t *testing.T) {
	_, err := Posting(context.Background(), "not-a-url", nil)
	require.Error(t, err)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestTooThin(t *testing.T) {
	assert.True(t, tooThin("short"))
	assert.False(t, tooThin(strings.Repeat("long enough content ", 30)))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Equal(t, DefaultUserAgent, opts.UserAgent)
	assert.False(t, opts.UseBrowser)
}
