// Package fetch retrieves job postings from the web for the matching
// engine: plain HTTP fetching, HTML-to-text extraction tuned for job
// boards, and a headless-browser fallback for JavaScript-rendered
// pages. This is an ingestion collaborator; the engine itself never
// performs I/O.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"

// Result holds the raw and processed content of a fetched posting.
type Result struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
}

// Error represents a failure fetching or parsing a posting URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool // fall back to headless rendering for thin pages
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Posting fetches a job posting URL and extracts its text using
// board-specific selectors. When the extracted text is too short and
// the browser fallback is enabled, the page is re-fetched rendered.
func Posting(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := rawHTML(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	board := DetectBoard(urlStr)
	text, err := ExtractText(result.HTML, SelectorsFor(board))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "text extraction failed", Cause: err}
	}

	if opts.UseBrowser && tooThin(text) {
		html, berr := renderPage(ctx, urlStr, opts.Timeout)
		if berr == nil {
			if rendered, rerr := ExtractText(html, SelectorsFor(board)); rerr == nil && len(rendered) > len(text) {
				result.HTML = html
				text = rendered
			}
		}
	}

	result.Text = text
	return result, nil
}

// rawHTML retrieves the page body over plain HTTP.
func rawHTML(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// ExtractText parses HTML and returns the posting body text. Noise
// elements are removed first; the first matching content selector
// wins, with <body> as the fallback.
func ExtractText(html string, contentSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner, .apply-widget").Remove()

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	lines := strings.Split(content.Text(), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n"), nil
}
