package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minContentLength is the extracted-text length below which a page is
// assumed to be a JavaScript-rendered shell worth re-fetching in a
// browser.
const minContentLength = 400

// tooThin reports whether extracted text is short enough to suggest a
// client-rendered page.
func tooThin(text string) bool {
	return len(strings.TrimSpace(text)) < minContentLength
}

// renderPage loads the URL in a headless browser and returns the
// rendered HTML. Requires Chrome/Chromium on the host.
func renderPage(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to populate the posting.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
