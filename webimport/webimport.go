// Package webimport fetches web pages (video descriptions, tracklist
// posts) and harvests chapter lists from their visible text.
package webimport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"chapterbook/chapterlist"
	"chapterbook/models"
)

// Fetcher downloads pages and extracts chapter entries from them.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a Fetcher with the given request timeout. An empty
// userAgent leaves the Go default in place.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads the page at url and returns the chapter entries found
// in its text. A page without recognizable chapters yields no entries
// and no error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]models.ChapterEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	entries, err := Extract(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", url, err)
	}
	return entries, nil
}

// Extract parses HTML from r and returns the chapter entries found in
// its visible text.
//
// Block-level elements and <br> tags become line breaks so the chapter
// scanner sees the same lines a reader would.
func Extract(r io.Reader) ([]models.ChapterEntry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return chapterlist.Parse(pageText(doc)), nil
}

// pageText renders the document as plain text with line structure kept.
func pageText(doc *goquery.Document) string {
	// Invisible content must not leak into the scan
	doc.Find("script, style, noscript, template").Remove()

	// Turn explicit and implicit line breaks into newlines before
	// flattening to text
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr, pre").AfterHtml("\n")

	body := doc.Find("body")
	if body.Length() > 0 {
		return body.Text()
	}
	return doc.Text()
}
