// Package archive reads the public newsletter archive to find the number of
// the last published issue.
package archive

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"IssueCreator/internal/ports"
)

// Scraper implements ports.IssueNumberSource over a campaign archive page.
// Archive entries look like `<li class="campaign"><a title="🤓 #331: Title">`,
// newest first.
type Scraper struct {
	client *http.Client
	url    string
}

var _ ports.IssueNumberSource = (*Scraper)(nil)

// NewScraper wires an HTTP client; nil selects one with a 20 second timeout.
func NewScraper(client *http.Client, url string) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Scraper{client: client, url: url}
}

// LastIssueNumber returns the number of the newest archived issue.
func (s *Scraper) LastIssueNumber(ctx context.Context) (uint32, error) {
	doc, err := s.fetchDocument(ctx)
	if err != nil {
		return 0, err
	}
	return lastIssueNumber(doc)
}

func (s *Scraper) fetchDocument(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "IssueCreator/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("archive returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse archive: %w", err)
	}

	return doc, nil
}

func lastIssueNumber(doc *goquery.Document) (uint32, error) {
	title, ok := doc.Find(".campaign a[title]").First().Attr("title")
	if !ok {
		return 0, fmt.Errorf("archive has no campaign entries")
	}
	return parseIssueNumber(title)
}

// parseIssueNumber reads the digits right after the first '#'.
func parseIssueNumber(title string) (uint32, error) {
	_, rest, found := strings.Cut(title, "#")
	if !found {
		return 0, fmt.Errorf("no issue marker in %q", title)
	}

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("no issue number in %q", title)
	}

	n, err := strconv.ParseUint(rest[:end], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse issue number in %q: %w", title, err)
	}
	return uint32(n), nil
}
