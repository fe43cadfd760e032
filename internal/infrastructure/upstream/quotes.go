package upstream

import (
	"context"
	"fmt"
	"strings"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

// QuoteSource picks the quote of an issue from a static tech-quotes site.
type QuoteSource struct {
	client  *Client
	baseURL string
}

var _ ports.QuoteSource = (*QuoteSource)(nil)

// NewQuoteSource binds the source to the site root (the folder holding quotes/).
func NewQuoteSource(client *Client, baseURL string) *QuoteSource {
	return &QuoteSource{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

type quoteStats struct {
	Total     uint32 `json:"total"`
	URLPrefix string `json:"urlPrefix"`
}

type quoteAuthor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Wiki        string `json:"wiki"`
}

type inputQuote struct {
	ID     uint32      `json:"id"`
	Text   string      `json:"text"`
	Author quoteAuthor `json:"author"`
}

// QuoteFor returns quote number issueNumber mod total, so consecutive issues
// walk the whole collection.
func (s *QuoteSource) QuoteFor(ctx context.Context, issueNumber uint32) (domain.Quote, error) {
	var stats quoteStats
	if err := s.client.get(ctx, s.baseURL+"/quotes/stats.json", nil, &stats); err != nil {
		return domain.Quote{}, fmt.Errorf("fetch quote stats: %w", err)
	}
	if stats.Total == 0 {
		return domain.Quote{}, fmt.Errorf("fetch quote stats: no quotes available")
	}

	prefix := strings.TrimRight(stats.URLPrefix, "/")
	if prefix == "" {
		prefix = s.baseURL + "/quotes"
	}

	index := issueNumber % stats.Total
	var in inputQuote
	if err := s.client.get(ctx, fmt.Sprintf("%s/%d.json", prefix, index), nil, &in); err != nil {
		return domain.Quote{}, fmt.Errorf("fetch quote %d: %w", index, err)
	}

	return domain.Quote{
		ID:                in.ID,
		Text:              in.Text,
		Author:            in.Author.Name,
		AuthorDescription: in.Author.Description,
		AuthorURL:         in.Author.Wiki,
	}, nil
}
