package upstream

import (
	"context"
	"fmt"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

// LinkSource reads the ranked links of the week from a JSON endpoint. The
// endpoint owns the ranking; the order it returns is kept.
type LinkSource struct {
	client *Client
	url    string
}

var _ ports.LinkSource = (*LinkSource)(nil)

// NewLinkSource binds the source to its endpoint.
func NewLinkSource(client *Client, url string) *LinkSource {
	return &LinkSource{client: client, url: url}
}

// RankedLinks fetches the links.
func (s *LinkSource) RankedLinks(ctx context.Context) ([]domain.Link, error) {
	if s.url == "" {
		return nil, fmt.Errorf("fetch links: no links url configured")
	}

	var ranked []domain.Link
	if err := s.client.get(ctx, s.url, nil, &ranked); err != nil {
		return nil, fmt.Errorf("fetch links: %w", err)
	}
	return ranked, nil
}
