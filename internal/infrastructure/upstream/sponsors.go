package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"IssueCreator/internal/config"
	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

// SponsorSource looks up the sponsor of an issue in an Airtable table that
// has one row per sold issue.
type SponsorSource struct {
	client  *Client
	baseURL string
	baseID  string
	table   string
	apiKey  string
}

var _ ports.SponsorSource = (*SponsorSource)(nil)

// NewSponsorSource builds the source from the Airtable section.
func NewSponsorSource(client *Client, cfg config.AirtableConfig) *SponsorSource {
	return &SponsorSource{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		baseID:  cfg.BaseID,
		table:   cfg.Table,
		apiKey:  cfg.APIKey,
	}
}

type airtableResponse struct {
	Records []struct {
		Fields struct {
			BannerHTML           string `json:"BannerHTML"`
			SponsoredArticleHTML string `json:"SponsoredArticleHTML"`
			Customer             string `json:"Customer"`
		} `json:"fields"`
	} `json:"records"`
}

// SponsorFor returns nil when the issue has no sponsor row.
func (s *SponsorSource) SponsorFor(ctx context.Context, issueNumber uint32) (*domain.Sponsor, error) {
	if s.baseID == "" || s.apiKey == "" {
		return nil, fmt.Errorf("fetch sponsor: airtable is not configured")
	}

	query := url.Values{}
	query.Set("maxRecords", "1")
	query.Set("filterByFormula", fmt.Sprintf("{Issue}=%d", issueNumber))
	endpoint := fmt.Sprintf("%s/%s/%s?%s", s.baseURL, url.PathEscape(s.baseID), url.PathEscape(s.table), query.Encode())

	var resp airtableResponse
	headers := map[string]string{"Authorization": "Bearer " + s.apiKey}
	if err := s.client.get(ctx, endpoint, headers, &resp); err != nil {
		return nil, fmt.Errorf("fetch sponsor for issue %d: %w", issueNumber, err)
	}
	if len(resp.Records) == 0 {
		return nil, nil
	}

	fields := resp.Records[0].Fields
	return &domain.Sponsor{
		BannerHTML:           fields.BannerHTML,
		SponsoredArticleHTML: fields.SponsoredArticleHTML,
		Customer:             fields.Customer,
	}, nil
}
