package buttondown

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"IssueCreator/internal/config"
	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

const errorBodyLimit = 1024

// Client implements ports.EmailService against the Buttondown v1 API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ports.EmailService = (*Client)(nil)

// NewClient builds a client from configuration.
func NewClient(cfg config.EmailConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type createEmailRequest struct {
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	PublishDate    string `json:"publish_date,omitempty"`
	Status         string `json:"status"`
	Slug           string `json:"slug,omitempty"`
	CommentingMode string `json:"commenting_mode"`
}

type sendDraftRequest struct {
	Subscribers []string `json:"subscribers,omitempty"`
	Recipients  []string `json:"recipients,omitempty"`
}

// CreateScheduledEmail creates an email that Buttondown sends at PublishAt.
func (c *Client) CreateScheduledEmail(ctx context.Context, email ports.ScheduledEmail) (domain.CampaignRecord, error) {
	return c.createEmail(ctx, createEmailRequest{
		Subject:        email.Subject,
		Body:           email.Body,
		PublishDate:    email.PublishAt.UTC().Format(time.RFC3339),
		Status:         string(domain.EmailStatusScheduled),
		Slug:           email.Slug,
		CommentingMode: "enabled",
	})
}

// CreateDraftEmail creates an unsent draft.
func (c *Client) CreateDraftEmail(ctx context.Context, subject, body string) (domain.CampaignRecord, error) {
	return c.createEmail(ctx, createEmailRequest{
		Subject:        subject,
		Body:           body,
		Status:         string(domain.EmailStatusDraft),
		CommentingMode: "enabled",
	})
}

// SendDraft sends a preview of a draft to the given recipients only.
func (c *Client) SendDraft(ctx context.Context, emailID string, to ports.DraftRecipients) error {
	const op = "send draft"
	if emailID == "" {
		return &domain.EmailServiceError{Op: op, Err: errors.New("empty email id")}
	}

	path := "/emails/" + url.PathEscape(emailID) + "/send-draft"
	payload := sendDraftRequest{Subscribers: to.Subscribers, Recipients: to.Recipients}
	return c.post(ctx, op, path, payload, nil)
}

func (c *Client) createEmail(ctx context.Context, payload createEmailRequest) (domain.CampaignRecord, error) {
	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := c.post(ctx, "create email", "/emails", payload, &resp); err != nil {
		return domain.CampaignRecord{}, err
	}
	return domain.CampaignRecord{ID: resp.ID, Status: domain.EmailStatus(resp.Status)}, nil
}

func (c *Client) post(ctx context.Context, op, path string, payload any, v any) error {
	if c == nil || c.httpClient == nil {
		return &domain.EmailServiceError{Op: op, Err: errors.New("buttondown client is nil")}
	}
	if c.apiKey == "" || c.baseURL == "" {
		return &domain.EmailServiceError{Op: op, Err: errors.New("buttondown client misconfigured")}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return &domain.EmailServiceError{Op: op, Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &domain.EmailServiceError{Op: op, Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.EmailServiceError{Op: op, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &domain.EmailServiceError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if v == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &domain.EmailServiceError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
