package ports

import (
	"context"
	"time"

	"IssueCreator/internal/domain"
)

// ScheduledEmail is the payload for an email that goes out at PublishAt.
type ScheduledEmail struct {
	Subject   string
	Body      string
	PublishAt time.Time
	Slug      string
}

// DraftRecipients selects who receives a draft preview. Both empty means the
// email service default (usually every subscriber), so callers must set one.
type DraftRecipients struct {
	Recipients  []string
	Subscribers []string
}

// EmailService creates newsletter emails and sends previews.
type EmailService interface {
	CreateScheduledEmail(ctx context.Context, email ScheduledEmail) (domain.CampaignRecord, error)
	CreateDraftEmail(ctx context.Context, subject, body string) (domain.CampaignRecord, error)
	SendDraft(ctx context.Context, emailID string, to DraftRecipients) error
}

// Renderer substitutes data into a template body.
type Renderer interface {
	Render(body string, data map[string]any) (string, error)
}

// IssueNumberSource reports the number of the last published issue.
type IssueNumberSource interface {
	LastIssueNumber(ctx context.Context) (uint32, error)
}

// QuoteSource returns the quote for an issue.
type QuoteSource interface {
	QuoteFor(ctx context.Context, issueNumber uint32) (domain.Quote, error)
}

// BookSource returns the book recommendation for an issue.
type BookSource interface {
	BookFor(ctx context.Context, issueNumber uint32) (domain.Book, error)
}

// SponsorSource returns the sponsor of an issue, or nil when unsold.
type SponsorSource interface {
	SponsorFor(ctx context.Context, issueNumber uint32) (*domain.Sponsor, error)
}

// LinkSource returns the ranked links of the week.
type LinkSource interface {
	RankedLinks(ctx context.Context) ([]domain.Link, error)
}

// RunRecorder keeps an audit trail of created issues.
type RunRecorder interface {
	RecordRun(ctx context.Context, result domain.Result) error
}

// RunLog lists recorded runs, newest first.
type RunLog interface {
	RecentRuns(ctx context.Context, limit int) ([]domain.IssueRun, error)
}

// Scheduler controls when the weekly job executes.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
