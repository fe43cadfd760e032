package domain

import (
	"encoding/json"
	"time"
)

// Event is the single input of an issue invocation.
type Event struct {
	Config    EventConfig `json:"config"`
	NextIssue NextIssue   `json:"NextIssue"`
	Data      IssueData   `json:"data"`
}

// IssueNumber is a shortcut for the number of the issue being assembled.
func (e Event) IssueNumber() uint32 {
	return e.NextIssue.Number
}

// EventConfig carries invocation flags. Unknown keys (the scheduler envelope:
// id, source, region, detail...) are kept in Passthrough and re-emitted as is.
type EventConfig struct {
	DryRun      bool                       `json:"dryRun"`
	Time        string                     `json:"time"`
	Passthrough map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known flags and keeps every other key.
func (c *EventConfig) UnmarshalJSON(raw []byte) error {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		return err
	}

	*c = EventConfig{}
	if v, ok := all["dryRun"]; ok {
		if err := json.Unmarshal(v, &c.DryRun); err != nil {
			return err
		}
		delete(all, "dryRun")
	}
	if v, ok := all["time"]; ok {
		if err := json.Unmarshal(v, &c.Time); err != nil {
			return err
		}
		delete(all, "time")
	}
	if len(all) > 0 {
		c.Passthrough = all
	}
	return nil
}

// MarshalJSON writes the passthrough keys back next to the known flags.
func (c EventConfig) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Passthrough)+2)
	for k, v := range c.Passthrough {
		out[k] = v
	}
	out["dryRun"] = c.DryRun
	out["time"] = c.Time
	return json.Marshal(out)
}

// NextIssue identifies the issue being assembled.
type NextIssue struct {
	Number uint32 `json:"number"`
}

// IssueData groups the upstream content resolved before the invocation.
type IssueData struct {
	Quote   Quote    `json:"Quote"`
	Book    Book     `json:"Book"`
	Sponsor *Sponsor `json:"Sponsor,omitempty"`
	Links   []Link   `json:"Links"`
}

// Quote is the tech quote of the issue.
type Quote struct {
	ID                uint32 `json:"id"`
	Text              string `json:"text"`
	Author            string `json:"author"`
	AuthorDescription string `json:"authorDescription"`
	AuthorURL         string `json:"authorUrl,omitempty"`
}

// Book is the book recommendation of the issue. Links is keyed by store
// ("us", "uk", "free", ...).
type Book struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Author       string            `json:"author"`
	Links        map[string]string `json:"links"`
	CoverPicture string            `json:"coverPicture"`
	Description  string            `json:"description"`
}

// Sponsor is the optional paid block of the issue.
type Sponsor struct {
	BannerHTML           string `json:"banner_html"`
	SponsoredArticleHTML string `json:"sponsored_article_html"`
	Customer             string `json:"customer"`
}

// Link is a ranked piece of content. Order in IssueData.Links is the ranking.
type Link struct {
	Title         string       `json:"title"`
	URL           string       `json:"url"`
	Description   string       `json:"description"`
	Image         string       `json:"image,omitempty"`
	Score         uint32       `json:"score"`
	OriginalImage string       `json:"originalImage"`
	CampaignURLs  CampaignURLs `json:"campaignUrls"`
}

// CampaignURLs are the tracked variants of a link URL.
type CampaignURLs struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// EmailStatus is the lifecycle state reported by the email service.
type EmailStatus string

const (
	EmailStatusDraft     EmailStatus = "draft"
	EmailStatusScheduled EmailStatus = "scheduled"
)

// CampaignRecord is what the email service returns for a created email.
type CampaignRecord struct {
	ID     string      `json:"id"`
	Status EmailStatus `json:"status"`
}

// TestSendOutcome records what happened to the preview copy.
type TestSendOutcome string

const (
	TestSendSent                 TestSendOutcome = "sent"
	TestSendSkippedScheduled     TestSendOutcome = "skipped_scheduled"
	TestSendSkippedUnknownStatus TestSendOutcome = "skipped_unknown_status"
	TestSendSkippedNoRecipients  TestSendOutcome = "skipped_no_recipients"
)

// ResultVersion tags the output shape.
const ResultVersion = "v1"

// Result is the output of an invocation, for both dry and live runs.
type Result struct {
	Version         string          `json:"version"`
	IssueNumber     uint32          `json:"issueNumber"`
	Quote           Quote           `json:"quote"`
	Book            Book            `json:"book"`
	Links           []Link          `json:"links"`
	Sponsor         *Sponsor        `json:"sponsor,omitempty"`
	SubjectLine     string          `json:"subjectLine"`
	RenderedContent string          `json:"renderedContent"`
	ScheduledFor    time.Time       `json:"scheduledFor"`
	Slug            string          `json:"slug"`
	DryRun          bool            `json:"dryRun,omitempty"`
	CampaignID      string          `json:"campaignId,omitempty"`
	EmailID         string          `json:"emailId,omitempty"`
	EmailStatus     EmailStatus     `json:"emailStatus,omitempty"`
	TestSend        TestSendOutcome `json:"testSend,omitempty"`
}

// IssueRun is one row of the run log.
type IssueRun struct {
	IssueNumber  uint32          `json:"issueNumber"`
	EmailID      string          `json:"emailId"`
	Slug         string          `json:"slug"`
	Status       EmailStatus     `json:"status"`
	Subject      string          `json:"subject"`
	ScheduledFor time.Time       `json:"scheduledFor"`
	TestSend     TestSendOutcome `json:"testSend"`
	RecordedAt   time.Time       `json:"recordedAt"`
}
