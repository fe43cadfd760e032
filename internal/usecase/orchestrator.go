package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/links"
	"IssueCreator/internal/metrics"
	"IssueCreator/internal/ports"
	"IssueCreator/internal/render"
	"IssueCreator/internal/rotation"
	"IssueCreator/internal/schedule"
)

// DefaultSeriesName is the newsletter name used in subject lines.
const DefaultSeriesName = "Full Stack Bulletin"

// EmailMode selects which kind of email a live run creates.
type EmailMode string

const (
	EmailModeScheduled EmailMode = "scheduled"
	EmailModeDraft     EmailMode = "draft"
)

// OrchestratorDeps wires the collaborators of one issue invocation.
type OrchestratorDeps struct {
	Email          ports.EmailService
	Newsletter     *render.Newsletter
	Slot           schedule.Slot
	SeriesName     string
	EmailMode      EmailMode
	TestRecipients ports.DraftRecipients
	Logger         *slog.Logger
}

// Orchestrator turns one event into one newsletter email.
type Orchestrator struct {
	email          ports.EmailService
	newsletter     *render.Newsletter
	slot           schedule.Slot
	seriesName     string
	emailMode      EmailMode
	testRecipients ports.DraftRecipients
	logger         *slog.Logger
}

// NewOrchestrator constructs the orchestration component. Zero values fall
// back to the built-in template, the Monday 17:00 slot and scheduled emails.
func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	o := &Orchestrator{
		email:          deps.Email,
		newsletter:     deps.Newsletter,
		slot:           deps.Slot,
		seriesName:     deps.SeriesName,
		emailMode:      deps.EmailMode,
		testRecipients: deps.TestRecipients,
		logger:         deps.Logger,
	}
	if o.newsletter == nil {
		o.newsletter = render.NewNewsletter(render.TextTemplate{}, "")
	}
	if o.slot == (schedule.Slot{}) {
		o.slot = schedule.DefaultSlot
	}
	if o.seriesName == "" {
		o.seriesName = DefaultSeriesName
	}
	if o.emailMode == "" {
		o.emailMode = EmailModeScheduled
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Run executes the invocation. It is strictly sequential: timing, content,
// render, then (unless dry run) email creation and the optional preview send.
// A failure after the email was created is returned as is; the email stays.
func (o *Orchestrator) Run(ctx context.Context, event domain.Event) (result domain.Result, err error) {
	started := time.Now()
	mode := metrics.ModeLive
	if event.Config.DryRun {
		mode = metrics.ModeDryRun
	}
	defer func() {
		outcome := metrics.OutcomeOK
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.InvocationsTotal.WithLabelValues(mode, outcome).Inc()
		metrics.InvocationDuration.Observe(time.Since(started).Seconds())
	}()

	issue := event.IssueNumber()
	logger := o.logger.With("issue", issue)

	scheduledFor, err := schedule.NextSlotFrom(event.Config.Time, o.slot)
	if err != nil {
		return domain.Result{}, fmt.Errorf("compute schedule: %w", err)
	}
	logger.Debug("timing computed", "scheduled_for", scheduledFor)

	rotated := rotation.For(issue)
	tiers, err := links.Classify(event.Data.Links)
	if err != nil {
		return domain.Result{}, fmt.Errorf("classify links: %w", err)
	}
	logger.Debug("content assembled",
		"secondary", len(tiers.Secondary),
		"extra", len(tiers.Extra),
		"sponsor", event.Data.Sponsor != nil)

	body, err := o.newsletter.Render(render.Input{
		IssueNumber: issue,
		Rotated:     rotated,
		Quote:       event.Data.Quote,
		Book:        event.Data.Book,
		Tiers:       tiers,
		Sponsor:     event.Data.Sponsor,
	})
	if err != nil {
		return domain.Result{}, err
	}
	logger.Debug("newsletter rendered", "bytes", len(body))

	result = domain.Result{
		Version:         domain.ResultVersion,
		IssueNumber:     issue,
		Quote:           event.Data.Quote,
		Book:            event.Data.Book,
		Links:           event.Data.Links,
		Sponsor:         event.Data.Sponsor,
		SubjectLine:     Subject(rotated.SubjectEmoji, tiers.Primary.Title, o.seriesName, issue),
		RenderedContent: body,
		ScheduledFor:    scheduledFor,
		Slug:            Slug(issue, tiers.Primary.Title),
	}

	if event.Config.DryRun {
		result.DryRun = true
		logger.Info("dry run, no email created", "subject", result.SubjectLine)
		return result, nil
	}

	if o.email == nil {
		return domain.Result{}, &domain.EmailServiceError{Op: "create email", Err: errors.New("email service is not configured")}
	}

	record, err := o.createEmail(ctx, result)
	if err != nil {
		return domain.Result{}, err
	}
	logger.Info("email created", "email_id", record.ID, "status", record.Status, "slug", result.Slug)

	result.CampaignID = result.Slug
	result.EmailID = record.ID
	result.EmailStatus = record.Status

	outcome, err := o.sendPreview(ctx, logger, record)
	if err != nil {
		return domain.Result{}, err
	}
	result.TestSend = outcome

	return result, nil
}

func (o *Orchestrator) createEmail(ctx context.Context, result domain.Result) (domain.CampaignRecord, error) {
	var (
		record domain.CampaignRecord
		err    error
	)
	switch o.emailMode {
	case EmailModeDraft:
		record, err = o.email.CreateDraftEmail(ctx, result.SubjectLine, result.RenderedContent)
	default:
		record, err = o.email.CreateScheduledEmail(ctx, ports.ScheduledEmail{
			Subject:   result.SubjectLine,
			Body:      result.RenderedContent,
			PublishAt: result.ScheduledFor,
			Slug:      result.Slug,
		})
	}
	if err != nil {
		return domain.CampaignRecord{}, asEmailServiceError("create email", err)
	}
	return record, nil
}

func (o *Orchestrator) sendPreview(ctx context.Context, logger *slog.Logger, record domain.CampaignRecord) (domain.TestSendOutcome, error) {
	var outcome domain.TestSendOutcome
	switch record.Status {
	case domain.EmailStatusDraft:
		if len(o.testRecipients.Recipients) == 0 && len(o.testRecipients.Subscribers) == 0 {
			logger.Warn("draft created but no test recipients configured, preview not sent", "email_id", record.ID)
			outcome = domain.TestSendSkippedNoRecipients
			break
		}
		if err := o.email.SendDraft(ctx, record.ID, o.testRecipients); err != nil {
			return "", asEmailServiceError("send draft", err)
		}
		logger.Info("preview sent",
			"email_id", record.ID,
			"recipients", len(o.testRecipients.Recipients),
			"subscribers", len(o.testRecipients.Subscribers))
		outcome = domain.TestSendSent
	case domain.EmailStatusScheduled:
		logger.Info("email is scheduled, preview sending is not supported", "email_id", record.ID)
		outcome = domain.TestSendSkippedScheduled
	default:
		logger.Warn("unrecognized email status, preview not sent", "email_id", record.ID, "status", record.Status)
		outcome = domain.TestSendSkippedUnknownStatus
	}

	metrics.TestSendsTotal.WithLabelValues(string(outcome)).Inc()
	return outcome, nil
}

func asEmailServiceError(op string, err error) error {
	var esErr *domain.EmailServiceError
	if errors.As(err, &esErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return &domain.EmailServiceError{Op: op, Err: err}
}
