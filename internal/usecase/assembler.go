package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

// AssemblerDeps wires the upstream content sources.
type AssemblerDeps struct {
	Issues   ports.IssueNumberSource
	Quotes   ports.QuoteSource
	Books    ports.BookSource
	Sponsors ports.SponsorSource
	Links    ports.LinkSource
	Logger   *slog.Logger
}

// Assembler builds an Event from upstream sources.
type Assembler struct {
	issues   ports.IssueNumberSource
	quotes   ports.QuoteSource
	books    ports.BookSource
	sponsors ports.SponsorSource
	links    ports.LinkSource
	logger   *slog.Logger
}

// NewAssembler wires the sources. Sponsors is optional.
func NewAssembler(deps AssemblerDeps) *Assembler {
	return &Assembler{
		issues:   deps.Issues,
		quotes:   deps.Quotes,
		books:    deps.Books,
		sponsors: deps.Sponsors,
		links:    deps.Links,
		logger:   deps.Logger,
	}
}

// Assemble resolves the next issue number and its content, one source after
// the other, and returns the event for the orchestrator.
func (a *Assembler) Assemble(ctx context.Context, ref time.Time, dryRun bool) (domain.Event, error) {
	if a.issues == nil || a.quotes == nil || a.books == nil || a.links == nil {
		return domain.Event{}, fmt.Errorf("assembler sources are not configured")
	}

	last, err := a.issues.LastIssueNumber(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("last issue number: %w", err)
	}
	next := last + 1
	a.debug("assemble issue", "issue", next, "reference", ref.Format(time.RFC3339))

	quote, err := a.quotes.QuoteFor(ctx, next)
	if err != nil {
		return domain.Event{}, fmt.Errorf("quote: %w", err)
	}

	book, err := a.books.BookFor(ctx, next)
	if err != nil {
		return domain.Event{}, fmt.Errorf("book: %w", err)
	}

	var sponsor *domain.Sponsor
	if a.sponsors != nil {
		sponsor, err = a.sponsors.SponsorFor(ctx, next)
		if err != nil {
			return domain.Event{}, fmt.Errorf("sponsor: %w", err)
		}
	}

	ranked, err := a.links.RankedLinks(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("links: %w", err)
	}
	a.debug("issue content resolved", "issue", next, "links", len(ranked), "sponsor", sponsor != nil)

	return domain.Event{
		Config:    domain.EventConfig{DryRun: dryRun, Time: ref.UTC().Format(time.RFC3339)},
		NextIssue: domain.NextIssue{Number: next},
		Data: domain.IssueData{
			Quote:   quote,
			Book:    book,
			Sponsor: sponsor,
			Links:   ranked,
		},
	}, nil
}

func (a *Assembler) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
