// Package render turns an issue into the newsletter body.
//
// Builder assembles the render context; the template engine behind the
// ports.Renderer interface only substitutes values. The output is Markdown
// and is never HTML-escaped.
package render

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/links"
	"IssueCreator/internal/ports"
	"IssueCreator/internal/rotation"
)

//go:embed templates/newsletter.md
var newsletterTemplate string

// NewsletterTemplate returns the built-in newsletter body template.
func NewsletterTemplate() string {
	return newsletterTemplate
}

// Context keys. Optional keys are absent, not empty, when their section is
// not rendered.
const (
	KeyIssueNumber       = "issue_number"
	KeyGreeting          = "greeting"
	KeyIntroClosing      = "intro_closing"
	KeyClosingTitle      = "closing_title"
	KeyClosingMessage    = "closing_message"
	KeyQuote             = "quote"
	KeyBook              = "book"
	KeyPrimaryLink       = "primary_link"
	KeySecondaryLinks    = "secondary_links"
	KeyExtraLinks        = "extra_links"
	KeyExtraContentTitle = "extra_content_title"
	KeySponsor           = "sponsor"
)

// Input is everything a newsletter body is built from.
type Input struct {
	IssueNumber uint32
	Rotated     rotation.Set
	Quote       domain.Quote
	Book        domain.Book
	Tiers       links.Tiers
	Sponsor     *domain.Sponsor
}

// BuildContext returns the render context for in.
func BuildContext(in Input) map[string]any {
	ctx := map[string]any{
		KeyIssueNumber:    in.IssueNumber,
		KeyGreeting:       in.Rotated.Greeting,
		KeyIntroClosing:   in.Rotated.IntroClosing,
		KeyClosingTitle:   in.Rotated.ClosingTitle,
		KeyClosingMessage: in.Rotated.ClosingMessage,
		KeyQuote:          in.Quote,
		KeyBook:           in.Book,
		KeyPrimaryLink:    in.Tiers.Primary,
		KeySecondaryLinks: in.Tiers.Secondary,
	}

	if len(in.Tiers.Extra) > 0 {
		ctx[KeyExtraLinks] = in.Tiers.Extra
		ctx[KeyExtraContentTitle] = in.Rotated.ExtraContentTitle
	}

	if in.Sponsor != nil {
		ctx[KeySponsor] = *in.Sponsor
	}

	return ctx
}

// Newsletter renders a body with a fixed template through a Renderer.
type Newsletter struct {
	renderer ports.Renderer
	body     string
}

// NewNewsletter binds a renderer to a template body. An empty body selects
// the built-in template.
func NewNewsletter(renderer ports.Renderer, body string) *Newsletter {
	if strings.TrimSpace(body) == "" {
		body = newsletterTemplate
	}
	return &Newsletter{renderer: renderer, body: body}
}

// Render builds the context for in and renders it. Renderer failures come
// back as *domain.RenderError wrapping the original error.
func (n *Newsletter) Render(in Input) (string, error) {
	if n.renderer == nil {
		return "", &domain.RenderError{Err: fmt.Errorf("renderer is not configured")}
	}
	out, err := n.renderer.Render(n.body, BuildContext(in))
	if err != nil {
		return "", &domain.RenderError{Err: err}
	}
	return out, nil
}

// TextTemplate is the text/template implementation of ports.Renderer.
// Missing map keys are errors; optional sections are reached through the
// index builtin, which yields a zero value instead.
type TextTemplate struct{}

var _ ports.Renderer = TextTemplate{}

// Render parses body and executes it against data.
func (TextTemplate) Render(body string, data map[string]any) (string, error) {
	tmpl, err := template.New("newsletter").Option("missingkey=error").Parse(body)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return sb.String(), nil
}
