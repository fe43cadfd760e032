// Package links splits a ranked link list into the newsletter tiers.
package links

import (
	"strings"

	"IssueCreator/internal/domain"
)

const (
	// MaxSecondary caps the individually shown links after the primary one.
	MaxSecondary = 6
	// ExtraStart is the first rank position bundled as extra content.
	ExtraStart = 7
)

// Action labels shown on link buttons.
const (
	ActionCheckRepo   = "Check Repo"
	ActionWatchVideo  = "Watch Video"
	ActionReadArticle = "Read Article"
)

// Labeled pairs a link with its action label.
type Labeled struct {
	domain.Link
	ActionText string
}

// Tiers is the classified link list. Ranking order is preserved in every tier.
type Tiers struct {
	Primary   Labeled
	Secondary []Labeled
	Extra     []Labeled
}

// Classify splits ranked links into tiers. It never reorders its input.
func Classify(ranked []domain.Link) (Tiers, error) {
	if len(ranked) == 0 {
		return Tiers{}, domain.ErrEmptyLinkList
	}

	tiers := Tiers{
		Primary:   label(ranked[0]),
		Secondary: []Labeled{},
		Extra:     []Labeled{},
	}

	end := min(1+MaxSecondary, len(ranked))
	for _, l := range ranked[1:end] {
		tiers.Secondary = append(tiers.Secondary, label(l))
	}

	if len(ranked) > ExtraStart {
		for _, l := range ranked[ExtraStart:] {
			tiers.Extra = append(tiers.Extra, label(l))
		}
	}

	return tiers, nil
}

// ActionText derives the button label from the URL. Rules are checked in
// order and the first match wins.
func ActionText(url string) string {
	switch {
	case strings.Contains(url, "github.com"):
		return ActionCheckRepo
	case strings.Contains(url, "youtube.com"), strings.Contains(url, "youtu.be"):
		return ActionWatchVideo
	default:
		return ActionReadArticle
	}
}

func label(l domain.Link) Labeled {
	return Labeled{Link: l, ActionText: ActionText(l.URL)}
}
