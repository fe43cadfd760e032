package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

// BookSource picks the book of an issue from a static books site.
type BookSource struct {
	client  *Client
	baseURL string
}

var _ ports.BookSource = (*BookSource)(nil)

// NewBookSource binds the source to the site root (the folder holding books/).
func NewBookSource(client *Client, baseURL string) *BookSource {
	return &BookSource{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

type bookAuthor struct {
	Name string `json:"name"`
}

type inputBook struct {
	Slug            string            `json:"slug"`
	Title           string            `json:"title"`
	Subtitle        string            `json:"subtitle"`
	Authors         []bookAuthor      `json:"authors"`
	Cover           string            `json:"cover"`
	Links           map[string]string `json:"links"`
	DescriptionHTML string            `json:"descriptionHtml"`
}

// BookFor returns book ids[issueNumber mod len(ids)].
func (s *BookSource) BookFor(ctx context.Context, issueNumber uint32) (domain.Book, error) {
	var ids []string
	if err := s.client.get(ctx, s.baseURL+"/books/ids.json", nil, &ids); err != nil {
		return domain.Book{}, fmt.Errorf("fetch book ids: %w", err)
	}
	if len(ids) == 0 {
		return domain.Book{}, fmt.Errorf("fetch book ids: no books available")
	}

	id := ids[int(issueNumber)%len(ids)]
	var in inputBook
	if err := s.client.get(ctx, s.baseURL+"/books/"+url.PathEscape(id)+".json", nil, &in); err != nil {
		return domain.Book{}, fmt.Errorf("fetch book %s: %w", id, err)
	}

	return toBook(in), nil
}

func toBook(in inputBook) domain.Book {
	title := in.Title
	if in.Subtitle != "" {
		title = in.Title + ": " + in.Subtitle
	}

	links := make(map[string]string, len(in.Links))
	for key, value := range in.Links {
		switch key {
		case "amazon_us":
			links["us"] = value
		case "amazon_uk":
			links["uk"] = value
		default:
			links[key] = value
		}
	}

	return domain.Book{
		ID:           in.Slug,
		Title:        title,
		Author:       joinAuthors(in.Authors),
		Links:        links,
		CoverPicture: in.Cover,
		Description:  in.DescriptionHTML,
	}
}

// joinAuthors renders "A", "A, and B" or "A, B, and C".
func joinAuthors(authors []bookAuthor) string {
	switch len(authors) {
	case 0:
		return "Unknown"
	case 1:
		return authors[0].Name
	}

	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.Name
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}
