package buttondown

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"IssueCreator/internal/config"
	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

func newTestClient(url string) *Client {
	return NewClient(config.EmailConfig{BaseURL: url + "/", APIKey: "secret", Timeout: time.Second})
}

func TestCreateScheduledEmail(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Token secret" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"em_123","status":"scheduled","subject":"ignored"}`))
	}))
	defer srv.Close()

	record, err := newTestClient(srv.URL).CreateScheduledEmail(context.Background(), ports.ScheduledEmail{
		Subject:   "🤓 Title — Full Stack Bulletin #435",
		Body:      "# Hello",
		PublishAt: time.Date(2025, 1, 6, 17, 0, 0, 0, time.UTC),
		Slug:      "435-title",
	})
	if err != nil {
		t.Fatalf("CreateScheduledEmail returned error: %v", err)
	}
	if record.ID != "em_123" || record.Status != domain.EmailStatusScheduled {
		t.Fatalf("unexpected record: %+v", record)
	}

	want := map[string]string{
		"subject":         "🤓 Title — Full Stack Bulletin #435",
		"body":            "# Hello",
		"publish_date":    "2025-01-06T17:00:00Z",
		"status":          "scheduled",
		"slug":            "435-title",
		"commenting_mode": "enabled",
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("payload[%s] = %v, want %q", key, got[key], value)
		}
	}
}

func TestCreateDraftEmailOmitsScheduleFields(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"id":"em_9","status":"draft"}`))
	}))
	defer srv.Close()

	record, err := newTestClient(srv.URL).CreateDraftEmail(context.Background(), "subject", "body")
	if err != nil {
		t.Fatalf("CreateDraftEmail returned error: %v", err)
	}
	if record.Status != domain.EmailStatusDraft {
		t.Fatalf("status = %q", record.Status)
	}
	if _, ok := got["publish_date"]; ok {
		t.Fatalf("draft payload carries publish_date: %v", got)
	}
	if _, ok := got["slug"]; ok {
		t.Fatalf("draft payload carries slug: %v", got)
	}
	if got["status"] != "draft" {
		t.Fatalf("status = %v", got["status"])
	}
}

func TestSendDraft(t *testing.T) {
	t.Parallel()

	var (
		path string
		raw  []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		raw, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendDraft(context.Background(), "em_1", ports.DraftRecipients{
		Recipients: []string{"editor@example.com"},
	})
	if err != nil {
		t.Fatalf("SendDraft returned error: %v", err)
	}
	if path != "/emails/em_1/send-draft" {
		t.Fatalf("path = %s", path)
	}
	if strings.TrimSpace(string(raw)) != `{"recipients":["editor@example.com"]}` {
		t.Fatalf("unexpected payload %s", raw)
	}
}

func TestErrorsCarryStatusAndTruncatedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateDraftEmail(context.Background(), "s", "b")

	var esErr *domain.EmailServiceError
	if !errors.As(err, &esErr) {
		t.Fatalf("expected EmailServiceError, got %v", err)
	}
	if esErr.StatusCode != http.StatusBadRequest || esErr.Op != "create email" {
		t.Fatalf("unexpected error fields: %+v", esErr)
	}
	if len(esErr.Body) != errorBodyLimit {
		t.Fatalf("body length = %d, want %d", len(esErr.Body), errorBodyLimit)
	}
}

func TestMisconfiguredClient(t *testing.T) {
	t.Parallel()

	c := NewClient(config.EmailConfig{BaseURL: "http://127.0.0.1:1"})
	err := c.SendDraft(context.Background(), "em_1", ports.DraftRecipients{})

	var esErr *domain.EmailServiceError
	if !errors.As(err, &esErr) || esErr.StatusCode != 0 {
		t.Fatalf("expected EmailServiceError without status, got %v", err)
	}
}

func TestTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).CreateDraftEmail(context.Background(), "s", "b")
	var esErr *domain.EmailServiceError
	if !errors.As(err, &esErr) || esErr.Err == nil {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}
