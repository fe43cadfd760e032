package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"IssueCreator/internal/domain"
)

const liveEvent = `{
	"config": {"dryRun": false, "time": "2025-01-06T10:00:00Z"},
	"NextIssue": {"number": 435},
	"data": {
		"Quote": {"id": 1, "text": "Talk is cheap. Show me the code.", "author": "Linus Torvalds", "authorDescription": "Creator of Linux"},
		"Book": {"id": "sre", "title": "Site Reliability Engineering", "author": "Betsy Beyer", "links": {}, "coverPicture": "", "description": ""},
		"Links": [
			{"title": "An Interactive Guide to SVG Paths", "url": "https://joshwcomeau.com/svg/paths"},
			{"title": "htmx in practice", "url": "https://github.com/bigskysoftware/htmx"}
		]
	}
}`

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ISSUE_CREATOR_CONFIG", "BUTTONDOWN_API_KEY", "DATABASE_DSN", "AIRTABLE_API_KEY", "AIRTABLE_BASE_ID"} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")
}

func TestRunDryRunFromFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(liveEvent), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "--event", path, "--dry-run"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run: %v", err)
	}

	var result domain.Result
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if !result.DryRun || result.IssueNumber != 435 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Slug != "435-an-interactive-guide-to-svg-paths" {
		t.Fatalf("slug = %q", result.Slug)
	}
	if result.EmailID != "" {
		t.Fatalf("dry run created an email: %q", result.EmailID)
	}
}

func TestRunReadsStdin(t *testing.T) {
	isolateEnv(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(strings.Replace(liveEvent, `"dryRun": false`, `"dryRun": true`, 1)))
	cmd.SetArgs([]string{"run", "--event", "-"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `"dryRun": true`) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRunLiveWithoutAPIKeyFails(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(liveEvent), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--event", path})

	err := cmd.Execute()
	var emailErr *domain.EmailServiceError
	if err == nil || !errors.As(err, &emailErr) {
		t.Fatalf("expected EmailServiceError, got %v", err)
	}
}

func TestRunRequiresSource(t *testing.T) {
	cases := [][]string{
		{"run"},
		{"run", "--event", "x.json", "--assemble"},
	}
	for _, args := range cases {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("%v: expected an error", args)
		}
	}
}

func TestReadEventRejectsMalformedJSON(t *testing.T) {
	if _, err := readEvent(strings.NewReader(`{"config":`), "-"); err == nil {
		t.Fatal("expected decode error")
	}
}
