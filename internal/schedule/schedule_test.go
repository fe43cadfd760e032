package schedule

import (
	"errors"
	"testing"
	"time"

	"IssueCreator/internal/domain"
)

func TestNextSlotFrom(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ref  string
		want time.Time
	}{
		{
			name: "monday before send hour stays on the same day",
			ref:  "2025-01-06T10:00:00Z",
			want: time.Date(2025, time.January, 6, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "monday after send hour rolls to next week",
			ref:  "2025-01-06T18:30:00Z",
			want: time.Date(2025, time.January, 13, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "monday exactly at send hour rolls to next week",
			ref:  "2025-01-06T17:00:00Z",
			want: time.Date(2025, time.January, 13, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "thursday goes to the upcoming monday",
			ref:  "2025-01-02T10:30:00Z",
			want: time.Date(2025, time.January, 6, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday late evening crosses into monday",
			ref:  "2025-01-05T23:59:59Z",
			want: time.Date(2025, time.January, 6, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "offset reference is normalised to utc first",
			ref:  "2025-01-06T18:30:00+02:00",
			want: time.Date(2025, time.January, 6, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "year boundary",
			ref:  "2025-12-31T09:00:00Z",
			want: time.Date(2026, time.January, 5, 17, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NextSlotFrom(tc.ref, DefaultSlot)
			if err != nil {
				t.Fatalf("NextSlotFrom returned error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("want %s, got %s", tc.want.Format(time.RFC3339), got.Format(time.RFC3339))
			}
			if got.Location() != time.UTC {
				t.Fatalf("expected UTC location, got %s", got.Location())
			}
		})
	}
}

func TestNextSlotCustomSlot(t *testing.T) {
	t.Parallel()

	slot := Slot{Weekday: time.Friday, Hour: 9}
	ref := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC) // Wednesday

	got := NextSlot(ref, slot)
	want := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestNextSlotFromInvalidTime(t *testing.T) {
	t.Parallel()

	_, err := NextSlotFrom("not-a-valid-time", DefaultSlot)
	if err == nil {
		t.Fatal("expected error for invalid time")
	}

	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *domain.ParseError, got %T", err)
	}
	if parseErr.Value != "not-a-valid-time" {
		t.Fatalf("unexpected value in error: %q", parseErr.Value)
	}
}
