// Package schedule computes when an issue goes out.
//
// The rule is "same day if still before the send hour, otherwise the next
// occurrence of the send weekday". The boundary hour itself is not "before":
// a reference at exactly the send hour rolls to the following week.
package schedule

import (
	"time"

	"IssueCreator/internal/domain"
)

// Slot is the weekly send slot, interpreted in UTC.
type Slot struct {
	Weekday time.Weekday
	Hour    int
}

// DefaultSlot is Monday 17:00 UTC.
var DefaultSlot = Slot{Weekday: time.Monday, Hour: 17}

// ParseReference parses an RFC 3339 timestamp and normalises it to UTC.
func ParseReference(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, &domain.ParseError{Value: value, Err: err}
	}
	return t.UTC(), nil
}

// NextSlot returns the first send time for the slot that is valid for ref.
func NextSlot(ref time.Time, slot Slot) time.Time {
	ref = ref.UTC()
	if ref.Weekday() == slot.Weekday && ref.Hour() < slot.Hour {
		return atHour(ref, slot.Hour)
	}

	day := ref.AddDate(0, 0, 1)
	for day.Weekday() != slot.Weekday {
		day = day.AddDate(0, 0, 1)
	}
	return atHour(day, slot.Hour)
}

// NextSlotFrom parses value and applies NextSlot.
func NextSlotFrom(value string, slot Slot) (time.Time, error) {
	ref, err := ParseReference(value)
	if err != nil {
		return time.Time{}, err
	}
	return NextSlot(ref, slot), nil
}

func atHour(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
}
