package rotation

import (
	"strings"
	"testing"
)

func TestPickWrapsAndZeroSelectsLast(t *testing.T) {
	t.Parallel()

	tables := map[string][]string{
		"greetings":          greetings[:],
		"closingTitles":      closingTitles[:],
		"closingMessages":    closingMessages[:],
		"introClosings":      introClosings[:],
		"extraContentTitles": extraContentTitles[:],
		"subjectEmojis":      subjectEmojis[:],
	}

	for name, table := range tables {
		table := table
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			n := uint32(len(table))
			for issue := uint32(0); issue < 3*n; issue++ {
				if Pick(table, issue) != Pick(table, issue+n) {
					t.Fatalf("issue %d and %d picked different entries", issue, issue+n)
				}
			}
			for _, issue := range []uint32{0, n, 2 * n, 7 * n} {
				if got := Pick(table, issue); got != table[n-1] {
					t.Fatalf("issue %d: want last entry %q, got %q", issue, table[n-1], got)
				}
			}
			if got := Pick(table, 1); got != table[0] {
				t.Fatalf("issue 1: want first entry, got %q", got)
			}
			for i, entry := range table {
				if strings.TrimSpace(entry) == "" {
					t.Fatalf("entry %d is empty", i)
				}
			}
		})
	}
}

func TestTableSizes(t *testing.T) {
	t.Parallel()

	sizes := map[string]int{
		"greetings":          len(greetings),
		"closingTitles":      len(closingTitles),
		"closingMessages":    len(closingMessages),
		"introClosings":      len(introClosings),
		"extraContentTitles": len(extraContentTitles),
		"subjectEmojis":      len(subjectEmojis),
	}
	want := map[string]int{
		"greetings":          10,
		"closingTitles":      10,
		"closingMessages":    10,
		"introClosings":      41,
		"extraContentTitles": 10,
		"subjectEmojis":      32,
	}
	for name, size := range want {
		if sizes[name] != size {
			t.Fatalf("%s: want %d entries, got %d", name, size, sizes[name])
		}
	}
}

func TestNamedPickers(t *testing.T) {
	t.Parallel()

	if got := Greeting(1); got != "Hey there" {
		t.Fatalf("greeting 1: %q", got)
	}
	if got := Greeting(2); got != "Heyo" {
		t.Fatalf("greeting 2: %q", got)
	}
	if got := Greeting(10); got != "Hello" {
		t.Fatalf("greeting 10: %q", got)
	}
	if Greeting(1) != Greeting(11) {
		t.Fatal("greeting 1 and 11 should match")
	}

	if got := IntroClosing(1); got != "Enjoy the journey ahead!" {
		t.Fatalf("intro closing 1: %q", got)
	}
	if got := IntroClosing(10); got != "Make something you are proud of!" {
		t.Fatalf("intro closing 10: %q", got)
	}
	if got := IntroClosing(41); got != "Happy reading and coding!" {
		t.Fatalf("intro closing 41: %q", got)
	}
	if IntroClosing(1) != IntroClosing(42) {
		t.Fatal("intro closing 1 and 42 should match")
	}

	if got := ExtraContentTitle(1); got != "You have to BELIEVE in the power of more content! 🙏" {
		t.Fatalf("extra content title 1: %q", got)
	}
	if got := ExtraContentTitle(10); got != "Hand-picked extras to keep your brain buzzing! ⚡" {
		t.Fatalf("extra content title 10: %q", got)
	}

	if got := ClosingTitle(1); got != "That's a wrap! 🌯" {
		t.Fatalf("closing title 1: %q", got)
	}
	if got := ClosingTitle(10); got != "That's all folks! 🐰" {
		t.Fatalf("closing title 10: %q", got)
	}

	if !strings.Contains(ClosingMessage(1), "Thanks for sticking around") {
		t.Fatalf("closing message 1: %q", ClosingMessage(1))
	}
	if !strings.Contains(ClosingMessage(2), "Drop us a line") {
		t.Fatalf("closing message 2: %q", ClosingMessage(2))
	}
	if !strings.Contains(ClosingMessage(10), "Thank you for getting to the end") {
		t.Fatalf("closing message 10: %q", ClosingMessage(10))
	}

	if got := SubjectEmoji(1); got != "🤓" {
		t.Fatalf("subject emoji 1: %q", got)
	}
	if SubjectEmoji(32) != subjectEmojis[31] {
		t.Fatal("subject emoji 32 should be the last entry")
	}
}

func TestForUsesIndependentModuli(t *testing.T) {
	t.Parallel()

	// 10 is a multiple of the 10-entry tables only.
	set := For(10)
	if set.Greeting != greetings[9] {
		t.Fatalf("greeting: %q", set.Greeting)
	}
	if set.IntroClosing != introClosings[9] {
		t.Fatalf("intro closing: %q", set.IntroClosing)
	}
	if set.SubjectEmoji != subjectEmojis[9] {
		t.Fatalf("subject emoji: %q", set.SubjectEmoji)
	}
}
