// Package rotation picks issue-specific copy from fixed tables.
//
// Every table is indexed by issue number modulo its own length: remainder r
// selects entry r-1, remainder 0 selects the last entry. Tables keep their
// own sizes on purpose so the combinations drift between issues.
package rotation

// Pick returns the entry of table for issueNumber. It panics on an empty
// table, which would be a programming error since all tables are fixed.
func Pick(table []string, issueNumber uint32) string {
	n := uint32(len(table))
	r := issueNumber % n
	if r == 0 {
		return table[n-1]
	}
	return table[r-1]
}

// Greeting opens the newsletter.
func Greeting(issueNumber uint32) string { return Pick(greetings[:], issueNumber) }

// IntroClosing ends the intro paragraph.
func IntroClosing(issueNumber uint32) string { return Pick(introClosings[:], issueNumber) }

// ExtraContentTitle heads the overflow links section.
func ExtraContentTitle(issueNumber uint32) string {
	return Pick(extraContentTitles[:], issueNumber)
}

// ClosingTitle heads the sign-off section.
func ClosingTitle(issueNumber uint32) string { return Pick(closingTitles[:], issueNumber) }

// ClosingMessage is the sign-off paragraph.
func ClosingMessage(issueNumber uint32) string { return Pick(closingMessages[:], issueNumber) }

// SubjectEmoji prefixes the subject line.
func SubjectEmoji(issueNumber uint32) string { return Pick(subjectEmojis[:], issueNumber) }

// Set is every rotated string of one issue.
type Set struct {
	Greeting          string
	IntroClosing      string
	ExtraContentTitle string
	ClosingTitle      string
	ClosingMessage    string
	SubjectEmoji      string
}

// For computes the full set for an issue.
func For(issueNumber uint32) Set {
	return Set{
		Greeting:          Greeting(issueNumber),
		IntroClosing:      IntroClosing(issueNumber),
		ExtraContentTitle: ExtraContentTitle(issueNumber),
		ClosingTitle:      ClosingTitle(issueNumber),
		ClosingMessage:    ClosingMessage(issueNumber),
		SubjectEmoji:      SubjectEmoji(issueNumber),
	}
}
