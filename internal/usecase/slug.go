package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Slug builds the URL identifier of an issue: "{issue}-{title-in-kebab-case}".
// Every run of characters that are not letters or digits becomes one hyphen.
func Slug(issueNumber uint32, title string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	if sb.Len() == 0 {
		return strconv.FormatUint(uint64(issueNumber), 10)
	}
	return fmt.Sprintf("%d-%s", issueNumber, sb.String())
}

// Subject builds the email subject line.
func Subject(emoji, primaryTitle, seriesName string, issueNumber uint32) string {
	return fmt.Sprintf("%s %s — %s #%d", emoji, primaryTitle, seriesName, issueNumber)
}
