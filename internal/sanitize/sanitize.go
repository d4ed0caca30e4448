// Package sanitize strips prompt-injection and markup from free-form player
// text before it is embedded in a generation prompt.
package sanitize

import (
	"regexp"
	"strings"
)

// DefaultMaxLength is applied when Sanitize is given a non-positive limit
const DefaultMaxLength = 200

// Removal order matters: later patterns may match text exposed by earlier ones.
var removals = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(ignore|disregard|forget)\s+(all\s+)?(the\s+)?(previous|prior|above|earlier)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)\byou\s+are\s+now\b[^.!?\n]*`),
	regexp.MustCompile(`(?i)\bsystem\s*:`),
	regexp.MustCompile(`(?i)\bpretend\s+(that\s+)?you\b[^.!?\n]*`),
	regexp.MustCompile("(?s)```.*?```"),
	regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`),
	regexp.MustCompile(`<[^>]*>`),
}

// Leftovers that the ordered pass can expose or leave unclosed
var residue = []*regexp.Regexp{
	regexp.MustCompile("`{3,}"),
	regexp.MustCompile(`(?i)<\s*/?\s*script`),
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	cleanInput = regexp.MustCompile(`^[a-zA-Z0-9 .,!?'-]+$`)
)

// Sanitize removes injection phrasing, fenced blocks and markup from input,
// collapses whitespace and truncates to maxLength characters. Non-string
// input yields "".
func Sanitize(input any, maxLength int) string {
	text, ok := input.(string)
	if !ok {
		return ""
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	for _, re := range removals {
		text = re.ReplaceAllString(text, "")
	}
	text = stripResidue(text)

	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))

	return truncate(text, maxLength)
}

// IsCleanInput reports whether text is made only of ASCII letters, digits,
// spaces and . , ! ? ' -
func IsCleanInput(text string) bool {
	return cleanInput.MatchString(text)
}

func stripResidue(text string) string {
	for {
		before := text
		for _, re := range residue {
			text = re.ReplaceAllString(text, "")
		}
		if text == before {
			return text
		}
	}
}

func truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength])
}
