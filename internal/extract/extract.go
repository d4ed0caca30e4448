// Package extract recovers a structured document from a raw text completion
// that may be wrapped in markdown fences or other formatting noise.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

// A fenced block with an optional language tag on the opening fence. A tag
// must be followed by whitespace, otherwise the word is the content.
var fenced = regexp.MustCompile("(?s)```(?:[a-zA-Z0-9_-]+(?:[ \t]*\\r?\\n|[ \t]+))?(.*?)```")

// Candidate returns the substring of raw that should hold the document: the
// interior of the first fenced block, or raw itself, trimmed.
func Candidate(raw string) string {
	if m := fenced.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// Document parses the candidate substring of raw as JSON. It performs no
// semantic checks. Failures are parse errors.
func Document(raw string) (any, error) {
	candidate := Candidate(raw)
	if candidate == "" {
		return nil, errors.ParseError("completion contained no document")
	}

	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "completion is not valid JSON").
			WithMeta("candidate_length", len(candidate))
	}
	return doc, nil
}
