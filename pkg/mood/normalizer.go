package mood

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	urlPattern   = regexp.MustCompile(`https?://\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
)

// Normalizer prepares raw journal text for classification: length cap,
// URL and email removal, locale-aware lowercasing and whitespace collapse.
// Every downstream component assumes its output.
type Normalizer struct {
	lower     cases.Caser
	maxLength int
}

// NewNormalizer creates a normalizer for the app's primary locale.
// maxLength caps input in runes; zero or negative means no cap.
func NewNormalizer(maxLength int) *Normalizer {
	return &Normalizer{
		lower:     cases.Lower(language.Swedish),
		maxLength: maxLength,
	}
}

// Normalize applies the full normalization pipeline. Output may be empty,
// which downstream components treat as "no signal".
func (n *Normalizer) Normalize(text string) string {
	if n.maxLength > 0 {
		runes := []rune(text)
		if len(runes) > n.maxLength {
			text = string(runes[:n.maxLength])
		}
	}

	text = urlPattern.ReplaceAllString(text, " ")
	text = emailPattern.ReplaceAllString(text, " ")
	text = n.lower.String(text)

	return strings.Join(strings.Fields(text), " ")
}
