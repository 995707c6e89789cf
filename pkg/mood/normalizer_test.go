package mood

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	normalizer := NewNormalizer(10000)

	t.Run("lowercases swedish characters", func(t *testing.T) {
		assert.Equal(t, "jag mår dåligt", normalizer.Normalize("Jag MÅR Dåligt"))
	})

	t.Run("strips urls", func(t *testing.T) {
		assert.Equal(t, "läs mer här", normalizer.Normalize("läs mer här https://example.com/artikel?id=1"))
	})

	t.Run("strips email addresses", func(t *testing.T) {
		assert.Equal(t, "maila mig på", normalizer.Normalize("maila mig på anna@example.com"))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "en vanlig dag", normalizer.Normalize("  en \t vanlig\n\n dag  "))
	})

	t.Run("whitespace only becomes empty", func(t *testing.T) {
		assert.Equal(t, "", normalizer.Normalize(" \t\n "))
	})

	t.Run("caps input length", func(t *testing.T) {
		capped := NewNormalizer(10)
		long := strings.Repeat("å", 50)
		normalized := capped.Normalize(long)
		assert.Equal(t, strings.Repeat("å", 10), normalized)
	})

	t.Run("zero cap disables truncation", func(t *testing.T) {
		uncapped := NewNormalizer(0)
		long := strings.Repeat("a", 500)
		assert.Equal(t, long, uncapped.Normalize(long))
	})
}
